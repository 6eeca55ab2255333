package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership statuses
type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusExpired   MembershipStatus = "expired"
	MembershipStatusCancelled MembershipStatus = "cancelled"
)

// Plan is a static catalog entry. Prices are integer currency units,
// durations are whole days.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int      `json:"price"`
	DurationDays int      `json:"duration"`
	Features     []string `json:"features"`
}

// PlanCatalog is fixed configuration, not a mutable store.
var PlanCatalog = []Plan{
	{
		ID:           "monthly",
		Name:         "Monthly",
		Price:        2000,
		DurationDays: 30,
		Features: []string{
			"Full gym access",
			"All equipment usage",
			"Locker facility",
			"Fitness assessment",
		},
	},
	{
		ID:           "quarterly",
		Name:         "Quarterly",
		Price:        5000,
		DurationDays: 90,
		Features: []string{
			"Full gym access",
			"All equipment & classes",
			"2 Personal training sessions",
			"Locker facility",
		},
	},
	{
		ID:           "halfyearly",
		Name:         "Half Yearly",
		Price:        8000,
		DurationDays: 180,
		Features: []string{
			"Unlimited gym access",
			"All equipment & amenities",
			"4 Personal training sessions",
			"Premium locker",
		},
	},
	{
		ID:           "annual",
		Name:         "Annual",
		Price:        15000,
		DurationDays: 365,
		Features: []string{
			"Unlimited gym access",
			"All facilities & amenities",
			"8 Personal training sessions",
			"Premium locker",
		},
	},
}

// PlanByID looks up a catalog entry by plan code
func PlanByID(id string) (Plan, bool) {
	for _, p := range PlanCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Membership is a purchased membership period. Price is captured at
// purchase time and does not follow later catalog changes.
type Membership struct {
	Base
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Plan      string           `json:"plan" db:"plan"`
	Price     int              `json:"price" db:"price"`
	StartDate time.Time        `json:"start_date" db:"start_date"`
	EndDate   time.Time        `json:"end_date" db:"end_date"`
	Status    MembershipStatus `json:"status" db:"status"`
}

// IsCurrent reports whether the membership grants access at the given
// instant. The stored status alone never makes a membership current;
// the end date is always compared at read time.
func (m *Membership) IsCurrent(now time.Time) bool {
	return m.Status == MembershipStatusActive && m.EndDate.After(now)
}

// MembershipWithOwner joins a membership with the owning account's
// display fields for the admin listing.
type MembershipWithOwner struct {
	Membership
	UserName  string `json:"user_name" db:"user_name"`
	UserEmail string `json:"user_email" db:"user_email"`
}

// PurchaseRequest buys or extends a plan. PlanID is the alias field used
// by the subscribe endpoint.
type PurchaseRequest struct {
	Plan   string `json:"plan"`
	PlanID string `json:"planId"`
}

// PlanCode returns whichever of the two alias fields is set
func (r *PurchaseRequest) PlanCode() string {
	if r.Plan != "" {
		return r.Plan
	}
	return r.PlanID
}

// MembershipStatusResponse is the derived read-time view of the caller's
// membership.
type MembershipStatusResponse struct {
	Active     bool        `json:"active"`
	Membership *Membership `json:"membership,omitempty"`
	Plan       string      `json:"plan,omitempty"`
	ExpiresAt  *time.Time  `json:"expiresAt,omitempty"`
	Message    string      `json:"message,omitempty"`
}
