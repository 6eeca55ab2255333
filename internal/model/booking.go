package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking session kinds
type BookingType string

const (
	BookingTypeVisit            BookingType = "visit"
	BookingTypeClass            BookingType = "class"
	BookingTypePersonalTraining BookingType = "personal_training"
)

// Booking statuses
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ValidBookingType reports whether t is one of the defined session kinds
func ValidBookingType(t BookingType) bool {
	switch t {
	case BookingTypeVisit, BookingTypeClass, BookingTypePersonalTraining:
		return true
	}
	return false
}

// ValidBookingStatus reports whether s is one of the defined statuses
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking is a session reservation. TrainerID and the display name
// fields are optional; trainers are catalog data with no referential
// constraint beyond display convenience.
type Booking struct {
	Base
	UserID      uuid.UUID     `json:"user_id" db:"user_id"`
	Type        BookingType   `json:"type" db:"type"`
	ClassName   *string       `json:"class_name,omitempty" db:"class_name"`
	TrainerName *string       `json:"trainer_name,omitempty" db:"trainer_name"`
	TrainerID   *uuid.UUID    `json:"trainer_id,omitempty" db:"trainer_id"`
	Date        time.Time     `json:"date" db:"date"`
	TimeSlot    string        `json:"time_slot" db:"time_slot"`
	Status      BookingStatus `json:"status" db:"status"`
}

// BookingWithOwner joins a booking with owner display fields for the
// admin listing.
type BookingWithOwner struct {
	Booking
	UserName  string `json:"user_name" db:"user_name"`
	UserEmail string `json:"user_email" db:"user_email"`
}

// CreateBookingRequest creates a reservation. The two source clients
// disagree on field naming, so both spellings are accepted and
// normalized at the service boundary.
type CreateBookingRequest struct {
	Type        BookingType `json:"type" binding:"required,oneof=visit class personal_training"`
	ClassName   string      `json:"className"`
	Date        string      `json:"date" binding:"required"`
	TimeSlot    string      `json:"timeSlot"`
	Time        string      `json:"time"`
	TrainerID   string      `json:"trainer"`
	TrainerName string      `json:"trainerName"`
}

// Slot returns whichever of the two alias fields is set
func (r *CreateBookingRequest) Slot() string {
	if r.TimeSlot != "" {
		return r.TimeSlot
	}
	return r.Time
}

// UpdateBookingStatusRequest sets a booking status (admin)
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}
