package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/athletex/gym-api/internal/model"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when the email unique constraint is hit
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role string) ([]*model.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	// DeleteCascade removes the account together with its bookings and
	// membership records in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	CountByRole(ctx context.Context, role string) (int, error)
}

type MembershipRepository interface {
	Create(ctx context.Context, m *model.Membership) error
	Update(ctx context.Context, m *model.Membership) error
	// GetCurrentForUser returns the record with status active and an end
	// date after now, or ErrNotFound.
	GetCurrentForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*model.Membership, error)
	ListWithOwners(ctx context.Context) ([]*model.MembershipWithOwner, error)
	TotalRevenue(ctx context.Context) (int, error)
	CountCurrent(ctx context.Context, now time.Time) (int, error)
	// MarkExpired flips active records whose end date has passed to
	// status expired, returning the number of rows changed.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error)
	ListWithOwners(ctx context.Context) ([]*model.BookingWithOwner, error)
	Count(ctx context.Context) (int, error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int, error)
}

type TrainerRepository interface {
	Create(ctx context.Context, t *model.Trainer) error
	List(ctx context.Context) ([]*model.Trainer, error)
}

// TokenStore blacklists session tokens revoked before their natural
// expiry (logout).
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
