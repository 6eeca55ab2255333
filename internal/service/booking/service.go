package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	apperrors "github.com/athletex/gym-api/pkg/errors"
	"github.com/athletex/gym-api/pkg/metrics"
)

type Service struct {
	repo    repository.BookingRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.BookingRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// Create books a session for the caller with status confirmed. Slots
// have no capacity limit: two members (or the same member twice) may
// book the same slot.
func (s *Service) Create(ctx context.Context, caller model.Caller, req *model.CreateBookingRequest) (*model.Booking, error) {
	slot := req.Slot()
	if req.Date == "" || slot == "" {
		return nil, apperrors.BadRequest("date and time slot are required", nil)
	}
	if !model.ValidBookingType(req.Type) {
		return nil, apperrors.BadRequest("invalid session type", nil)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}

	b := &model.Booking{
		UserID:   caller.UserID,
		Type:     req.Type,
		Date:     date,
		TimeSlot: slot,
		Status:   model.BookingStatusConfirmed,
	}
	if req.ClassName != "" {
		name := req.ClassName
		b.ClassName = &name
	}
	if req.TrainerName != "" {
		name := req.TrainerName
		b.TrainerName = &name
	}
	if req.TrainerID != "" {
		trainerID, err := uuid.Parse(req.TrainerID)
		if err != nil {
			return nil, apperrors.BadRequest("invalid trainer ID", err)
		}
		b.TrainerID = &trainerID
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.metrics != nil {
		s.metrics.BookingsTotal.WithLabelValues(string(b.Type)).Inc()
	}
	return b, nil
}

// ListMine returns the caller's bookings, newest session first
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error) {
	bookings, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return bookings, nil
}

// Cancel is the canonical cancel: a soft status change by the owning
// account or an admin. The record stays retrievable as cancelled.
func (s *Service) Cancel(ctx context.Context, caller model.Caller, id uuid.UUID) (*model.Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking", err)
		}
		return nil, apperrors.Internal(err)
	}

	if b.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, apperrors.Forbidden("not authorized to cancel this booking", nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, model.BookingStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking", err)
		}
		return nil, apperrors.Internal(err)
	}

	b.Status = model.BookingStatusCancelled
	return b, nil
}

// Delete removes the record outright. Admin only; members cancel.
func (s *Service) Delete(ctx context.Context, caller model.Caller, id uuid.UUID) error {
	if !caller.IsAdmin() {
		return apperrors.Forbidden("admin access required", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("booking", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}

// UpdateStatus sets any defined status on a booking with no transition
// restrictions (admin).
func (s *Service) UpdateStatus(ctx context.Context, caller model.Caller, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.Forbidden("admin access required", nil)
	}
	if !model.ValidBookingStatus(status) {
		return nil, apperrors.BadRequest("invalid booking status", nil)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking", err)
		}
		return nil, apperrors.Internal(err)
	}

	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return b, nil
}

// ListAll returns every booking with owner details, newest session
// first (admin).
func (s *Service) ListAll(ctx context.Context, caller model.Caller) ([]*model.BookingWithOwner, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.Forbidden("admin access required", nil)
	}

	bookings, err := s.repo.ListWithOwners(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return bookings, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
