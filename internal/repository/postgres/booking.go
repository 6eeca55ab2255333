package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
)

type bookingRepository struct {
	BaseRepository
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, type, class_name, trainer_name, trainer_id,
			date, time_slot, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.UserID,
		b.Type,
		b.ClassName,
		b.TrainerName,
		b.TrainerID,
		b.Date,
		b.TimeSlot,
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, user_id, type, class_name, trainer_name, trainer_id,
		       date, time_slot, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var b model.Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error) {
	query := `
		SELECT id, user_id, type, class_name, trainer_name, trainer_id,
		       date, time_slot, status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC
	`
	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) ListWithOwners(ctx context.Context) ([]*model.BookingWithOwner, error) {
	query := `
		SELECT b.id, b.user_id, b.type, b.class_name, b.trainer_name, b.trainer_id,
		       b.date, b.time_slot, b.status, b.created_at, b.updated_at,
		       u.name AS user_name, u.email AS user_email
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.date DESC
	`
	var bookings []*model.BookingWithOwner
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings`); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
