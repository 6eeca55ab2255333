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

type membershipRepository struct {
	BaseRepository
}

func NewMembershipRepository(db *sqlx.DB) repository.MembershipRepository {
	return &membershipRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *membershipRepository) Create(ctx context.Context, m *model.Membership) error {
	query := `
		INSERT INTO memberships (id, user_id, plan, price, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Plan,
		m.Price,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

func (r *membershipRepository) Update(ctx context.Context, m *model.Membership) error {
	query := `
		UPDATE memberships
		SET plan = $1, price = $2, end_date = $3, status = $4, updated_at = $5
		WHERE id = $6
	`
	m.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		m.Plan,
		m.Price,
		m.EndDate,
		m.Status,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
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

func (r *membershipRepository) GetCurrentForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*model.Membership, error) {
	query := `
		SELECT id, user_id, plan, price, start_date, end_date, status, created_at, updated_at
		FROM memberships
		WHERE user_id = $1 AND status = 'active' AND end_date > $2
		ORDER BY end_date DESC
		LIMIT 1
	`
	var m model.Membership
	err := r.db.GetContext(ctx, &m, query, userID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get current membership: %w", err)
	}
	return &m, nil
}

func (r *membershipRepository) ListWithOwners(ctx context.Context) ([]*model.MembershipWithOwner, error) {
	query := `
		SELECT m.id, m.user_id, m.plan, m.price, m.start_date, m.end_date, m.status,
		       m.created_at, m.updated_at,
		       u.name AS user_name, u.email AS user_email
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC
	`
	var memberships []*model.MembershipWithOwner
	if err := r.db.SelectContext(ctx, &memberships, query); err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

func (r *membershipRepository) TotalRevenue(ctx context.Context) (int, error) {
	// Revenue counts every record ever created, expired and cancelled
	// ones included.
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(price), 0) FROM memberships`)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

func (r *membershipRepository) CountCurrent(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM memberships WHERE status = 'active' AND end_date > $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count current memberships: %w", err)
	}
	return count, nil
}

func (r *membershipRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET status = 'expired', updated_at = $1 WHERE status = 'active' AND end_date <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired memberships: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
