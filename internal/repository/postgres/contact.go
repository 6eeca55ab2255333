package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
)

type contactRepository struct {
	BaseRepository
}

func NewContactRepository(db *sqlx.DB) repository.ContactRepository {
	return &contactRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
		msg.Read,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, subject, message, read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	var messages []*model.ContactMessage
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
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

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
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

func (r *contactRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
