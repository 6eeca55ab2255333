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

type trainerRepository struct {
	BaseRepository
}

func NewTrainerRepository(db *sqlx.DB) repository.TrainerRepository {
	return &trainerRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *trainerRepository) Create(ctx context.Context, t *model.Trainer) error {
	query := `
		INSERT INTO trainers (id, name, specialty, bio, image, experience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Specialty,
		t.Bio,
		t.Image,
		t.Experience,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

func (r *trainerRepository) List(ctx context.Context) ([]*model.Trainer, error) {
	query := `
		SELECT id, name, specialty, bio, image, experience, created_at, updated_at
		FROM trainers
		ORDER BY name ASC
	`
	var trainers []*model.Trainer
	if err := r.db.SelectContext(ctx, &trainers, query); err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	return trainers, nil
}
