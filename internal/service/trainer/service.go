package trainer

import (
	"context"

	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	apperrors "github.com/athletex/gym-api/pkg/errors"
	"github.com/athletex/gym-api/pkg/validator"
)

type Service struct {
	repo      repository.TrainerRepository
	validator validator.Validator
}

func NewService(repo repository.TrainerRepository) *Service {
	return &Service{repo: repo, validator: validator.New()}
}

// List returns the trainer catalog. Public, no auth.
func (s *Service) List(ctx context.Context) ([]*model.Trainer, error) {
	trainers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return trainers, nil
}

// Create adds a trainer to the catalog (admin)
func (s *Service) Create(ctx context.Context, req *model.CreateTrainerRequest) (*model.Trainer, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	t := &model.Trainer{
		Name:       req.Name,
		Specialty:  req.Specialty,
		Bio:        req.Bio,
		Image:      req.Image,
		Experience: req.Experience,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperrors.Internal(err)
	}
	return t, nil
}
