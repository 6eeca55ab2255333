package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/athletex/gym-api/internal/email"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	apperrors "github.com/athletex/gym-api/pkg/errors"
	"github.com/athletex/gym-api/pkg/metrics"
	"github.com/athletex/gym-api/pkg/validator"
)

type Service struct {
	repo      repository.ContactRepository
	emailSvc  email.Service
	validator validator.Validator
	metrics   *metrics.Metrics
}

func NewService(repo repository.ContactRepository, emailSvc email.Service, m *metrics.Metrics) *Service {
	return &Service{
		repo:      repo,
		emailSvc:  emailSvc,
		validator: validator.New(),
		metrics:   m,
	}
}

// Submit stores a contact-form message. No authentication and no
// account linkage; the form is open to visitors.
func (s *Service) Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, apperrors.BadRequest(err.Error(), err)
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendContactNotification(msg.Name, msg.Email, msg.Subject, msg.Message); err != nil {
			log.Warn().Err(err).Msg("failed to forward contact message to admin inbox")
		}
	}

	if s.metrics != nil {
		s.metrics.ContactMessages.Inc()
	}
	return msg, nil
}

// List returns every message, newest first (admin)
func (s *Service) List(ctx context.Context) ([]*model.ContactMessage, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return msgs, nil
}

// MarkRead flags a message as handled (admin)
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("message", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}

// Delete removes a message (admin)
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("message", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}
