package membership

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
	repo    repository.MembershipRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.MembershipRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

// Catalog returns the static plan list
func (s *Service) Catalog() []model.Plan {
	return model.PlanCatalog
}

// Purchase buys a plan for the account. If a current membership exists
// (status active and end date still ahead) the purchase extends it:
// the new plan's duration is added onto the existing end date and the
// plan code and price are overwritten with the newly purchased plan.
// Paid-for time is never shortened by buying again early. Otherwise a
// fresh record starts now. The returned bool reports the extend case.
//
// Two simultaneous purchases by the same account can race into two
// records; a member double-submitting in the same instant is accepted
// as out of scope for a single-gym deployment.
func (s *Service) Purchase(ctx context.Context, userID uuid.UUID, planCode string) (*model.Membership, bool, error) {
	plan, ok := model.PlanByID(planCode)
	if !ok {
		return nil, false, apperrors.BadRequest("invalid plan selected", nil)
	}

	now := time.Now()

	existing, err := s.repo.GetCurrentForUser(ctx, userID, now)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, false, apperrors.Internal(err)
	}

	if existing != nil {
		existing.EndDate = existing.EndDate.AddDate(0, 0, plan.DurationDays)
		existing.Plan = plan.ID
		existing.Price = plan.Price
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, apperrors.Internal(err)
		}
		s.countPurchase(plan.ID)
		return existing, true, nil
	}

	m := &model.Membership{
		UserID:    userID,
		Plan:      plan.ID,
		Price:     plan.Price,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, plan.DurationDays),
		Status:    model.MembershipStatusActive,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, false, apperrors.Internal(err)
	}
	s.countPurchase(plan.ID)
	return m, false, nil
}

// Current returns the caller's current membership or NotFound
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	m, err := s.repo.GetCurrentForUser(ctx, userID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("active membership", err)
		}
		return nil, apperrors.Internal(err)
	}
	return m, nil
}

// Status reports whether the caller currently holds access. Currency is
// computed at read time; a record whose end date has passed reports
// inactive no matter what its stored status says.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (*model.MembershipStatusResponse, error) {
	m, err := s.repo.GetCurrentForUser(ctx, userID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &model.MembershipStatusResponse{
				Active:  false,
				Message: "No active membership",
			}, nil
		}
		return nil, apperrors.Internal(err)
	}

	return &model.MembershipStatusResponse{
		Active:     true,
		Membership: m,
		Plan:       m.Plan,
		ExpiresAt:  &m.EndDate,
	}, nil
}

// ListAll returns every membership record with owner details (admin)
func (s *Service) ListAll(ctx context.Context) ([]*model.MembershipWithOwner, error) {
	memberships, err := s.repo.ListWithOwners(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return memberships, nil
}

func (s *Service) countPurchase(plan string) {
	if s.metrics != nil {
		s.metrics.PurchasesTotal.WithLabelValues(plan).Inc()
	}
}
