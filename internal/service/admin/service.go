package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	apperrors "github.com/athletex/gym-api/pkg/errors"
)

const (
	statsCacheKey = "dashboard_stats"
	statsCacheTTL = 30 * time.Second
)

// Service aggregates cross-domain admin operations: the dashboard
// rollup and user management.
type Service struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	bookingRepo    repository.BookingRepository
	contactRepo    repository.ContactRepository
	cache          *cache.Cache
}

func NewService(
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	bookingRepo repository.BookingRepository,
	contactRepo repository.ContactRepository,
) *Service {
	return &Service{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		bookingRepo:    bookingRepo,
		contactRepo:    contactRepo,
		cache:          cache.New(statsCacheTTL, time.Minute),
	}
}

// Stats computes the dashboard rollup. The result is cached briefly;
// the dashboard polls and the counts tolerate 30 seconds of staleness.
func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(*model.DashboardStats), nil
	}

	totalUsers, err := s.userRepo.CountByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalBookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	totalRevenue, err := s.membershipRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	activeMembers, err := s.membershipRepo.CountCurrent(ctx, time.Now())
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	unread, err := s.contactRepo.CountUnread(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	stats := &model.DashboardStats{
		TotalUsers:     totalUsers,
		TotalBookings:  totalBookings,
		TotalRevenue:   totalRevenue,
		ActiveMembers:  activeMembers,
		UnreadMessages: unread,
	}
	s.cache.Set(statsCacheKey, stats, statsCacheTTL)
	return stats, nil
}

// ListUsers returns member accounts. Admin accounts are excluded so
// the member table only shows manageable accounts.
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.ListByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// DeleteUser removes an account together with its bookings and
// membership records.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("user", err)
		}
		return apperrors.Internal(err)
	}
	s.cache.Delete(statsCacheKey)
	return nil
}

// SetRole promotes or demotes an account. An admin cannot demote
// themselves; that path could lock the last admin out.
func (s *Service) SetRole(ctx context.Context, caller model.Caller, id uuid.UUID, role string) (*model.User, error) {
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, apperrors.BadRequest("role must be user or admin", nil)
	}
	if caller.UserID == id && role != model.RoleAdmin {
		return nil, apperrors.BadRequest("cannot demote your own account", nil)
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, apperrors.Internal(err)
	}

	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}
