package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/athletex/gym-api/internal/email"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	"github.com/athletex/gym-api/pkg/auth"
	apperrors "github.com/athletex/gym-api/pkg/errors"
	"github.com/athletex/gym-api/pkg/metrics"
	"github.com/athletex/gym-api/pkg/security"
)

const bcryptCost = 12

// MembershipPurchaser buys a plan for an account. Register uses it when
// the optional plan field is supplied.
type MembershipPurchaser interface {
	Purchase(ctx context.Context, userID uuid.UUID, planCode string) (*model.Membership, bool, error)
}

type Service struct {
	userRepo    repository.UserRepository
	jwtSvc      auth.JWTService
	tokenStore  repository.TokenStore
	hasher      security.PasswordHasher
	emailSvc    email.Service
	memberships MembershipPurchaser
	metrics     *metrics.Metrics
	tokenExpiry time.Duration
}

func NewService(
	userRepo repository.UserRepository,
	jwtSvc auth.JWTService,
	tokenStore repository.TokenStore,
	emailSvc email.Service,
	memberships MembershipPurchaser,
	m *metrics.Metrics,
	tokenExpiry time.Duration,
) *Service {
	return &Service{
		userRepo:    userRepo,
		jwtSvc:      jwtSvc,
		tokenStore:  tokenStore,
		hasher:      security.NewBcryptHasher(bcryptCost),
		emailSvc:    emailSvc,
		memberships: memberships,
		metrics:     m,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates an account with the user role and issues a session
// token, equivalent to an implicit login.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.BadRequest("name, email and password are required", nil)
	}

	// A bad plan code must fail before the account exists.
	if req.Plan != "" {
		if _, ok := model.PlanByID(req.Plan); !ok {
			return nil, apperrors.BadRequest("invalid plan selected", nil)
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooShort) {
			return nil, apperrors.BadRequest(fmt.Sprintf("password must be at least %d characters", security.MinPasswordLen), err)
		}
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.BadRequest("email already registered", err)
		}
		return nil, apperrors.Internal(err)
	}

	if req.Plan != "" && s.memberships != nil {
		if _, _, err := s.memberships.Purchase(ctx, user.ID, req.Plan); err != nil {
			log.Error().Err(err).Str("plan", req.Plan).Msg("failed to purchase plan during registration")
		}
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendWelcome(user.Email, user.Name); err != nil {
			log.Warn().Err(err).Msg("failed to send welcome email")
		}
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.metrics != nil {
		s.metrics.RegistrationsTotal.Inc()
	}

	return &model.TokenResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password produce the identical error so accounts cannot be
// enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	invalid := apperrors.Unauthorized("invalid credentials", nil)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.countLogin("failure")
			return nil, invalid
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.countLogin("failure")
		return nil, invalid
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.countLogin("success")
	return &model.TokenResponse{Token: token, User: user}, nil
}

// Me returns the caller's account
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// ResolveCaller verifies a presented token and returns the caller's
// identity. Revoked tokens are rejected like expired ones.
func (s *Service) ResolveCaller(ctx context.Context, token string) (*model.Caller, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token", err)
	}

	if s.tokenStore != nil {
		revoked, err := s.tokenStore.IsRevoked(ctx, token)
		if err != nil {
			log.Warn().Err(err).Msg("token store unavailable, accepting token on signature alone")
		} else if revoked {
			return nil, apperrors.Unauthorized("invalid token", nil)
		}
	}

	return &model.Caller{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// Logout blacklists the token until its natural expiry
func (s *Service) Logout(ctx context.Context, token string) error {
	if s.tokenStore == nil {
		return nil
	}

	ttl := s.tokenExpiry
	if claims, err := s.jwtSvc.ValidateToken(token); err == nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.tokenStore.Revoke(ctx, token, ttl); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *Service) countLogin(status string) {
	if s.metrics != nil {
		s.metrics.LoginsTotal.WithLabelValues(status).Inc()
	}
}
