package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	"github.com/athletex/gym-api/pkg/auth"
	apperrors "github.com/athletex/gym-api/pkg/errors"
	"github.com/athletex/gym-api/pkg/security"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role string) ([]*model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	args := m.Called(ctx, token, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type MockPurchaser struct {
	mock.Mock
}

func (m *MockPurchaser) Purchase(ctx context.Context, userID uuid.UUID, planCode string) (*model.Membership, bool, error) {
	args := m.Called(ctx, userID, planCode)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Membership), args.Bool(1), args.Error(2)
}

func newTestService(t *testing.T, userRepo repository.UserRepository, store repository.TokenStore, purchaser MembershipPurchaser) *Service {
	t.Helper()
	jwtSvc, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	return NewService(userRepo, jwtSvc, store, nil, purchaser, nil, time.Hour)
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := newTestService(t, userRepo, nil, nil)
	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.NotEqual(t, "secret123", resp.User.PasswordHash, "password must not be stored in clear")
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(repository.ErrDuplicateEmail)

	svc := newTestService(t, userRepo, nil, nil)
	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
}

func TestRegister_InvalidPlanFailsBeforeAccountCreation(t *testing.T) {
	userRepo := new(MockUserRepository)

	svc := newTestService(t, userRepo, nil, nil)
	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Plan:     "lifetime",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_WithPlanPurchasesImmediately(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	purchaser := new(MockPurchaser)
	purchaser.On("Purchase", mock.Anything, mock.Anything, "monthly").Return(&model.Membership{Plan: "monthly"}, false, nil)

	svc := newTestService(t, userRepo, nil, purchaser)
	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Plan:     "monthly",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	purchaser.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestService(t, new(MockUserRepository), nil, nil)
	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "abc",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
}

func TestLogin(t *testing.T) {
	hash, err := security.NewBcryptHasher(4).Hash("secret123")
	require.NoError(t, err)

	user := &model.User{
		Name:         "Priya Sharma",
		Email:        "priya@example.com",
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	user.ID = uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "priya@example.com").Return(user, nil)

	svc := newTestService(t, userRepo, nil, nil)
	resp, err := svc.Login(context.Background(), "priya@example.com", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLogin_IdenticalErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	hash, err := security.NewBcryptHasher(4).Hash("secret123")
	require.NoError(t, err)

	user := &model.User{Email: "priya@example.com", PasswordHash: hash}
	user.ID = uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "priya@example.com").Return(user, nil)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	svc := newTestService(t, userRepo, nil, nil)

	_, errWrongPassword := svc.Login(context.Background(), "priya@example.com", "wrong")
	_, errUnknownEmail := svc.Login(context.Background(), "nobody@example.com", "whatever")

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())

	appErr, ok := apperrors.AsAppError(errWrongPassword)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode())
}

func TestResolveCaller(t *testing.T) {
	jwtSvc, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := jwtSvc.GenerateToken(userID, "priya@example.com", model.RoleUser)
	require.NoError(t, err)

	store := new(MockTokenStore)
	store.On("IsRevoked", mock.Anything, token).Return(false, nil)

	svc := NewService(new(MockUserRepository), jwtSvc, store, nil, nil, nil, time.Hour)
	caller, err := svc.ResolveCaller(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, userID, caller.UserID)
	assert.Equal(t, model.RoleUser, caller.Role)
}

func TestResolveCaller_RevokedToken(t *testing.T) {
	jwtSvc, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := jwtSvc.GenerateToken(uuid.New(), "priya@example.com", model.RoleUser)
	require.NoError(t, err)

	store := new(MockTokenStore)
	store.On("IsRevoked", mock.Anything, token).Return(true, nil)

	svc := NewService(new(MockUserRepository), jwtSvc, store, nil, nil, nil, time.Hour)
	_, err = svc.ResolveCaller(context.Background(), token)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.StatusCode())
}

func TestLogout_RevokesUntilExpiry(t *testing.T) {
	jwtSvc, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := jwtSvc.GenerateToken(uuid.New(), "priya@example.com", model.RoleUser)
	require.NoError(t, err)

	store := new(MockTokenStore)
	store.On("Revoke", mock.Anything, token, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= time.Hour
	})).Return(nil)

	svc := NewService(new(MockUserRepository), jwtSvc, store, nil, nil, nil, time.Hour)
	require.NoError(t, svc.Logout(context.Background(), token))
	store.AssertExpectations(t)
}
