package booking

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
	apperrors "github.com/athletex/gym-api/pkg/errors"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListWithOwners(ctx context.Context) ([]*model.BookingWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.BookingWithOwner), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func member() model.Caller {
	return model.Caller{UserID: uuid.New(), Email: "member@example.com", Role: model.RoleUser}
}

func admin() model.Caller {
	return model.Caller{UserID: uuid.New(), Email: "admin@example.com", Role: model.RoleAdmin}
}

func TestCreate(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

	caller := member()
	svc := NewService(repo, nil)
	b, err := svc.Create(context.Background(), caller, &model.CreateBookingRequest{
		Type:      model.BookingTypeClass,
		ClassName: "Morning HIIT",
		Date:      "2026-09-15",
		TimeSlot:  "07:00",
	})

	require.NoError(t, err)
	assert.Equal(t, caller.UserID, b.UserID)
	assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), b.Date)
	assert.Equal(t, "07:00", b.TimeSlot)
	require.NotNil(t, b.ClassName)
	assert.Equal(t, "Morning HIIT", *b.ClassName)
	repo.AssertExpectations(t)
}

func TestCreate_TimeAlias(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

	svc := NewService(repo, nil)
	b, err := svc.Create(context.Background(), member(), &model.CreateBookingRequest{
		Type: model.BookingTypeVisit,
		Date: "2026-09-15",
		Time: "18:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "18:30", b.TimeSlot)
}

func TestCreate_MissingSlot(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), member(), &model.CreateBookingRequest{
		Type: model.BookingTypeVisit,
		Date: "2026-09-15",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InvalidDate(t *testing.T) {
	svc := NewService(new(MockBookingRepository), nil)

	_, err := svc.Create(context.Background(), member(), &model.CreateBookingRequest{
		Type:     model.BookingTypeVisit,
		Date:     "next tuesday",
		TimeSlot: "10:00",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
}

func TestCancel_Owner(t *testing.T) {
	repo := new(MockBookingRepository)
	caller := member()
	id := uuid.New()

	b := &model.Booking{UserID: caller.UserID, Status: model.BookingStatusConfirmed}
	b.ID = id
	repo.On("Get", mock.Anything, id).Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, id, model.BookingStatusCancelled).Return(nil)

	svc := NewService(repo, nil)
	cancelled, err := svc.Cancel(context.Background(), caller, id)

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, cancelled.Status)
	repo.AssertExpectations(t)
}

func TestCancel_ForeignBookingForbidden(t *testing.T) {
	repo := new(MockBookingRepository)
	id := uuid.New()

	b := &model.Booking{UserID: uuid.New(), Status: model.BookingStatusConfirmed}
	b.ID = id
	repo.On("Get", mock.Anything, id).Return(b, nil)

	svc := NewService(repo, nil)
	_, err := svc.Cancel(context.Background(), member(), id)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode())
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_AdminCanCancelAnyBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	id := uuid.New()

	b := &model.Booking{UserID: uuid.New(), Status: model.BookingStatusConfirmed}
	b.ID = id
	repo.On("Get", mock.Anything, id).Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, id, model.BookingStatusCancelled).Return(nil)

	svc := NewService(repo, nil)
	cancelled, err := svc.Cancel(context.Background(), admin(), id)

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, cancelled.Status)
}

func TestCancel_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(nil, repository.ErrNotFound)

	svc := NewService(repo, nil)
	_, err := svc.Cancel(context.Background(), member(), id)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestDelete_MemberForbidden(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), member(), uuid.New())

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode())
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Admin(t *testing.T) {
	repo := new(MockBookingRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	svc := NewService(repo, nil)
	require.NoError(t, svc.Delete(context.Background(), admin(), id))
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nil)

	_, err := svc.UpdateStatus(context.Background(), admin(), uuid.New(), "archived")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
}

func TestUpdateStatus_Admin(t *testing.T) {
	repo := new(MockBookingRepository)
	id := uuid.New()

	b := &model.Booking{UserID: uuid.New(), Status: model.BookingStatusCompleted}
	b.ID = id
	repo.On("UpdateStatus", mock.Anything, id, model.BookingStatusCompleted).Return(nil)
	repo.On("Get", mock.Anything, id).Return(b, nil)

	svc := NewService(repo, nil)
	updated, err := svc.UpdateStatus(context.Background(), admin(), id, model.BookingStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCompleted, updated.Status)
}

func TestListAll_MemberForbidden(t *testing.T) {
	svc := NewService(new(MockBookingRepository), nil)

	_, err := svc.ListAll(context.Background(), member())

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode())
}
