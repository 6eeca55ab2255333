package trainer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/athletex/gym-api/internal/model"
	apperrors "github.com/athletex/gym-api/pkg/errors"
)

type MockTrainerRepository struct {
	mock.Mock
}

func (m *MockTrainerRepository) Create(ctx context.Context, t *model.Trainer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrainerRepository) List(ctx context.Context) ([]*model.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Trainer), args.Error(1)
}

func TestCreate(t *testing.T) {
	repo := new(MockTrainerRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Trainer")).Return(nil)

	svc := NewService(repo)
	trainer, err := svc.Create(context.Background(), &model.CreateTrainerRequest{
		Name:      "Arjun Mehta",
		Specialty: "Strength & Conditioning",
	})

	require.NoError(t, err)
	assert.Equal(t, "Arjun Mehta", trainer.Name)
	repo.AssertExpectations(t)
}

func TestCreate_MissingSpecialty(t *testing.T) {
	repo := new(MockTrainerRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &model.CreateTrainerRequest{Name: "Arjun Mehta"})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestList(t *testing.T) {
	repo := new(MockTrainerRepository)
	repo.On("List", mock.Anything).Return([]*model.Trainer{{Name: "Arjun Mehta"}}, nil)

	svc := NewService(repo)
	trainers, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, trainers, 1)
}
