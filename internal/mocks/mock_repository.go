package mocks

import (
	"context"

	"kitchenswipe/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockSwipeHistoryRepository
type MockSwipeHistoryRepository struct {
	mock.Mock
}

func (m *MockSwipeHistoryRepository) Create(ctx context.Context, entry *models.SwipeHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSwipeHistoryRepository) FindLatestBySession(ctx context.Context, sessionID string) (*models.SwipeHistory, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwipeHistory), args.Error(1)
}

func (m *MockSwipeHistoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, req *models.CreateRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uint) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}
