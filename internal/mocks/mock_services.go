package mocks

import (
	"context"

	"kitchenswipe/internal/models"
	"kitchenswipe/internal/search"

	"github.com/stretchr/testify/mock"
)

type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, q search.Query) ([]search.Hit, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]search.Hit), args.Error(1)
}

type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) FetchJSONLD(ctx context.Context, pageURL string) ([]string, error) {
	args := m.Called(ctx, pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCardResolver struct {
	mock.Mock
}

func (m *MockCardResolver) Resolve(ctx context.Context, url string) models.RecipeCard {
	args := m.Called(ctx, url)
	return args.Get(0).(models.RecipeCard)
}

type MockRecipeSubmitter struct {
	mock.Mock
}

func (m *MockRecipeSubmitter) Submit(req models.CreateRecipeRequest) bool {
	args := m.Called(req)
	return args.Bool(0)
}

// MockSwipeService backs the controller tests.
type MockSwipeService struct {
	mock.Mock
}

func (m *MockSwipeService) InitSession(ctx context.Context, req models.SwipeSessionRequest) (*models.SwipeSessionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwipeSessionResponse), args.Error(1)
}

func (m *MockSwipeService) Advance(ctx context.Context, sessionID string) (*models.SwipeCardResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwipeCardResponse), args.Error(1)
}

func (m *MockSwipeService) RecordAction(ctx context.Context, req models.SwipeActionRequest) (*models.SwipeActionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwipeActionResponse), args.Error(1)
}

func (m *MockSwipeService) Undo(ctx context.Context, sessionID string) (*models.SwipeCardResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwipeCardResponse), args.Error(1)
}
