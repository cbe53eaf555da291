package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"kitchenswipe/internal/cache"
	"kitchenswipe/internal/models"
	"kitchenswipe/internal/repository"
	"kitchenswipe/internal/search"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SwipeService interface {
	InitSession(ctx context.Context, req models.SwipeSessionRequest) (*models.SwipeSessionResponse, error)
	Advance(ctx context.Context, sessionID string) (*models.SwipeCardResponse, error)
	RecordAction(ctx context.Context, req models.SwipeActionRequest) (*models.SwipeActionResponse, error)
	Undo(ctx context.Context, sessionID string) (*models.SwipeCardResponse, error)
}

type swipeService struct {
	searchClient search.Client
	queue        cache.SessionQueue
	cards        cache.CardCache
	resolver     CardResolver
	historyRepo  repository.SwipeHistoryRepository
	saver        RecipeSubmitter

	// resolveOnUndo returns the resolved card on undo instead of a stub.
	resolveOnUndo bool
	shuffle       func([]string)
}

func NewSwipeService(
	searchClient search.Client,
	queue cache.SessionQueue,
	cards cache.CardCache,
	resolver CardResolver,
	historyRepo repository.SwipeHistoryRepository,
	saver RecipeSubmitter,
	resolveOnUndo bool,
) SwipeService {
	return &swipeService{
		searchClient:  searchClient,
		queue:         queue,
		cards:         cards,
		resolver:      resolver,
		historyRepo:   historyRepo,
		saver:         saver,
		resolveOnUndo: resolveOnUndo,
		shuffle:       shuffleURLs,
	}
}

func shuffleURLs(urls []string) {
	rand.Shuffle(len(urls), func(i, j int) { urls[i], urls[j] = urls[j], urls[i] })
}

func (s *swipeService) InitSession(ctx context.Context, req models.SwipeSessionRequest) (*models.SwipeSessionResponse, error) {
	size := req.Size()
	if size < 1 {
		return nil, ErrInvalidBatchSize
	}

	terms := search.BuildQuery(req.Dietary, req.Cuisine, req.Sites)
	log.Printf("[swipe][session] Built search query: %q", terms)

	hits, err := s.searchClient.Search(ctx, search.Query{Terms: terms, Count: size})
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(hits))
	seen := make(map[string]struct{}, len(hits))
	for _, hit := range hits {
		if _, dup := seen[hit.URL]; dup {
			continue
		}
		seen[hit.URL] = struct{}{}
		urls = append(urls, hit.URL)

		if hit.Native != nil {
			if err := s.cards.Put(ctx, *hit.Native); err != nil {
				log.Printf("[swipe][session] Failed to cache native card for %s: %v", hit.URL, err)
			}
		}
	}

	s.shuffle(urls)
	if len(urls) > size {
		urls = urls[:size]
	}

	sessionID := uuid.NewString()
	if err := s.queue.Create(ctx, sessionID, urls); err != nil {
		return nil, err
	}
	log.Printf("[swipe][session] Created session %s with %d recipes", sessionID, len(urls))

	return &models.SwipeSessionResponse{SessionID: sessionID, Remaining: len(urls)}, nil
}

func (s *swipeService) Advance(ctx context.Context, sessionID string) (*models.SwipeCardResponse, error) {
	url, remaining, err := s.queue.Pop(ctx, sessionID)
	switch {
	case errors.Is(err, cache.ErrQueueNotFound):
		return nil, ErrSessionNotFound
	case errors.Is(err, cache.ErrQueueEmpty):
		return nil, ErrSessionExhausted
	case err != nil:
		return nil, err
	}

	card := s.resolver.Resolve(ctx, url)
	return &models.SwipeCardResponse{Card: card, Remaining: remaining}, nil
}

func (s *swipeService) RecordAction(ctx context.Context, req models.SwipeActionRequest) (*models.SwipeActionResponse, error) {
	if req.Action != models.SwipeActionLike && req.Action != models.SwipeActionSkip {
		return nil, ErrInvalidAction
	}

	entry := &models.SwipeHistory{
		SessionID: req.SessionID,
		RecipeID:  req.RecipeID,
		Action:    req.Action,
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record swipe action: %w", err)
	}

	if req.Action == models.SwipeActionLike {
		s.handOffLikedRecipe(ctx, req.RecipeID)
	}

	return &models.SwipeActionResponse{RecipeID: req.RecipeID, Action: req.Action}, nil
}

// handOffLikedRecipe queues a cached card for saving. Every failure here is
// logged and swallowed; the swipe itself is already recorded.
func (s *swipeService) handOffLikedRecipe(ctx context.Context, recipeID string) {
	card, ok, err := s.cards.Get(ctx, recipeID)
	if err != nil {
		log.Printf("[swipe][action] Card cache read failed for liked recipe %s: %v", recipeID, err)
		return
	}
	if !ok {
		log.Printf("[swipe][action] Liked recipe %s is not cached, skipping save", recipeID)
		return
	}

	if !s.saver.Submit(CreateRecipeFromCard(*card)) {
		log.Printf("[swipe][action] Could not queue liked recipe %s for saving", recipeID)
	}
}

func (s *swipeService) Undo(ctx context.Context, sessionID string) (*models.SwipeCardResponse, error) {
	latest, err := s.historyRepo.FindLatestBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load last swipe action: %w", err)
	}
	if latest == nil {
		return nil, ErrNothingToUndo
	}

	if err := s.historyRepo.Delete(ctx, latest.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUndoTargetNotFound
		}
		return nil, fmt.Errorf("failed to delete swipe action: %w", err)
	}

	remaining, err := s.queue.Len(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var card models.RecipeCard
	if s.resolveOnUndo {
		card = s.resolver.Resolve(ctx, latest.RecipeID)
	} else {
		card = models.StubCard(latest.RecipeID)
	}
	log.Printf("[swipe][undo] Restored recipe %s for session %s", latest.RecipeID, sessionID)

	return &models.SwipeCardResponse{Card: card, Remaining: remaining}, nil
}
