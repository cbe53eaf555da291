package services

import (
	"context"
	"fmt"
	"log"

	"kitchenswipe/internal/cache"
	"kitchenswipe/internal/models"
	"kitchenswipe/internal/scraper"
)

// CardResolver turns a page URL into a displayable card. It never fails: the
// worst case is a stub card.
type CardResolver interface {
	Resolve(ctx context.Context, url string) models.RecipeCard
}

type resolver struct {
	cards   cache.CardCache
	fetcher scraper.PageFetcher
}

func NewResolver(cards cache.CardCache, fetcher scraper.PageFetcher) CardResolver {
	return &resolver{cards: cards, fetcher: fetcher}
}

func (r *resolver) Resolve(ctx context.Context, url string) models.RecipeCard {
	card, ok, err := r.cards.Get(ctx, url)
	if err != nil {
		log.Printf("[resolver] Card cache read failed for %s: %v", url, err)
	} else if ok {
		log.Printf("[resolver] Found cached card for URL: %s", url)
		return *card
	}

	draft, err := r.extract(ctx, url)
	if err != nil {
		log.Printf("[resolver] JSON-LD extraction error for URL %s: %v", url, err)
		return models.StubCard(url)
	}
	if draft == nil {
		log.Printf("[resolver] No JSON-LD recipe found for URL: %s", url)
		return models.StubCard(url)
	}

	resolved := models.CardFromDraft(url, draft)
	if err := r.cards.Put(ctx, resolved); err != nil {
		log.Printf("[resolver] Failed to cache card for %s: %v", url, err)
	}
	log.Printf("[resolver] JSON-LD extraction succeeded for URL: %s", url)
	return resolved
}

func (r *resolver) extract(ctx context.Context, url string) (draft *models.RecipeDraft, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			draft, err = nil, fmt.Errorf("extraction panicked: %v", rec)
		}
	}()

	blocks, err := r.fetcher.FetchJSONLD(ctx, url)
	if err != nil {
		return nil, err
	}
	return scraper.ExtractRecipe(blocks), nil
}
