package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kitchenswipe/internal/models"

	"github.com/tidwall/gjson"
)

// MaxResults is the largest page the search provider returns for one query.
const MaxResults = 20

var ErrMissingAPIKey = errors.New("search API key missing")

// UpstreamError is returned when the provider answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("search API error: %d", e.StatusCode)
}

// Hit is one ranked search result. Native is set when the provider returned
// structured recipe data for the page.
type Hit struct {
	URL    string
	Native *models.RecipeCard
}

type Query struct {
	Terms string
	Count int
}

type Client interface {
	Search(ctx context.Context, q Query) ([]Hit, error)
}

type braveClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewBraveClient(apiKey, baseURL string) Client {
	return &braveClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// BuildQuery joins the filters into a single search string: dietary and
// cuisine terms, the literal "recipe", then an OR'd site restriction.
func BuildQuery(dietary, cuisine, sites []string) string {
	terms := make([]string, 0, len(dietary)+len(cuisine)+2)
	terms = append(terms, nonEmpty(dietary)...)
	terms = append(terms, nonEmpty(cuisine)...)
	terms = append(terms, "recipe")
	if s := nonEmpty(sites); len(s) > 0 {
		terms = append(terms, "site:"+strings.Join(s, " OR site:"))
	}
	return strings.Join(terms, " ")
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

func (c *braveClient) Search(ctx context.Context, q Query) ([]Hit, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("q", q.Terms)
	params.Set("count", strconv.Itoa(clampCount(q.Count)))
	params.Set("result_filter", "web")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Subscription-Token", c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: response.StatusCode, Body: string(body)}
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to decode response: invalid JSON")
	}

	results := gjson.GetBytes(body, "web.results")
	hits := make([]Hit, 0, len(results.Array()))
	for _, result := range results.Array() {
		pageURL := strings.TrimSpace(text(result.Get("url")))
		if pageURL == "" {
			continue
		}
		hit := Hit{URL: pageURL}
		if recipe := result.Get("recipe"); recipe.IsObject() {
			card := nativeCard(recipe, pageURL)
			hit.Native = &card
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
