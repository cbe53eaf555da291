package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipePage = `<!DOCTYPE html>
<html><head>
<title>Golden Curry</title>
<script type="application/ld+json">{"@type": "Organization", "name": "Blog"}</script>
<script type="application/ld+json">{"@type": "Recipe", "name": "Golden Curry"}</script>
<script type="text/javascript">var x = 1;</script>
</head><body><h1>Golden Curry</h1></body></html>`

func TestFetchJSONLD(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.UserAgent()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(recipePage))
	}))
	defer server.Close()

	fetcher := NewPageFetcher(5 * time.Second)
	blocks, err := fetcher.FetchJSONLD(context.Background(), server.URL+"/curry")
	require.NoError(t, err)

	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[1], `"Golden Curry"`)
	assert.Contains(t, userAgent, "KitchenSwipe")

	draft := ExtractRecipe(blocks)
	require.NotNil(t, draft)
	assert.Equal(t, "Golden Curry", draft.Title)
}

func TestFetchJSONLDErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewPageFetcher(5 * time.Second)
	_, err := fetcher.FetchJSONLD(context.Background(), server.URL+"/missing")
	assert.Error(t, err)
}

func TestFetchJSONLDUnreachable(t *testing.T) {
	fetcher := NewPageFetcher(time.Second)
	_, err := fetcher.FetchJSONLD(context.Background(), "http://127.0.0.1:1/nothing")
	assert.Error(t, err)
}
