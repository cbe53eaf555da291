package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchenswipe/internal/controllers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCacheStatus struct {
	status map[string]interface{}
	err    error
}

func (f fakeCacheStatus) GetStatus(context.Context) (map[string]interface{}, error) {
	return f.status, f.err
}

type fakeWorkerStatus map[string]interface{}

func (f fakeWorkerStatus) GetStatus() map[string]interface{} { return f }

func TestHealthEndpoints(t *testing.T) {
	hc := controllers.NewHealthController(
		fakeCacheStatus{status: map[string]interface{}{"connected": true, "cached_cards": 3}},
		fakeWorkerStatus{"running": true, "saved": 2},
	)
	router := setupTestRouter()
	router.GET("/api", hc.Health)
	router.GET("/debug/cache", hc.CacheStatus)
	router.GET("/debug/jobs", hc.JobStatus)

	w, env := doJSON(t, router, http.MethodGet, "/api", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/cache", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"connected":true,"cached_cards":3}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/jobs", nil))
	var jobs map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	assert.Equal(t, map[string]interface{}{"running": true, "saved": float64(2)}, jobs["save_worker"])
}

func TestCacheStatusUnavailable(t *testing.T) {
	hc := controllers.NewHealthController(fakeCacheStatus{err: errors.New("dial tcp: refused")}, fakeWorkerStatus{})
	router := setupTestRouter()
	router.GET("/debug/cache", hc.CacheStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/cache", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "dial tcp: refused")
}
