package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SWIPE_SESSION_TTL", "")
	t.Setenv("SWIPE_UNDO_MODE", "")
	t.Setenv("BRAVE_API_KEY", "")

	cfg := Load("does-not-exist.env")

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 6*time.Hour, cfg.Swipe.SessionTTL)
	assert.Equal(t, 6*time.Hour, cfg.Swipe.CardTTL)
	assert.Equal(t, UndoModeStub, cfg.Swipe.UndoMode)
	assert.Empty(t, cfg.Search.APIKey)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SWIPE_SESSION_TTL", "30m")
	t.Setenv("SWIPE_UNDO_MODE", "RESOLVE")
	t.Setenv("SWIPE_SAVE_WORKERS", "4")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://kitchen.example")

	cfg := Load("does-not-exist.env")

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.Swipe.SessionTTL)
	assert.Equal(t, UndoModeResolve, cfg.Swipe.UndoMode)
	assert.Equal(t, 4, cfg.Swipe.SaveWorkers)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, []string{"http://localhost:5173", "https://kitchen.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SWIPE_CARD_TTL", "soon")
	t.Setenv("SWIPE_SAVE_WORKERS", "-1")
	t.Setenv("SWIPE_UNDO_MODE", "rewind")

	cfg := Load("does-not-exist.env")

	assert.Equal(t, 6*time.Hour, cfg.Swipe.CardTTL)
	assert.Equal(t, 2, cfg.Swipe.SaveWorkers)
	assert.Equal(t, UndoModeStub, cfg.Swipe.UndoMode)
}
