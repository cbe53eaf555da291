package database

import (
	"path/filepath"
	"testing"

	"kitchenswipe/internal/config"
	"kitchenswipe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "kitchen.db")

	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, MigrateDatabase(db))

	assert.True(t, db.Migrator().HasTable(&models.SwipeHistory{}))
	assert.True(t, db.Migrator().HasTable(&models.Recipe{}))
	assert.True(t, db.Migrator().HasTable(&models.RecipeIngredient{}))
}

func TestConnectUnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := ConnectDatabase(cfg)
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
