package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	UndoModeStub    = "stub"
	UndoModeResolve = "resolve"
)

// Config holds all application configuration
type Config struct {
	Port string

	Database struct {
		Driver     string
		Host       string
		User       string
		Password   string
		Name       string
		Port       string
		SSLMode    string
		SQLitePath string
	}

	RedisURL string

	Search struct {
		APIKey  string
		BaseURL string
	}

	Swipe struct {
		SessionTTL   time.Duration
		CardTTL      time.Duration
		UndoMode     string
		SaveWorkers  int
		SessionRate  float64
		SessionBurst int
		FetchTimeout time.Duration
	}

	CORSAllowedOrigins []string
}

// Load reads an optional .env file and builds the config from the environment.
func Load(envFiles ...string) *Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}

	cfg := &Config{}
	cfg.Port = getEnv("PORT", "8080")

	cfg.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.User = os.Getenv("DB_USER")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Name = getEnv("DB_NAME", "kitchen")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SQLitePath = getEnv("SQLITE_PATH", "kitchen.db")

	cfg.RedisURL = getEnv("REDIS_URL", "redis://localhost:6379/0")

	// A missing key is reported when a session is started, not at boot.
	cfg.Search.APIKey = os.Getenv("BRAVE_API_KEY")
	cfg.Search.BaseURL = getEnv("BRAVE_SEARCH_URL", "https://api.search.brave.com/res/v1/web/search")

	cfg.Swipe.SessionTTL = getDuration("SWIPE_SESSION_TTL", 6*time.Hour)
	cfg.Swipe.CardTTL = getDuration("SWIPE_CARD_TTL", 6*time.Hour)
	cfg.Swipe.UndoMode = strings.ToLower(getEnv("SWIPE_UNDO_MODE", UndoModeStub))
	if cfg.Swipe.UndoMode != UndoModeResolve {
		cfg.Swipe.UndoMode = UndoModeStub
	}
	cfg.Swipe.SaveWorkers = getInt("SWIPE_SAVE_WORKERS", 2)
	cfg.Swipe.SessionRate = getFloat("SWIPE_SESSION_RATE", 1)
	cfg.Swipe.SessionBurst = getInt("SWIPE_SESSION_BURST", 5)
	cfg.Swipe.FetchTimeout = getDuration("PAGE_FETCH_TIMEOUT", 10*time.Second)

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
