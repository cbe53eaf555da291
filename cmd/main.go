package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchenswipe/database"
	"kitchenswipe/internal/cache"
	"kitchenswipe/internal/config"
	"kitchenswipe/internal/controllers"
	"kitchenswipe/internal/middleware"
	"kitchenswipe/internal/repository"
	"kitchenswipe/internal/scraper"
	"kitchenswipe/internal/search"
	"kitchenswipe/internal/services"
	"kitchenswipe/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load(".env")

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	stopMonitor := make(chan struct{})
	database.MonitorDBConnections(db, stopMonitor)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	if cfg.Search.APIKey == "" {
		log.Println("Warning: BRAVE_API_KEY is not set, session init will fail until it is configured")
	}

	// Initialize stores and repositories
	cardCache := cache.NewCardCache(redisClient.Client(), cfg.Swipe.CardTTL)
	sessionQueue := cache.NewSessionQueue(redisClient.Client(), cfg.Swipe.SessionTTL)
	historyRepo := repository.NewSwipeHistoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	recipeSaveWorker := services.NewRecipeSaveWorker(recipeRepo, cfg.Swipe.SaveWorkers)
	log.Printf("Starting recipe save worker with %d workers...", cfg.Swipe.SaveWorkers)
	recipeSaveWorker.Start()

	resolver := services.NewResolver(cardCache, scraper.NewPageFetcher(cfg.Swipe.FetchTimeout))
	swipeService := services.NewSwipeService(
		search.NewBraveClient(cfg.Search.APIKey, cfg.Search.BaseURL),
		sessionQueue,
		cardCache,
		resolver,
		historyRepo,
		recipeSaveWorker,
		cfg.Swipe.UndoMode == config.UndoModeResolve,
	)
	log.Printf("Undo mode: %s", cfg.Swipe.UndoMode)

	// Initialize controllers
	swipeController := controllers.NewSwipeController(swipeService)
	recipeController := controllers.NewRecipeController(recipeRepo)
	healthController := controllers.NewHealthController(redisClient, recipeSaveWorker)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())

	routes.RegisterHealthRoutes(router, healthController)
	routes.RegisterSwipeRoutes(router, swipeController, middleware.RateLimit(cfg.Swipe.SessionRate, cfg.Swipe.SessionBurst))
	routes.RegisterRecipeRoutes(router, recipeController)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        corsHandler.Handler(router),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Kitchen Swipe API starting on port %s", cfg.Port)
		log.Printf("Health Check: http://localhost:%s/api", cfg.Port)
		log.Printf("Cache Debug: http://localhost:%s/debug/cache", cfg.Port)
		log.Printf("Job Worker Debug: http://localhost:%s/debug/jobs", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	recipeSaveWorker.Stop()
	close(stopMonitor)
	log.Println("Server exited")
}
