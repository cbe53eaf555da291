package controllers

import (
	"context"
	"net/http"
	"runtime"

	"kitchenswipe/internal/utils"

	"github.com/gin-gonic/gin"
)

// CacheStatusReporter is implemented by cache.RedisClient.
type CacheStatusReporter interface {
	GetStatus(ctx context.Context) (map[string]interface{}, error)
}

// WorkerStatusReporter is implemented by services.RecipeSaveWorker.
type WorkerStatusReporter interface {
	GetStatus() map[string]interface{}
}

type HealthController struct {
	cache  CacheStatusReporter
	worker WorkerStatusReporter
}

func NewHealthController(cache CacheStatusReporter, worker WorkerStatusReporter) *HealthController {
	return &HealthController{cache: cache, worker: worker}
}

func (hc *HealthController) Health(c *gin.Context) {
	utils.Success(c, http.StatusOK, gin.H{
		"message": "Kitchen Swipe API is running",
		"version": "1.0.0",
		"status":  "healthy",
	})
}

func (hc *HealthController) CacheStatus(c *gin.Context) {
	status, err := hc.cache.GetStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (hc *HealthController) JobStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"goroutines":  runtime.NumGoroutine(),
		"save_worker": hc.worker.GetStatus(),
	})
}
