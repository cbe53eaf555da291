package services

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"kitchenswipe/internal/models"
	"kitchenswipe/internal/repository"
)

// RecipeSubmitter accepts liked recipes for persistence without blocking the
// caller. Submit reports whether the request was queued.
type RecipeSubmitter interface {
	Submit(req models.CreateRecipeRequest) bool
}

type RecipeSaveWorker struct {
	recipeRepo repository.RecipeRepository

	// Job processing
	jobQueue    chan models.CreateRecipeRequest
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.RWMutex

	maxJobTimeout time.Duration

	submitted atomic.Int64
	saved     atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

func NewRecipeSaveWorker(recipeRepo repository.RecipeRepository, workerCount int) *RecipeSaveWorker {
	if workerCount <= 0 {
		workerCount = 2
	}

	return &RecipeSaveWorker{
		recipeRepo:    recipeRepo,
		jobQueue:      make(chan models.CreateRecipeRequest, 100),
		workerCount:   workerCount,
		stopChan:      make(chan struct{}),
		maxJobTimeout: 30 * time.Second,
	}
}

// ========== WORKER LIFECYCLE ==========

func (w *RecipeSaveWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.worker(i)
	}
	log.Printf("[saver] Started %d recipe save workers", w.workerCount)
}

// Stop rejects new submissions and waits until queued saves are finished.
func (w *RecipeSaveWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()
	log.Printf("[saver] Stopped recipe save workers")
}

func (w *RecipeSaveWorker) Submit(req models.CreateRecipeRequest) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.running {
		w.dropped.Add(1)
		log.Printf("[saver] Worker not running, dropping liked recipe %q", req.Name)
		return false
	}

	select {
	case w.jobQueue <- req:
		w.submitted.Add(1)
		return true
	default:
		w.dropped.Add(1)
		log.Printf("[saver] Save queue full, dropping liked recipe %q", req.Name)
		return false
	}
}

// ========== WORKER IMPLEMENTATION ==========

func (w *RecipeSaveWorker) worker(workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			for {
				select {
				case req := <-w.jobQueue:
					w.processJob(workerID, req)
				default:
					return
				}
			}
		case req := <-w.jobQueue:
			w.processJob(workerID, req)
		}
	}
}

func (w *RecipeSaveWorker) processJob(workerID int, req models.CreateRecipeRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), w.maxJobTimeout)
	defer cancel()

	recipe, err := w.recipeRepo.Create(ctx, &req)
	if err != nil {
		w.failed.Add(1)
		log.Printf("[saver] Worker %d error adding liked recipe to database: %v", workerID, err)
		return
	}

	w.saved.Add(1)
	log.Printf("[saver] Worker %d saved liked recipe %d (%s)", workerID, recipe.ID, recipe.Name)
}

func (w *RecipeSaveWorker) GetStatus() map[string]interface{} {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return map[string]interface{}{
		"running":         w.running,
		"worker_count":    w.workerCount,
		"queue_size":      len(w.jobQueue),
		"queue_capacity":  cap(w.jobQueue),
		"max_job_timeout": w.maxJobTimeout.String(),
		"submitted":       w.submitted.Load(),
		"saved":           w.saved.Load(),
		"failed":          w.failed.Load(),
		"dropped":         w.dropped.Load(),
	}
}
