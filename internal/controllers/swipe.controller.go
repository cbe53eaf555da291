package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"kitchenswipe/internal/models"
	"kitchenswipe/internal/search"
	"kitchenswipe/internal/services"
	"kitchenswipe/internal/utils"

	"github.com/gin-gonic/gin"
)

type SwipeController struct {
	swipeService services.SwipeService
}

func NewSwipeController(swipeService services.SwipeService) *SwipeController {
	return &SwipeController{swipeService: swipeService}
}

// InitSession godoc
// @Summary Start a swipe session
// @Description Search for recipes matching the filters and queue them for swiping
// @Tags swipe
// @Accept json
// @Produce json
// @Param filters body models.SwipeSessionRequest false "Session filters"
// @Success 200 {object} utils.Response{data=models.SwipeSessionResponse}
// @Failure 400 {object} utils.Response "Invalid request data"
// @Failure 429 {object} utils.Response "Too many requests"
// @Failure 500 {object} utils.Response "Search API key missing"
// @Router /api/swipe/session [post]
func (sc *SwipeController) InitSession(c *gin.Context) {
	var req models.SwipeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	resp, err := sc.swipeService.InitSession(c.Request.Context(), req)
	if err != nil {
		log.Printf("[swipe][session] Error initializing session: %v", err)
		sc.writeError(c, err, "Failed to initialize swipe session")
		return
	}

	utils.Success(c, http.StatusOK, resp)
}

// Next godoc
// @Summary Get the next card
// @Description Pop the next recipe of the session and resolve it into a card
// @Tags swipe
// @Produce json
// @Param sessionId query string true "Session ID"
// @Success 200 {object} utils.Response{data=models.SwipeCardResponse}
// @Failure 400 {object} utils.Response "Invalid session ID"
// @Failure 404 {object} utils.Response "Session not found or exhausted"
// @Router /api/swipe/next [get]
func (sc *SwipeController) Next(c *gin.Context) {
	var query models.SwipeNextQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	resp, err := sc.swipeService.Advance(c.Request.Context(), query.SessionID)
	if err != nil {
		log.Printf("[swipe][next] Error advancing session %s: %v", query.SessionID, err)
		sc.writeError(c, err, "Failed to get next recipe")
		return
	}

	utils.Success(c, http.StatusOK, resp)
}

// RecordAction godoc
// @Summary Record a swipe
// @Description Record a like or skip; liked recipes are saved in the background
// @Tags swipe
// @Accept json
// @Produce json
// @Param action body models.SwipeActionRequest true "Swipe action"
// @Success 200 {object} utils.Response{data=models.SwipeActionResponse}
// @Failure 400 {object} utils.Response "Invalid request data"
// @Failure 500 {object} utils.Response "Failed to record swipe action"
// @Router /api/swipe/action [post]
func (sc *SwipeController) RecordAction(c *gin.Context) {
	var req models.SwipeActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	resp, err := sc.swipeService.RecordAction(c.Request.Context(), req)
	if err != nil {
		log.Printf("[swipe][action] Error recording %s for %s in session %s: %v", req.Action, req.RecipeID, req.SessionID, err)
		sc.writeError(c, err, "Failed to record swipe action")
		return
	}

	utils.Success(c, http.StatusOK, resp)
}

// Undo godoc
// @Summary Undo the last swipe
// @Description Remove the latest swipe action of the session and return its card
// @Tags swipe
// @Accept json
// @Produce json
// @Param undo body models.SwipeUndoRequest true "Session to undo"
// @Success 200 {object} utils.Response{data=models.SwipeCardResponse}
// @Failure 400 {object} utils.Response "No swipe actions to undo"
// @Router /api/swipe/undo [post]
func (sc *SwipeController) Undo(c *gin.Context) {
	var req models.SwipeUndoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return
	}

	resp, err := sc.swipeService.Undo(c.Request.Context(), req.SessionID)
	if err != nil {
		log.Printf("[swipe][undo] Error undoing last action in session %s: %v", req.SessionID, err)
		sc.writeError(c, err, "Failed to undo swipe action")
		return
	}

	utils.Success(c, http.StatusOK, resp)
}

// writeError maps expected failures to their status and message. Anything
// unexpected gets a 500 with the generic fallback.
func (sc *SwipeController) writeError(c *gin.Context, err error, fallback string) {
	var upstream *search.UpstreamError

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.Error(c, http.StatusNotFound, "Session not found or expired")
	case errors.Is(err, services.ErrSessionExhausted):
		utils.Error(c, http.StatusNotFound, "No more recipes in session")
	case errors.Is(err, services.ErrUndoTargetNotFound):
		utils.Error(c, http.StatusNotFound, "Swipe action to undo not found")
	case errors.Is(err, services.ErrNothingToUndo):
		utils.Error(c, http.StatusBadRequest, "No swipe actions to undo")
	case errors.Is(err, services.ErrInvalidBatchSize), errors.Is(err, services.ErrInvalidAction):
		utils.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, search.ErrMissingAPIKey):
		utils.Error(c, http.StatusInternalServerError, "Search API key missing")
	case errors.As(err, &upstream):
		utils.Error(c, upstream.StatusCode, fmt.Sprintf("Search API error: %d", upstream.StatusCode))
	default:
		utils.Error(c, http.StatusInternalServerError, fallback)
	}
}
