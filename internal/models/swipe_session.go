package models

const DefaultBatchSize = 20

// SwipeSessionRequest carries the filters used to seed a session.
type SwipeSessionRequest struct {
	Dietary   []string `json:"dietary"`
	Cuisine   []string `json:"cuisine"`
	Sites     []string `json:"sites"`
	BatchSize *int     `json:"batchSize" binding:"omitempty,min=1"`
}

// Size returns the requested batch size, falling back to the default.
func (r SwipeSessionRequest) Size() int {
	if r.BatchSize == nil {
		return DefaultBatchSize
	}
	return *r.BatchSize
}

type SwipeSessionResponse struct {
	SessionID string `json:"sessionId"`
	Remaining int    `json:"remaining"`
}

type SwipeCardResponse struct {
	Card      RecipeCard `json:"card"`
	Remaining int        `json:"remaining"`
}

type SwipeActionRequest struct {
	SessionID string `json:"sessionId" binding:"required,uuid"`
	RecipeID  string `json:"recipeId" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=like skip"`
}

type SwipeActionResponse struct {
	RecipeID string `json:"recipeId"`
	Action   string `json:"action"`
}

type SwipeUndoRequest struct {
	SessionID string `json:"sessionId" binding:"required,uuid"`
}

type SwipeNextQuery struct {
	SessionID string `form:"sessionId" binding:"required,uuid"`
}
