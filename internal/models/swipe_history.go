package models

import "time"

const (
	SwipeActionLike = "like"
	SwipeActionSkip = "skip"
)

// SwipeHistory is one row of the append-only swipe action log.
type SwipeHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(36);not null;index" json:"session_id"`
	RecipeID  string    `gorm:"type:text;not null" json:"recipe_id"`
	Action    string    `gorm:"type:varchar(10);not null" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

func (SwipeHistory) TableName() string {
	return "swipe_history"
}
