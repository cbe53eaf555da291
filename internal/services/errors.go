package services

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrSessionExhausted   = errors.New("no more recipes in session")
	ErrNothingToUndo      = errors.New("no swipe actions to undo")
	ErrUndoTargetNotFound = errors.New("swipe action to undo no longer exists")
	ErrInvalidBatchSize   = errors.New("batchSize must be a positive integer")
	ErrInvalidAction      = errors.New("action must be like or skip")
)
