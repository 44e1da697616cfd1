package engine

import (
	"errors"
	"fmt"
)

// RuntimeError represents an error detected while running or replaying.
type RuntimeError struct {
	// Code identifies the error category.
	Code RuntimeErrorCode

	// Message is a human-readable description.
	Message string

	// RunID identifies the affected run.
	RunID string

	// Details contains additional context.
	Details map[string]string
}

// RuntimeErrorCode categorizes runtime errors.
type RuntimeErrorCode string

const (
	// ErrCodeStoreRequired indicates an operation needs a configured store.
	ErrCodeStoreRequired RuntimeErrorCode = "STORE_REQUIRED"

	// ErrCodeReplayMismatch indicates a replay diverged from the stored run.
	ErrCodeReplayMismatch RuntimeErrorCode = "REPLAY_MISMATCH"

	// ErrCodeConfigHashMismatch indicates the stored config no longer
	// matches its stored hash.
	ErrCodeConfigHashMismatch RuntimeErrorCode = "CONFIG_HASH_MISMATCH"
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.RunID != "" {
		return fmt.Sprintf("%s: %s (run=%s)", e.Code, e.Message, e.RunID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsReplayMismatch returns true if err is a replay divergence, including
// a config hash mismatch. Uses errors.As to handle wrapped errors.
func IsReplayMismatch(err error) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == ErrCodeReplayMismatch || re.Code == ErrCodeConfigHashMismatch
	}
	return false
}

// NewReplayMismatchError creates a RuntimeError for a diverged replay.
func NewReplayMismatchError(runID, what string, index int) *RuntimeError {
	return &RuntimeError{
		Code:    ErrCodeReplayMismatch,
		Message: fmt.Sprintf("replay differs from stored %s at index %d", what, index),
		RunID:   runID,
		Details: map[string]string{
			"what":  what,
			"index": fmt.Sprintf("%d", index),
		},
	}
}
