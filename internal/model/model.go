// Package model defines domain entities and request payloads used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Habit is a single tracked habit owned by one user.
// Field names in JSON follow the public API contract.
type Habit struct {
	ID          uuid.UUID `json:"id"`          // generated by the store at creation
	Habit       string    `json:"habit"`       // short label, set only at creation
	Description string    `json:"description"` // mutable via update
	UserID      string    `json:"user"`        // verified subject of the creating caller
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Ver         int64     `json:"version"` // revision counter, starts at 0, bumped on update
}

// CreateHabitRequest is the payload for creating a new habit.
type CreateHabitRequest struct {
	Habit       string `json:"habit"`
	Description string `json:"description"`
}

// UpdateHabitRequest is the payload for updating a habit.
// Only the description is writable; any other fields sent are ignored.
type UpdateHabitRequest struct {
	Description string `json:"description"`
}
