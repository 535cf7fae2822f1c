// Package repository declares persistence interfaces implemented by storage backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/zbutler/habit-api/internal/model"
)

// HabitRepository provides CRUD access to persisted habits.
type HabitRepository interface {
	// Create persists a new habit with a generated ID and version 0.
	Create(ctx context.Context, habit, description, userID string) (*model.Habit, error)

	// ListByUser returns all habits owned by the given user, possibly empty.
	ListByUser(ctx context.Context, userID string) ([]model.Habit, error)

	// Get returns a single habit by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Habit, error)

	// UpdateDescription replaces the description, refreshes updated_at and bumps ver.
	// Returns the habit as it exists after the update.
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*model.Habit, error)

	// Delete removes the habit and returns it as it existed before deletion.
	Delete(ctx context.Context, id uuid.UUID) (*model.Habit, error)
}
