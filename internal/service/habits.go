// Package service contains the application service for habit operations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/zbutler/habit-api/internal/errs"
	"github.com/zbutler/habit-api/internal/model"
	"github.com/zbutler/habit-api/internal/repository"
)

// HabitService defines CRUD operations over habits. Identifier arguments are
// raw strings from the transport; the service decides whether they are
// well formed.
type HabitService interface {
	// Create validates required fields and persists a new habit owned by userID.
	Create(ctx context.Context, userID, habit, description string) (*model.Habit, error)
	// List returns all habits owned by userID, possibly empty.
	List(ctx context.Context, userID string) ([]model.Habit, error)
	// Get returns a single habit by its string id.
	Get(ctx context.Context, id string) (*model.Habit, error)
	// Update replaces only the description and returns the updated habit.
	Update(ctx context.Context, id, description string) (*model.Habit, error)
	// Delete removes the habit and returns its pre-deletion state.
	Delete(ctx context.Context, id string) (*model.Habit, error)
}

type HabitServiceImpl struct {
	repo repository.HabitRepository
}

// NewHabitService constructs HabitService over the given repository.
func NewHabitService(repo repository.HabitRepository) *HabitServiceImpl {
	return &HabitServiceImpl{repo: repo}
}

// Create validates input and delegates persistence to the repository.
// Validation rules:
// - habit not empty
// - description not empty
// - userID not empty (an authenticated subject is required to own the record)
func (s *HabitServiceImpl) Create(ctx context.Context, userID, habit, description string) (*model.Habit, error) {
	if strings.TrimSpace(habit) == "" {
		return nil, fmt.Errorf("%w: habit is required", errs.ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", errs.ErrValidation)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", errs.ErrValidation)
	}
	return s.repo.Create(ctx, habit, description, userID)
}

// List returns the caller's habits. An unknown or empty userID matches
// nothing and yields an empty list rather than an error.
func (s *HabitServiceImpl) List(ctx context.Context, userID string) ([]model.Habit, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get fetches a single habit. A malformed id cannot address any record, so it
// reports the same outcome as a missing one.
func (s *HabitServiceImpl) Get(ctx context.Context, id string) (*model.Habit, error) {
	hid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, hid)
}

// Update applies the description only, regardless of what else the caller sent.
func (s *HabitServiceImpl) Update(ctx context.Context, id, description string) (*model.Habit, error) {
	hid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateDescription(ctx, hid, description)
}

// Delete removes the habit and returns it as it existed before deletion.
func (s *HabitServiceImpl) Delete(ctx context.Context, id string) (*model.Habit, error) {
	hid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, hid)
}

func parseID(id string) (uuid.UUID, error) {
	hid, err := uuid.FromString(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed habit id: %w", errs.ErrNotFound)
	}
	return hid, nil
}
