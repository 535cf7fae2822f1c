package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/zbutler/habit-api/internal/errs"
	"github.com/zbutler/habit-api/internal/model"
)

// HabitRepo implements HabitRepository using PostgreSQL.
type HabitRepo struct{ db *DB }

// NewHabitRepo constructs a habit repository.
func NewHabitRepo(db *DB) *HabitRepo { return &HabitRepo{db: db} }

// Create inserts a new habit row with a generated ID, version 0
// and created_at == updated_at.
func (r *HabitRepo) Create(ctx context.Context, habit, description, userID string) (*model.Habit, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	const q = `
INSERT INTO habits (id, habit, description, user_id, created_at, updated_at, ver)
VALUES ($1, $2, $3, $4, $5, $5, 0)`
	if _, err := r.db.Pool.Exec(ctx, q, id, habit, description, userID, now); err != nil {
		return nil, err
	}

	return &model.Habit{
		ID:          id,
		Habit:       habit,
		Description: description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Ver:         0,
	}, nil
}

// ListByUser returns all habits owned by userID. The result is never nil so an
// empty list serializes as a JSON array.
func (r *HabitRepo) ListByUser(ctx context.Context, userID string) ([]model.Habit, error) {
	const q = `
SELECT id, habit, description, user_id, created_at, updated_at, ver
FROM habits WHERE user_id=$1`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Habit{}
	for rows.Next() {
		var h model.Habit
		if err = rows.Scan(&h.ID, &h.Habit, &h.Description, &h.UserID, &h.CreatedAt, &h.UpdatedAt, &h.Ver); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Get returns a single habit by id.
func (r *HabitRepo) Get(ctx context.Context, id uuid.UUID) (*model.Habit, error) {
	const q = `
SELECT id, habit, description, user_id, created_at, updated_at, ver
FROM habits WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// UpdateDescription replaces the description, refreshes updated_at, bumps ver
// and returns the row as it exists after the update.
func (r *HabitRepo) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*model.Habit, error) {
	const q = `
UPDATE habits SET description=$2, updated_at=$3, ver=ver+1
WHERE id=$1
RETURNING id, habit, description, user_id, created_at, updated_at, ver`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id, description, time.Now().UTC()))
}

// Delete removes the row and returns it as it existed before deletion.
func (r *HabitRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Habit, error) {
	const q = `
DELETE FROM habits WHERE id=$1
RETURNING id, habit, description, user_id, created_at, updated_at, ver`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

func (r *HabitRepo) scanOne(row pgx.Row) (*model.Habit, error) {
	var h model.Habit
	if err := row.Scan(&h.ID, &h.Habit, &h.Description, &h.UserID, &h.CreatedAt, &h.UpdatedAt, &h.Ver); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}
