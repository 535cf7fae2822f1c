package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/zbutler/habit-api/internal/errs"
	"github.com/zbutler/habit-api/internal/model"
	"github.com/zbutler/habit-api/internal/repository"
)

type fakeHabitRepo struct {
	createInHabit string
	createInDesc  string
	createInUser  string
	createOut     *model.Habit
	createErr     error

	listInUser string
	listOut    []model.Habit
	listErr    error

	getInID uuid.UUID
	getOut  *model.Habit
	getErr  error

	updInID   uuid.UUID
	updInDesc string
	updOut    *model.Habit
	updErr    error

	delInID uuid.UUID
	delOut  *model.Habit
	delErr  error
}

var _ repository.HabitRepository = (*fakeHabitRepo)(nil)

func (f *fakeHabitRepo) Create(_ context.Context, habit, description, userID string) (*model.Habit, error) {
	f.createInHabit, f.createInDesc, f.createInUser = habit, description, userID
	return f.createOut, f.createErr
}
func (f *fakeHabitRepo) ListByUser(_ context.Context, userID string) ([]model.Habit, error) {
	f.listInUser = userID
	return append([]model.Habit(nil), f.listOut...), f.listErr
}
func (f *fakeHabitRepo) Get(_ context.Context, id uuid.UUID) (*model.Habit, error) {
	f.getInID = id
	return f.getOut, f.getErr
}
func (f *fakeHabitRepo) UpdateDescription(_ context.Context, id uuid.UUID, description string) (*model.Habit, error) {
	f.updInID, f.updInDesc = id, description
	return f.updOut, f.updErr
}
func (f *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) (*model.Habit, error) {
	f.delInID = id
	return f.delOut, f.delErr
}

func TestHabitService_Create_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeHabitRepo{}
	s := NewHabitService(repo)

	cases := []struct {
		name        string
		user        string
		habit       string
		description string
	}{
		{"empty habit", "tony1993", "", "code every day"},
		{"whitespace habit", "tony1993", "   ", "code every day"},
		{"empty description", "tony1993", "coding", ""},
		{"no subject", "", "coding", "code every day"},
	}
	for _, tc := range cases {
		if _, err := s.Create(ctx, tc.user, tc.habit, tc.description); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", tc.name, err)
		}
	}
	if repo.createInHabit != "" {
		t.Fatalf("repo should not be called on validation failure")
	}
}

func TestHabitService_Create_Delegates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	want := &model.Habit{Habit: "coding", Description: "code every day", UserID: "tony1993"}
	repo := &fakeHabitRepo{createOut: want}
	s := NewHabitService(repo)

	got, err := s.Create(ctx, "tony1993", "coding", "code every day")
	if err != nil || got != want {
		t.Fatalf("create: got=%v err=%v", got, err)
	}
	if repo.createInHabit != "coding" || repo.createInDesc != "code every day" || repo.createInUser != "tony1993" {
		t.Fatalf("repo called with wrong args: %+v", repo)
	}
}

func TestHabitService_List_Delegates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeHabitRepo{listOut: []model.Habit{{Habit: "coding"}}}
	s := NewHabitService(repo)

	out, err := s.List(ctx, "tony1993")
	if err != nil || len(out) != 1 {
		t.Fatalf("list: out=%v err=%v", out, err)
	}
	if repo.listInUser != "tony1993" {
		t.Fatalf("want user tony1993, got %q", repo.listInUser)
	}
}

func TestHabitService_MalformedID_IsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeHabitRepo{}
	s := NewHabitService(repo)

	if _, err := s.Get(ctx, "not-a-uuid"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("get: want ErrNotFound, got %v", err)
	}
	if _, err := s.Update(ctx, "not-a-uuid", "x"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("update: want ErrNotFound, got %v", err)
	}
	if _, err := s.Delete(ctx, "not-a-uuid"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound, got %v", err)
	}
	if repo.getInID != uuid.Nil || repo.updInID != uuid.Nil || repo.delInID != uuid.Nil {
		t.Fatalf("repo should not be called on malformed id")
	}
}

func TestHabitService_Update_PassesDescriptionOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	want := &model.Habit{ID: id, Description: "a new description", Ver: 1}
	repo := &fakeHabitRepo{updOut: want}
	s := NewHabitService(repo)

	got, err := s.Update(ctx, id.String(), "a new description")
	if err != nil || got != want {
		t.Fatalf("update: got=%v err=%v", got, err)
	}
	if repo.updInID != id || repo.updInDesc != "a new description" {
		t.Fatalf("repo called with wrong args: id=%v desc=%q", repo.updInID, repo.updInDesc)
	}
}

func TestHabitService_RepoErrorsPassThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	boom := errors.New("store unavailable")
	repo := &fakeHabitRepo{getErr: boom, delErr: errs.ErrNotFound}
	s := NewHabitService(repo)

	if _, err := s.Get(ctx, id.String()); !errors.Is(err, boom) {
		t.Fatalf("get: want passthrough error, got %v", err)
	}
	if _, err := s.Delete(ctx, id.String()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound, got %v", err)
	}
}
