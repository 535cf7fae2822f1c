package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zbutler/habit-api/internal/auth"
	"github.com/zbutler/habit-api/internal/errs"
	"github.com/zbutler/habit-api/internal/model"
)

// createHabit persists a new habit owned by the verified caller.
func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, fmt.Errorf("%w: malformed request body", errs.ErrValidation))
		return
	}

	subject, _ := auth.SubjectFromCtx(r.Context())
	habit, err := s.habits.Create(r.Context(), subject, req.Habit, req.Description)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, habit)
}

// listHabits returns all habits owned by the verified caller.
func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	subject, _ := auth.SubjectFromCtx(r.Context())
	habits, err := s.habits.List(r.Context(), subject)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, habits)
}

// getHabit returns a single habit by path id.
func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	habit, err := s.habits.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, habit)
}

// updateHabit applies the description from the request body. Anything else in
// the body is ignored; habit and user are not writable after creation.
func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, fmt.Errorf("%w: malformed request body", errs.ErrValidation))
		return
	}

	habit, err := s.habits.Update(r.Context(), chi.URLParam(r, "id"), req.Description)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, habit)
}

// deleteHabit removes the habit and returns its pre-deletion state.
func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habit, err := s.habits.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, habit)
}
