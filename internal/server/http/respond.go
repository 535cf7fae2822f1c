package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/zbutler/habit-api/internal/errs"
)

// errorResponse is the uniform client-visible error shape.
type errorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// respondJSON writes a JSON payload with the given status code.
func (s *Server) respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("marshal response", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		s.log.Error("write response", zap.Error(err))
	}
}

// respondError is the single point mapping failures to client-visible error
// shapes. Unclassified failures become a generic 500; the original error is
// logged and never leaked.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var code int
	var message string

	switch {
	case errors.Is(err, errs.ErrValidation):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
		message = "not found"
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
		message = "unauthorized"
	default:
		code = http.StatusInternalServerError
		message = "internal server error"
		s.log.Error("unclassified failure",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	s.respondJSON(w, code, errorResponse{Message: message, Status: code})
}
