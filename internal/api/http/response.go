package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"agroverse-backend/internal/logger"
	"agroverse-backend/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, messageResponse{Message: msg})
}

// respondError maps service errors onto the HTTP error taxonomy. Anything
// unrecognized degrades to a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondMessage(w, http.StatusNotFound, capitalize(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		respondMessage(w, http.StatusForbidden, capitalize(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrEquipmentUnavailable),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrWrongPassword):
		respondMessage(w, http.StatusBadRequest, capitalize(err.Error()))
	default:
		logger.Error("Unhandled error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
