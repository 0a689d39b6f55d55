package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"myvoice/internal/model"
	"myvoice/internal/repository"
)

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service errors onto transport responses: invalid
// submissions are the caller's problem (400, with per-field issues),
// storage connectivity is reported as 503, anything else is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid submission",
			"issues": vErr.Issues,
		})
	case errors.Is(err, repository.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
