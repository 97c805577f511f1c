package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kamilprz/activitylog/internal/models"
)

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its HTTP status and body. Anything
// outside the known taxonomy is flattened to an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, models.ErrAuthenticationFailed), errors.Is(err, models.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Authentication failed."})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "none found"})
	case errors.Is(err, models.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Username taken."})
	case errors.Is(err, models.ErrPastDate):
		writeJSON(w, http.StatusConflict, map[string]string{
			"message": "Cannot add activity for a day in the past. Please enter a valid date.",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
