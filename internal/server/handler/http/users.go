package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kamilprz/activitylog/internal/models"
)

// UserService defines the interface for user operations required by the
// HTTP handlers.
type UserService interface {
	// List returns every user.
	List(ctx context.Context) ([]models.User, error)
	// Get returns the user with the given id, or models.ErrNotFound.
	Get(ctx context.Context, id string) (*models.User, error)
	// AddActivity merges a dated activity into the user's day log and returns
	// the updated user.
	AddActivity(ctx context.Context, id, date, typ, label string, duration *float64) (*models.User, error)
	// ActivitiesOn returns the activities logged on the given date, or
	// models.ErrNotFound.
	ActivitiesOn(ctx context.Context, id, date string) ([]models.Activity, error)
	// Delete removes the user.
	Delete(ctx context.Context, id string) error
}

// UserHandler handles HTTP requests for listing, reading, updating and
// deleting users and their activity logs.
type UserHandler struct {
	// UserService performs the underlying user operations.
	UserService UserService
}

// updateRequest represents the JSON payload for adding an activity.
// Duration is a pointer so a missing field can be told apart from zero.
type updateRequest struct {
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Duration *float64 `json:"duration"`
}

// List handles GET /api/users, answering the user count and the users
// themselves. Password hashes are excluded by serialization.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(users),
		"users": users,
	})
}

// Get handles GET /api/users/{id}, answering the user or 404.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "No user found for this id."})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update handles PATCH /api/users/{id}. It merges the posted activity into
// the user's day log and answers 201 with the updated user. Malformed
// activities answer 400, an activity dated before the log's last day answers
// 409 and leaves the log unchanged.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.AddActivity(r.Context(), id, req.Date, req.Type, req.Label, req.Duration)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "No user found for this id."})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User updated.",
		"user":    user,
	})
}

// ActivitiesByDate handles GET /api/getDate/{id}/{date}, answering the
// activities the user logged on that date, or 404 when no day matches.
func (h *UserHandler) ActivitiesByDate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	date := chi.URLParam(r, "date")

	acts, err := h.UserService.ActivitiesOn(r.Context(), id, date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, acts)
}

// Delete handles DELETE /api/users/{id}. Deleting an absent user still
// answers 200.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted."})
}
