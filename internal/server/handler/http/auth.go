// Package http provides HTTP handlers for user registration and login.
package http

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthService defines the interface for authentication operations required by
// the HTTP handlers.
type AuthService interface {
	// Register creates a new user and returns its id.
	Register(ctx context.Context, username, password string) (string, error)
	// Login verifies credentials and returns a bearer token and the user id.
	Login(ctx context.Context, username, password string) (token string, userID string, err error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/users/register.
// It expects a JSON body with non-empty "username" and "password" fields and
// answers 201 with the new user's id, or 409 when the username is taken.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	userID, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"userId": userID})
}

// Login handles POST /api/users/login.
// On matching credentials it answers 201 with a bearer token and the user id.
// Every authentication failure produces the same 401 body regardless of which
// check failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, userID, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Authentication successful.",
		"token":   token,
		"userId":  userID,
	})
}
