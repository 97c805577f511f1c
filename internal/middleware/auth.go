// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kamilprz/activitylog/internal/token"
)

type ctxKey string

const identityKey ctxKey = "identity"

// TokenVerifier validates a bearer token and returns the identity it asserts.
type TokenVerifier interface {
	Verify(tokenString string) (token.Identity, error)
}

// WithAuth is a middleware that gates protected routes behind bearer-token
// authentication.
//
// It expects an "Authorization: Bearer <token>" header, verifies the token,
// and on success stores the decoded identity in the request context for
// downstream handlers. On a missing or invalid token it answers 401 with the
// same generic message for every failure mode and does not invoke the
// wrapped handler.
func WithAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				unauthorized(w)
				return
			}
			identity, err := verifier.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Authentication failed."})
}

// IdentityFromContext extracts the authenticated identity stored by WithAuth.
// The second return is false if the request was not authenticated.
func IdentityFromContext(ctx context.Context) (token.Identity, bool) {
	id, ok := ctx.Value(identityKey).(token.Identity)
	return id, ok
}
