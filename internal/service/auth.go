// Package service provides the business logic for authentication and user
// activity logs, delegating persistence to repositories.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kamilprz/activitylog/internal/models"
)

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// FindByUsername returns the user with the given username, or
	// models.ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Create persists a new user record. Returns models.ErrUsernameTaken on
	// a username collision.
	Create(ctx context.Context, user *models.User) error
}

// TokenIssuer produces signed bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(username, userID string) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   AuthRepository
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository and
// token issuer.
func NewAuthService(repo AuthRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// new user's id. Returns models.ErrUsernameTaken when the username is already
// registered. The check-then-insert is not atomic; the storage layer's unique
// constraint reports a concurrent duplicate as the same conflict.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return "", models.ErrUsernameTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// Login verifies the credentials and returns a signed token plus the user id.
// Every failure branch funnels through failLogin so a missing user and a
// wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return failLogin()
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return failLogin()
	}

	tok, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return "", "", err
	}
	return tok, user.ID, nil
}

// failLogin is the single location constructing the authentication failure,
// so the message cannot drift between branches.
func failLogin() (string, string, error) {
	return "", "", models.ErrAuthenticationFailed
}
