// Package token issues and verifies the signed bearer tokens used to
// authenticate API requests.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kamilprz/activitylog/internal/models"
)

// Identity is the decoded subject of a verified token.
type Identity struct {
	Username string
	UserID   string
}

// Claims embeds the registered JWT claims plus the user identity.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// Issuer creates and verifies HS256-signed tokens with a fixed validity window.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer signing with secret; tokens expire ttl after issue.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue produces a signed token embedding username and userID.
func (i *Issuer) Issue(username, userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Username: username,
		UserID:   userID,
	})
	return t.SignedString(i.secret)
}

// Verify parses and validates a token string, returning the embedded identity.
// A malformed, tampered or expired token yields models.ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, models.ErrInvalidToken
	}
	if !t.Valid {
		return Identity{}, models.ErrInvalidToken
	}

	return Identity{Username: claims.Username, UserID: claims.UserID}, nil
}
