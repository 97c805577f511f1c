package token

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilprz/activitylog/internal/models"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer([]byte("secret"), time.Hour)

	tok, err := issuer.Issue("alice", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	identity, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "user-1", identity.UserID)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer([]byte("secret"), time.Hour)
	other := NewIssuer([]byte("different"), time.Hour)

	tok, err := issuer.Issue("alice", "user-1")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer([]byte("secret"), -time.Minute)

	tok, err := issuer.Issue("alice", "user-1")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewIssuer([]byte("secret"), time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.True(t, errors.Is(err, models.ErrInvalidToken), "token %q", tok)
	}
}
