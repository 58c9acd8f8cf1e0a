package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestParseClaims(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	tok := signedToken(t, jwt.MapClaims{
		"sub":      "1",
		"username": "alice",
		"is_admin": true,
		"exp":      exp.Unix(),
	})

	c, ok := ParseClaims(tok)
	require.True(t, ok)
	assert.Equal(t, "1", c.Subject)
	assert.Equal(t, "alice", c.Username)
	assert.True(t, c.IsAdmin)
	assert.True(t, exp.Equal(c.ExpiresAt))
}

func TestParseClaims_ExpiredStillReadable(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "2", "exp": time.Now().Add(-time.Hour).Unix()})

	c, ok := ParseClaims(tok)
	require.True(t, ok)
	assert.Equal(t, "2", c.Subject)
}

func TestParseClaims_NotJWT(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, ok := ParseClaims(tok)
		assert.False(t, ok, tok)
	}
}

func TestAuth_Claims(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAuth(t)

	_, ok := a.Claims()
	assert.False(t, ok)

	require.NoError(t, a.Login(ctx, signedToken(t, jwt.MapClaims{"username": "bob"}), &models.User{ID: 3}))
	c, ok := a.Claims()
	require.True(t, ok)
	assert.Equal(t, "bob", c.Username)
}
