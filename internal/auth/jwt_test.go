package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.GenerateToken("user-1", "alice", true)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsSuperAdmin)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)

	token, err := m.GenerateToken("user-1", "alice", false)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).GenerateToken("user-1", "alice", false)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestPasswordPolicy(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}
