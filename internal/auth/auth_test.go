package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass123", hash)

	assert.NoError(t, CheckPassword(hash, "testpass123"))
	assert.Error(t, CheckPassword(hash, "wrongpass"))
}

func TestIssueAndParsePair(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := tm.IssuePair(42, "testseller", "seller")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := tm.Parse(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "testseller", claims.Username)
	assert.Equal(t, "seller", claims.UserType)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := tm.Parse(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", time.Hour, 24*time.Hour)
	other := NewTokenManager("secret-b", time.Hour, 24*time.Hour)

	pair, err := tm.IssuePair(1, "user", "customer")
	require.NoError(t, err)

	_, err = other.Parse(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)

	pair, err := tm.IssuePair(1, "user", "customer")
	require.NoError(t, err)

	_, err = tm.Parse(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
