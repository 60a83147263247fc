package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret")

	access, refresh, err := m.Generate("u1", "ann@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "ann@example.com", claims.Email)

	claims, err = m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	m := NewTokenManager("same", "same")
	access, refresh, err := m.Generate("u1", "")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredAccessToken(t *testing.T) {
	m := NewTokenManager("a", "r")
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }
	access, _, err := m.Generate("u1", "")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m := NewTokenManager("a", "r")
	_, r1, err := m.Generate("u1", "")
	require.NoError(t, err)
	_, r2, err := m.Generate("u1", "")
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()
	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "secret1"))
	assert.Error(t, h.Compare(hash, "secret2"))
}
