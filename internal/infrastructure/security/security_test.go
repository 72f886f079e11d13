package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.Compare(hash, "correct horse"))
	assert.Error(t, h.Compare(hash, "wrong horse"))
}

func TestTokenRoundtrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("ana@example.com")
	require.NoError(t, err)

	email, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Generate("ana@example.com")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate("ana@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	_, err := m.Validate("not.a.token")
	assert.Error(t, err)
}
