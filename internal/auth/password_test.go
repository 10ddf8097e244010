package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifiesOriginal(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, VerifyPassword(hash, "hunter2"))
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.False(t, VerifyPassword(hash, "hunter3"))
}

// A malformed digest must read the same as a wrong password.
func TestVerifyPasswordRejectsMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-digest", "hunter2"))
	assert.False(t, VerifyPassword("", "hunter2"))
}

func TestHashPasswordRejectsInvalidCost(t *testing.T) {
	_, err := HashPassword("hunter2", 99)
	assert.Error(t, err)
}
