package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	t.Parallel()

	plaintext, hash, err := NewResetToken()
	require.NoError(t, err)

	// 32 random bytes, hex encoded
	assert.Len(t, plaintext, 64)
	assert.NotEqual(t, plaintext, hash)
	assert.Equal(t, HashResetToken(plaintext), hash)
}

func TestNewResetToken_Unique(t *testing.T) {
	t.Parallel()

	p1, _, err := NewResetToken()
	require.NoError(t, err)
	p2, _, err := NewResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestHashResetToken_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HashResetToken("abc"), HashResetToken("abc"))
	assert.NotEqual(t, HashResetToken("abc"), HashResetToken("abd"))
}
