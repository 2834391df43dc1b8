package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	tok, err := NewToken()
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	// Token is a parseable random UUID.
	u, err := Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), uint8(u.Version()))
	assert.NotEqual(t, Nil, u)
}

func TestTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, err := NewToken()
		require.NoError(t, err)
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}
