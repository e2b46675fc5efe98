package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("123")
	require.NoError(t, err)
	assert.True(t, IsHashed(hash))
	assert.NotEqual(t, "123", hash)

	ok, err := VerifyPassword(hash, "123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsHashed(t *testing.T) {
	assert.False(t, IsHashed("123"))
	assert.False(t, IsHashed(""))
}
