package psswd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHash(t *testing.T) {
	hasher := NewPasswordHash(bcrypt.MinCost)

	hash, err := hasher.HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, hasher.ComparePassword("123456", hash))
	assert.False(t, hasher.ComparePassword("654321", hash))
}
