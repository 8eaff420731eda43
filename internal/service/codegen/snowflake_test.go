package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake_Generate(t *testing.T) {
	gen, err := NewSnowflake(1)
	require.NoError(t, err)

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		code := gen.Generate()
		assert.NotEmpty(t, code)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}

func TestNewSnowflake_InvalidNode(t *testing.T) {
	_, err := NewSnowflake(-1)
	assert.Error(t, err)
}
