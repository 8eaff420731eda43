package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("secret")

func TestGenerateValidateUserJWT(t *testing.T) {
	token, err := GenerateUserJWT(42, domain.RoleAdmin, time.Hour, testKey)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestValidateUserJWT_Expired(t *testing.T) {
	token, err := GenerateUserJWT(1, domain.RolePopulation, -time.Minute, testKey)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, testKey)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateUserJWT_WrongKey(t *testing.T) {
	token, err := GenerateUserJWT(1, domain.RolePopulation, time.Hour, testKey)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, []byte("other"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}
