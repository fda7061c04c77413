package utils_test

import (
	"testing"

	"github.com/gamescorehq/gamescore_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "password123", hash)
	assert.True(t, utils.CheckPasswordHash("password123", hash))
	assert.False(t, utils.CheckPasswordHash("password124", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := utils.HashPassword("password123")
	require.NoError(t, err)
	second, err := utils.HashPassword("password123")
	require.NoError(t, err)

	// bcrypt salts each hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, utils.CheckPasswordHash("password123", first))
	assert.True(t, utils.CheckPasswordHash("password123", second))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("password123", "not-a-bcrypt-hash"))
}
