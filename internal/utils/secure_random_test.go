package utils_test

import (
	"testing"

	"github.com/gamescorehq/gamescore_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	token, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	// Hex encoding doubles the byte length.
	assert.Len(t, token, 64)

	other, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
