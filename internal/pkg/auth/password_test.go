package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret123", hash)

	assert.True(t, CheckPassword(hash, "s3cret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_SaltsEveryHash(t *testing.T) {
	first, err := HashPassword("s3cret123")
	require.NoError(t, err)
	second, err := HashPassword("s3cret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
