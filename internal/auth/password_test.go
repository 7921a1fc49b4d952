package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))

	// salted: two hashes of the same input differ, both still verify
	other, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
	assert.True(t, CheckPassword("correct horse battery staple", other))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
