package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := hasher.Hash("testpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "testpass123", hash)

	assert.True(t, hasher.Compare(hash, "testpass123"))
	assert.False(t, hasher.Compare(hash, "otherpass"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	first, err := hasher.Hash("testpass123")
	require.NoError(t, err)
	second, err := hasher.Hash("testpass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLegacyHasherMatchesKnownDigest(t *testing.T) {
	hasher := LegacyHasher{}

	// deterministic SHA-256 hex of "password"
	hash, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", hash)

	assert.True(t, hasher.Compare(hash, "password"))
	assert.False(t, hasher.Compare(hash, "Password"))
}
