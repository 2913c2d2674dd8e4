package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptRoundTrip(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; the cost does not change behavior.
	hasher := NewBcryptHasher(bcrypt.MinCost)
	verifier := NewBcryptVerifier()

	t.Run("verifies the original password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash)

		assert.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.Error(t, verifier.Compare(hash, "incorrect horse"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("same password")
		require.NoError(t, err)
		second, err := hasher.Hash("same password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
