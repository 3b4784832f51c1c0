package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secreto1")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", hash)

	assert.True(t, hasher.Check("secreto1", hash))
	assert.False(t, hasher.Check("secreto2", hash))
	assert.False(t, hasher.Check("secreto1", "not-a-hash"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, newBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, newBcryptHasher(99).cost)
	assert.Equal(t, 12, newBcryptHasher(12).cost)
}
