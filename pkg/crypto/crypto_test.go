package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$"))

	require.True(t, ComparePassword(hash, "secret1"))
	require.False(t, ComparePassword(hash, "secret2"))
	require.False(t, ComparePassword("not-a-hash", "secret1"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, ComparePassword(h1, "secret1"))
	require.True(t, ComparePassword(h2, "secret1"))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("12345", bcrypt.MinCost)
	require.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = HashPassword("", bcrypt.MinCost)
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestHashPassword_InvalidCost(t *testing.T) {
	hash, err := HashPassword("secret1", 100)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, DefaultCost, cost)
}
