package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careerai/go-careerai/users"
)

func TestValidatePasswordStrength(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, users.ValidatePasswordStrength("password1"))
	})

	t.Run("too short", func(t *testing.T) {
		err := users.ValidatePasswordStrength("pass1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("no letter", func(t *testing.T) {
		err := users.ValidatePasswordStrength("12345678")
		require.Error(t, err)
		require.Contains(t, err.Error(), "letter")
	})

	t.Run("no number", func(t *testing.T) {
		err := users.ValidatePasswordStrength("passwordonly")
		require.Error(t, err)
		require.Contains(t, err.Error(), "number")
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := users.HashPassword("password1")
	require.NoError(t, err)
	require.NotEqual(t, "password1", hash)

	require.True(t, users.CheckPasswordHash("password1", hash))
	require.False(t, users.CheckPasswordHash("wrong", hash))
}

func TestUser_FullName(t *testing.T) {
	u := &users.User{FirstName: "Jane", LastName: "Doe", Username: "jane"}
	require.Equal(t, "Jane Doe", u.FullName())

	u = &users.User{Username: "jane"}
	require.Equal(t, "jane", u.FullName())
}
