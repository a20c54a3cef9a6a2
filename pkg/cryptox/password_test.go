package cryptox_test

import (
	"strings"
	"testing"

	"github.com/quietgrove/folio/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)

	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.Error(t, cryptox.VerifyPassword("wrong password", hash))
	require.Error(t, cryptox.VerifyPassword("", hash))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("secret")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("secret")
	require.NoError(t, err)

	// Same password, different salts, different encodings.
	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifyPassword("secret", a))
	require.NoError(t, cryptox.VerifyPassword("secret", b))
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	require.Error(t, cryptox.VerifyPassword("secret", "not-a-hash"))
}
