package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabogames/collabo-go/auth"
	"github.com/collabogames/collabo-go/config"
)

func TestBcryptVerifier(t *testing.T) {
	verifier := auth.BcryptVerifier{}

	t.Run("correct password verifies", func(t *testing.T) {
		stored, err := verifier.PrepareForStorage("correctpassword")
		require.NoError(t, err)

		assert.True(t, verifier.Verify("correctpassword", stored))
	})

	t.Run("incorrect password fails", func(t *testing.T) {
		stored, err := verifier.PrepareForStorage("correctpassword")
		require.NoError(t, err)

		assert.False(t, verifier.Verify("wrongpassword", stored))
	})

	t.Run("stored form is a bcrypt hash, not the password", func(t *testing.T) {
		stored, err := verifier.PrepareForStorage("secret1")
		require.NoError(t, err)

		assert.NotEqual(t, "secret1", stored)
		assert.True(t, strings.HasPrefix(stored, "$2"))
	})

	t.Run("same password produces different hashes (fresh salt)", func(t *testing.T) {
		first, err := verifier.PrepareForStorage("samepassword")
		require.NoError(t, err)
		second, err := verifier.PrepareForStorage("samepassword")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, verifier.Verify("samepassword", first))
		assert.True(t, verifier.Verify("samepassword", second))
	})

	t.Run("garbage stored credential never verifies", func(t *testing.T) {
		assert.False(t, verifier.Verify("anything", "not-a-bcrypt-hash"))
	})
}

func TestPlaintextVerifier(t *testing.T) {
	verifier := auth.PlaintextVerifier{}

	t.Run("stores the password unchanged", func(t *testing.T) {
		stored, err := verifier.PrepareForStorage("secret1")
		require.NoError(t, err)
		assert.Equal(t, "secret1", stored)
	})

	t.Run("verifies by equality", func(t *testing.T) {
		assert.True(t, verifier.Verify("secret1", "secret1"))
		assert.False(t, verifier.Verify("secret1", "secret2"))
	})
}

func TestNewVerifier(t *testing.T) {
	t.Run("bcrypt mode selects bcrypt", func(t *testing.T) {
		assert.IsType(t, auth.BcryptVerifier{}, auth.NewVerifier(config.PasswordModeBcrypt))
	})

	t.Run("plaintext mode requires the explicit opt-in", func(t *testing.T) {
		assert.IsType(t, auth.PlaintextVerifier{}, auth.NewVerifier(config.PasswordModePlaintext))
	})

	t.Run("anything else falls back to bcrypt", func(t *testing.T) {
		assert.IsType(t, auth.BcryptVerifier{}, auth.NewVerifier(""))
		assert.IsType(t, auth.BcryptVerifier{}, auth.NewVerifier("scrypt"))
	})
}
