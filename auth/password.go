package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/collabogames/collabo-go/config"
)

// Verifier compares a presented password against a stored credential and
// prepares new credentials for storage. The mode is fixed once at startup;
// it is never decided per request.
type Verifier interface {
	// Verify reports whether presented matches the stored credential.
	Verify(presented, stored string) bool

	// PrepareForStorage converts a raw password into its stored form.
	PrepareForStorage(password string) (string, error)
}

// NewVerifier selects the verifier for the configured password mode.
// Anything other than the explicit plaintext opt-in yields bcrypt, so the
// safe mode is also the fallback.
func NewVerifier(mode string) Verifier {
	if mode == config.PasswordModePlaintext {
		return PlaintextVerifier{}
	}
	return BcryptVerifier{}
}

// BcryptVerifier stores salted bcrypt hashes. PrepareForStorage salts each
// hash independently, so hashing the same password twice yields different
// strings; Verify reads the salt and cost back out of the stored hash.
type BcryptVerifier struct{}

// Verify reports whether presented matches the stored bcrypt hash.
func (BcryptVerifier) Verify(presented, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// PrepareForStorage produces a fresh salted bcrypt hash of the password.
func (BcryptVerifier) PrepareForStorage(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// PlaintextVerifier compares passwords verbatim and stores them unchanged.
// It exists for local development only and is reachable solely through the
// explicit PASSWORD_MODE=plaintext configuration.
type PlaintextVerifier struct{}

// Verify reports whether presented equals the stored password.
func (PlaintextVerifier) Verify(presented, stored string) bool {
	return presented == stored
}

// PrepareForStorage returns the password unchanged.
func (PlaintextVerifier) PrepareForStorage(password string) (string, error) {
	return password, nil
}
