package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted one-way digest from a plaintext password.
// bcrypt embeds a fresh random salt in every digest, so two hashes of the
// same password differ and no external salt storage is needed.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword checks a plaintext password against a stored digest using
// the salt embedded in the digest. It returns nil on a match and
// ErrBadCredential on a mismatch. A digest that cannot be parsed at all
// returns ErrCorruptCredential instead of a silent mismatch, since that is a
// data-integrity problem rather than a wrong password.
func VerifyPassword(plaintext, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrBadCredential
	default:
		return fmt.Errorf("%w: %v", ErrCorruptCredential, err)
	}
}
