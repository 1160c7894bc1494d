package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Matches the cost the existing user rows were hashed with.
const bcryptCost = 12

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	return string(b), err
}

// CheckPassword compares a bcrypt hash with a candidate plaintext password.
// A mismatch is (false, nil); an error is returned only when the stored hash
// itself is unusable.
func CheckPassword(hash, pw string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
