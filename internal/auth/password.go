package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"draftdeck/internal/domain"
)

// HashPassword derives a bcrypt hash for storage. The plaintext is never
// persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a stored hash against a login attempt. A mismatch
// maps to domain.ErrUnauthorized so callers never leak whether the account
// exists.
func VerifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("verify password: %w", err)
	}
	return nil
}
