package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost matches the salt rounds used for stored hashes.
const DefaultPasswordCost = 10

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: DefaultPasswordCost}
}

// NewPasswordHasherForTest uses the minimum bcrypt cost to keep tests fast.
func NewPasswordHasherForTest() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.MinCost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Any mismatch or malformed
// hash is reported as false.
func (h *PasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
