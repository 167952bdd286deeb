package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/roadshare/roadshare/internal/application/ports"
)

// Compile-time check
var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher реализует ports.PasswordHasher поверх bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создаёт хэшер. cost <= 0 даёт bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare возвращает ошибку при несовпадении пароля и хэша.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
