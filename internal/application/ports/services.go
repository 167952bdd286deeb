// Package ports - сервисные порты (кэш, хэширование, токены, почта).
package ports

import (
	"context"
	"time"
)

// CacheService определяет контракт key-value кэша.
//
// Контракт ошибок намеренно мягкий: сбой кэша никогда не должен
// валить запрос. Декораторы трактуют ошибку Get как промах, ошибку
// Set логируют и глотают.
type CacheService interface {
	// Get возвращает значение по ключу. (nil, false, nil) при промахе.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set сохраняет значение с TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPattern удаляет все ключи по glob-шаблону ("prefix:domain:*").
	DeleteByPattern(ctx context.Context, pattern string) error

	// IsHealthy проверяет доступность бэкенда кэша.
	IsHealthy(ctx context.Context) bool
}

// PasswordHasher абстрагирует хэширование паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare возвращает ошибку при несовпадении.
	Compare(hash, password string) error
}

// TokenClaims - данные, зашитые в токен доступа.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService абстрагирует выпуск и проверку токенов доступа.
type TokenService interface {
	Generate(claims TokenClaims) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Mailer отправляет уведомления. Сбой отправки логируется и никогда
// не проваливает бизнес-операцию.
type Mailer interface {
	SendWelcome(ctx context.Context, to, fullName string) error
	SendInscriptionConfirmation(ctx context.Context, to, fullName, travelID string) error
}
