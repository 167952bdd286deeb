// Package cache реализует cache-aside слой поверх репозиториев.
//
// Patterns:
// - Decorator: кэширующий репозиторий оборачивает настоящий и
//   реализует тот же порт, вызывающий код о кэше не знает
// - Cache-aside: чтение сначала идёт в кэш, промах - в БД + Set;
//   запись идёт в БД и при успехе инвалидирует домен целиком
//
// Ключи детерминированные: "<prefix>:<domain>:<method>:<args>".
// Один и тот же запрос всегда даёт один и тот же ключ, инвалидация
// по шаблону "<prefix>:<domain>:*" снимает весь домен разом.
package cache

import "strings"

// Домены кэша. Инвалидация всегда подоменная.
const (
	domainUsers        = "users"
	domainTravels      = "travels"
	domainInscriptions = "inscriptions"
	domainCities       = "cities"
	domainCatalog      = "catalog"
	domainCars         = "cars"
	domainDrivers      = "drivers"
)

// keyBuilder строит ключи кэша с фиксированным префиксом приложения.
type keyBuilder struct {
	prefix string
}

func newKeyBuilder(prefix string) keyBuilder {
	if prefix == "" {
		prefix = "roadshare"
	}
	return keyBuilder{prefix: prefix}
}

// Key строит ключ "<prefix>:<domain>:<method>:<args...>".
func (b keyBuilder) Key(domain, method string, args ...string) string {
	parts := make([]string, 0, 3+len(args))
	parts = append(parts, b.prefix, domain, method)
	parts = append(parts, args...)
	return strings.Join(parts, ":")
}

// Pattern строит glob-шаблон для инвалидации всего домена.
func (b keyBuilder) Pattern(domain string) string {
	return b.prefix + ":" + domain + ":*"
}
