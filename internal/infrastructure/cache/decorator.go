// Package cache - общая механика кэширующих декораторов.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/roadshare/roadshare/internal/application/ports"
)

// Options настраивает слой кэширования.
type Options struct {
	// Prefix - префикс всех ключей (по умолчанию "roadshare").
	Prefix string

	// Disabled полностью выключает кэш: декораторы превращаются в
	// прозрачные прокси. Полезно в тестах и при деградации Redis.
	Disabled bool

	// TTL по доменам. Чем чаще данные меняются, тем короче TTL.
	UserTTL        time.Duration
	TravelTTL      time.Duration
	InscriptionTTL time.Duration
	CityTTL        time.Duration
	CatalogTTL     time.Duration
}

// DefaultOptions - TTL по умолчанию.
func DefaultOptions() Options {
	return Options{
		Prefix:         "roadshare",
		UserTTL:        10 * time.Minute,
		TravelTTL:      5 * time.Minute,
		InscriptionTTL: time.Minute,
		CityTTL:        time.Hour,
		CatalogTTL:     time.Hour,
	}
}

// base - общая часть всех декораторов: cache-aside чтение и
// мягкая обработка сбоев кэша.
//
// Контракт надёжности: кэш никогда не валит запрос. Ошибка Get
// трактуется как промах, ошибка Set и ошибка инвалидации логируются
// и глотаются (данные доживут до конца TTL).
type base struct {
	cache    ports.CacheService
	keys     keyBuilder
	logger   *slog.Logger
	disabled bool
}

func newBase(cache ports.CacheService, opts Options, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.Default()
	}
	return base{
		cache:    cache,
		keys:     newKeyBuilder(opts.Prefix),
		logger:   logger,
		disabled: opts.Disabled,
	}
}

// lookup читает и десериализует значение. false - промах (или кэш
// выключен, или сбой - для вызывающего это одно и то же).
func (b base) lookup(ctx context.Context, key string, dest any) bool {
	if b.disabled {
		return false
	}

	data, found, err := b.cache.Get(ctx, key)
	if err != nil {
		b.logger.Warn("cache get failed, falling through", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		b.logger.Warn("cache entry corrupted, falling through", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}

	return true
}

// store сериализует и кладёт значение. Сбои глотаются.
func (b base) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if b.disabled {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		b.logger.Warn("cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	if err := b.cache.Set(ctx, key, data, ttl); err != nil {
		b.logger.Warn("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// invalidate снимает перечисленные домены. Вызывается ТОЛЬКО после
// успешной записи в БД: упавшая запись кэш не трогает.
func (b base) invalidate(ctx context.Context, domains ...string) {
	if b.disabled {
		return
	}

	for _, domain := range domains {
		pattern := b.keys.Pattern(domain)
		if err := b.cache.DeleteByPattern(ctx, pattern); err != nil {
			b.logger.Warn("cache invalidation failed",
				slog.String("pattern", pattern),
				slog.String("error", err.Error()),
			)
		}
	}
}
