// Package cache - кэширующий декоратор UserRepository.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
)

// Compile-time check
var _ ports.UserRepository = (*CachedUserRepository)(nil)

// CachedUserRepository оборачивает ports.UserRepository cache-aside
// логикой. Кэшируются только одиночные находки и страницы; проверки
// существования (ExistsByEmail, IsReferenced) ходят в БД всегда -
// на них строятся инварианты, устаревший ответ недопустим.
type CachedUserRepository struct {
	base
	inner ports.UserRepository
	ttl   time.Duration
}

// NewCachedUserRepository создаёт декоратор.
func NewCachedUserRepository(inner ports.UserRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedUserRepository {
	return &CachedUserRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.UserTTL,
	}
}

// Create пишет в БД и инвалидирует домен users.
func (r *CachedUserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.inner.Create(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, domainUsers)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	key := r.keys.Key(domainUsers, "FindByID", id.String())

	var rec userRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	user, err := r.inner.FindByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	r.store(ctx, key, toUserRecord(user), r.ttl)
	return user, nil
}

// FindByEmail - cache-aside чтение.
func (r *CachedUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	key := r.keys.Key(domainUsers, "FindByEmail", email)

	var rec userRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	user, err := r.inner.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return user, err
	}

	r.store(ctx, key, toUserRecord(user), r.ttl)
	return user, nil
}

// ExistsByEmail всегда ходит в БД: на этой проверке держится
// уникальность регистрации.
func (r *CachedUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.inner.ExistsByEmail(ctx, email)
}

// FindAll - cache-aside чтение страницы.
func (r *CachedUserRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.User, int, error) {
	key := r.keys.Key(domainUsers, "FindAll", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page userPage
	if r.lookup(ctx, key, &page) {
		return page.toEntities(), page.Total, nil
	}

	users, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, toUserPage(users, total), r.ttl)
	return users, total, nil
}

// Update пишет в БД и инвалидирует домен users.
func (r *CachedUserRepository) Update(ctx context.Context, user *entities.User) error {
	if err := r.inner.Update(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, domainUsers)
	return nil
}

// Delete пишет в БД и инвалидирует домен users.
func (r *CachedUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, domainUsers)
	return nil
}

// IsReferenced всегда ходит в БД.
func (r *CachedUserRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.inner.IsReferenced(ctx, id)
}
