// Package cache - кэширующий декоратор TravelRepository.
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
var _ ports.TravelRepository = (*CachedTravelRepository)(nil)

// CachedTravelRepository оборачивает ports.TravelRepository.
//
// Особенность: Delete инвалидирует ДВА домена - travels и
// inscriptions. Удаление поездки каскадно убирает её инскрипции в БД,
// закэшированные списки инскрипций обязаны уйти вместе с ней.
type CachedTravelRepository struct {
	base
	inner ports.TravelRepository
	ttl   time.Duration
}

// NewCachedTravelRepository создаёт декоратор.
func NewCachedTravelRepository(inner ports.TravelRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedTravelRepository {
	return &CachedTravelRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.TravelTTL,
	}
}

// Create пишет в БД и инвалидирует домен travels.
func (r *CachedTravelRepository) Create(ctx context.Context, travel *entities.Travel) error {
	if err := r.inner.Create(ctx, travel); err != nil {
		return err
	}
	r.invalidate(ctx, domainTravels)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedTravelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Travel, error) {
	key := r.keys.Key(domainTravels, "FindByID", id.String())

	var rec travelRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	travel, err := r.inner.FindByID(ctx, id)
	if err != nil || travel == nil {
		return travel, err
	}

	r.store(ctx, key, toTravelRecord(travel), r.ttl)
	return travel, nil
}

// FindAll - cache-aside чтение страницы.
func (r *CachedTravelRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Travel, int, error) {
	key := r.keys.Key(domainTravels, "FindAll", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page travelPage
	if r.lookup(ctx, key, &page) {
		return page.toEntities(), page.Total, nil
	}

	travels, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, toTravelPage(travels, total), r.ttl)
	return travels, total, nil
}

// FindAllByDriver - cache-aside чтение.
func (r *CachedTravelRepository) FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Travel, error) {
	key := r.keys.Key(domainTravels, "FindAllByDriver", driverID.String())

	var page travelPage
	if r.lookup(ctx, key, &page) {
		return page.toEntities(), nil
	}

	travels, err := r.inner.FindAllByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, toTravelPage(travels, len(travels)), r.ttl)
	return travels, nil
}

// Delete пишет в БД и инвалидирует travels И inscriptions:
// каскад в БД уносит инскрипции поездки.
func (r *CachedTravelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, domainTravels, domainInscriptions)
	return nil
}
