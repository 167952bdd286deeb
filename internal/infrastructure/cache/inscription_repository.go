// Package cache - кэширующий декоратор InscriptionRepository.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
)

// Compile-time check
var _ ports.InscriptionRepository = (*CachedInscriptionRepository)(nil)

// CachedInscriptionRepository оборачивает ports.InscriptionRepository.
//
// Кэшируются только списки. Проверки, на которых стоит бронирование
// (ExistsByUserAndTravel, CountActiveByTravel), всегда ходят в БД:
// устаревший счётчик мест - это овербукинг на уровне приложения,
// пусть финальную границу и держат ограничения БД.
type CachedInscriptionRepository struct {
	base
	inner ports.InscriptionRepository
	ttl   time.Duration
}

// NewCachedInscriptionRepository создаёт декоратор.
func NewCachedInscriptionRepository(inner ports.InscriptionRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedInscriptionRepository {
	return &CachedInscriptionRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.InscriptionTTL,
	}
}

// Create пишет в БД и инвалидирует домен inscriptions.
func (r *CachedInscriptionRepository) Create(ctx context.Context, ins *entities.Inscription) error {
	if err := r.inner.Create(ctx, ins); err != nil {
		return err
	}
	r.invalidate(ctx, domainInscriptions)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedInscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Inscription, error) {
	key := r.keys.Key(domainInscriptions, "FindByID", id.String())

	var rec inscriptionRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	ins, err := r.inner.FindByID(ctx, id)
	if err != nil || ins == nil {
		return ins, err
	}

	r.store(ctx, key, toInscriptionRecord(ins), r.ttl)
	return ins, nil
}

// ExistsByUserAndTravel всегда ходит в БД.
func (r *CachedInscriptionRepository) ExistsByUserAndTravel(ctx context.Context, userID, travelID uuid.UUID) (bool, error) {
	return r.inner.ExistsByUserAndTravel(ctx, userID, travelID)
}

// CountActiveByTravel всегда ходит в БД.
func (r *CachedInscriptionRepository) CountActiveByTravel(ctx context.Context, travelID uuid.UUID) (int, error) {
	return r.inner.CountActiveByTravel(ctx, travelID)
}

// FindAllByUser - cache-aside чтение.
func (r *CachedInscriptionRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Inscription, error) {
	key := r.keys.Key(domainInscriptions, "FindAllByUser", userID.String())

	var records []inscriptionRecord
	if r.lookup(ctx, key, &records) {
		return fromInscriptionRecords(records), nil
	}

	list, err := r.inner.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, toInscriptionRecords(list), r.ttl)
	return list, nil
}

// FindAllByTravel - cache-aside чтение.
func (r *CachedInscriptionRepository) FindAllByTravel(ctx context.Context, travelID uuid.UUID) ([]*entities.Inscription, error) {
	key := r.keys.Key(domainInscriptions, "FindAllByTravel", travelID.String())

	var records []inscriptionRecord
	if r.lookup(ctx, key, &records) {
		return fromInscriptionRecords(records), nil
	}

	list, err := r.inner.FindAllByTravel(ctx, travelID)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, toInscriptionRecords(list), r.ttl)
	return list, nil
}

// Update пишет в БД и инвалидирует домен inscriptions.
func (r *CachedInscriptionRepository) Update(ctx context.Context, ins *entities.Inscription) error {
	if err := r.inner.Update(ctx, ins); err != nil {
		return err
	}
	r.invalidate(ctx, domainInscriptions)
	return nil
}

// Delete пишет в БД и инвалидирует домен inscriptions.
func (r *CachedInscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, domainInscriptions)
	return nil
}
