// Package cache - кэширующие декораторы гаража (drivers, cars).
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

// Compile-time checks
var (
	_ ports.DriverRepository = (*CachedDriverRepository)(nil)
	_ ports.CarRepository    = (*CachedCarRepository)(nil)
)

// CachedDriverRepository оборачивает ports.DriverRepository.
// Профиль водителя создаётся один раз и дальше не меняется,
// поэтому живёт с длинным справочным TTL.
type CachedDriverRepository struct {
	base
	inner ports.DriverRepository
	ttl   time.Duration
}

// NewCachedDriverRepository создаёт декоратор.
func NewCachedDriverRepository(inner ports.DriverRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedDriverRepository {
	return &CachedDriverRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.CatalogTTL,
	}
}

// Create пишет в БД и инвалидирует домен drivers.
func (r *CachedDriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	if err := r.inner.Create(ctx, driver); err != nil {
		return err
	}
	r.invalidate(ctx, domainDrivers)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	key := r.keys.Key(domainDrivers, "FindByID", id.String())

	var rec driverRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	driver, err := r.inner.FindByID(ctx, id)
	if err != nil || driver == nil {
		return driver, err
	}

	r.store(ctx, key, toDriverRecord(driver), r.ttl)
	return driver, nil
}

// FindByUserID - cache-aside чтение.
func (r *CachedDriverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Driver, error) {
	key := r.keys.Key(domainDrivers, "FindByUserID", userID.String())

	var rec driverRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	driver, err := r.inner.FindByUserID(ctx, userID)
	if err != nil || driver == nil {
		return driver, err
	}

	r.store(ctx, key, toDriverRecord(driver), r.ttl)
	return driver, nil
}

// CachedCarRepository оборачивает ports.CarRepository.
type CachedCarRepository struct {
	base
	inner ports.CarRepository
	ttl   time.Duration
}

// NewCachedCarRepository создаёт декоратор.
func NewCachedCarRepository(inner ports.CarRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedCarRepository {
	return &CachedCarRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.CatalogTTL,
	}
}

// Create пишет в БД и инвалидирует домен cars.
func (r *CachedCarRepository) Create(ctx context.Context, car *entities.Car) error {
	if err := r.inner.Create(ctx, car); err != nil {
		return err
	}
	r.invalidate(ctx, domainCars)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedCarRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Car, error) {
	key := r.keys.Key(domainCars, "FindByID", id.String())

	var rec carRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	car, err := r.inner.FindByID(ctx, id)
	if err != nil || car == nil {
		return car, err
	}

	r.store(ctx, key, toCarRecord(car), r.ttl)
	return car, nil
}

// ExistsByPlate ходит мимо кэша: проверка уникальности всегда
// должна видеть актуальное состояние БД.
func (r *CachedCarRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	return r.inner.ExistsByPlate(ctx, plate)
}

// FindAllByDriver - cache-aside чтение.
func (r *CachedCarRepository) FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Car, error) {
	key := r.keys.Key(domainCars, "FindAllByDriver", driverID.String())

	var records []carRecord
	if r.lookup(ctx, key, &records) {
		return fromCarRecords(records), nil
	}

	cars, err := r.inner.FindAllByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, toCarRecords(cars), r.ttl)
	return cars, nil
}

// FindAll - cache-aside чтение страницы.
func (r *CachedCarRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Car, int, error) {
	key := r.keys.Key(domainCars, "FindAll", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page carPage
	if r.lookup(ctx, key, &page) {
		return fromCarRecords(page.Cars), page.Total, nil
	}

	cars, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, carPage{Cars: toCarRecords(cars), Total: total}, r.ttl)
	return cars, total, nil
}

// Delete пишет в БД и инвалидирует домен cars.
func (r *CachedCarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, domainCars)
	return nil
}
