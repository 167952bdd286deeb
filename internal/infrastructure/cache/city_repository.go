// Package cache - кэширующие декораторы справочников (cities, catalog).
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
	_ ports.CityRepository  = (*CachedCityRepository)(nil)
	_ ports.BrandRepository = (*CachedBrandRepository)(nil)
	_ ports.ModelRepository = (*CachedModelRepository)(nil)
	_ ports.ColorRepository = (*CachedColorRepository)(nil)
)

// CachedCityRepository оборачивает ports.CityRepository.
// Города меняются редко - длинный TTL.
type CachedCityRepository struct {
	base
	inner ports.CityRepository
	ttl   time.Duration
}

// NewCachedCityRepository создаёт декоратор.
func NewCachedCityRepository(inner ports.CityRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedCityRepository {
	return &CachedCityRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.CityTTL,
	}
}

// Create пишет в БД и инвалидирует домен cities.
func (r *CachedCityRepository) Create(ctx context.Context, city *entities.City) error {
	if err := r.inner.Create(ctx, city); err != nil {
		return err
	}
	r.invalidate(ctx, domainCities)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedCityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	key := r.keys.Key(domainCities, "FindByID", id.String())

	var rec cityRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	city, err := r.inner.FindByID(ctx, id)
	if err != nil || city == nil {
		return city, err
	}

	r.store(ctx, key, toCityRecord(city), r.ttl)
	return city, nil
}

// FindByName - cache-aside чтение.
func (r *CachedCityRepository) FindByName(ctx context.Context, name string) (*entities.City, error) {
	key := r.keys.Key(domainCities, "FindByName", name)

	var rec cityRecord
	if r.lookup(ctx, key, &rec) {
		return rec.toEntity(), nil
	}

	city, err := r.inner.FindByName(ctx, name)
	if err != nil || city == nil {
		return city, err
	}

	r.store(ctx, key, toCityRecord(city), r.ttl)
	return city, nil
}

// FindAll - cache-aside чтение страницы.
func (r *CachedCityRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.City, int, error) {
	key := r.keys.Key(domainCities, "FindAll", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page cityPage
	if r.lookup(ctx, key, &page) {
		return page.toEntities(), page.Total, nil
	}

	cities, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, toCityPage(cities, total), r.ttl)
	return cities, total, nil
}

// Delete пишет в БД и инвалидирует домен cities.
func (r *CachedCityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, domainCities)
	return nil
}

// CachedBrandRepository оборачивает ports.BrandRepository.
type CachedBrandRepository struct {
	base
	inner ports.BrandRepository
	ttl   time.Duration
}

// NewCachedBrandRepository создаёт декоратор.
func NewCachedBrandRepository(inner ports.BrandRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedBrandRepository {
	return &CachedBrandRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.CatalogTTL,
	}
}

// Create пишет в БД и инвалидирует домен catalog.
func (r *CachedBrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	if err := r.inner.Create(ctx, brand); err != nil {
		return err
	}
	r.invalidate(ctx, domainCatalog)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	key := r.keys.Key(domainCatalog, "BrandByID", id.String())

	var rec brandRecord
	if r.lookup(ctx, key, &rec) {
		return entities.ReconstructBrand(rec.ID, rec.Name), nil
	}

	brand, err := r.inner.FindByID(ctx, id)
	if err != nil || brand == nil {
		return brand, err
	}

	r.store(ctx, key, brandRecord{ID: brand.ID(), Name: brand.Name()}, r.ttl)
	return brand, nil
}

// FindAll - cache-aside чтение страницы.
func (r *CachedBrandRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Brand, int, error) {
	key := r.keys.Key(domainCatalog, "Brands", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page brandPage
	if r.lookup(ctx, key, &page) {
		return page.toEntities(), page.Total, nil
	}

	brands, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, toBrandPage(brands, total), r.ttl)
	return brands, total, nil
}

// CachedModelRepository оборачивает ports.ModelRepository.
type CachedModelRepository struct {
	base
	inner ports.ModelRepository
	ttl   time.Duration
}

// NewCachedModelRepository создаёт декоратор.
func NewCachedModelRepository(inner ports.ModelRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedModelRepository {
	return &CachedModelRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.CatalogTTL,
	}
}

// Create пишет в БД и инвалидирует домен catalog.
func (r *CachedModelRepository) Create(ctx context.Context, model *entities.Model) error {
	if err := r.inner.Create(ctx, model); err != nil {
		return err
	}
	r.invalidate(ctx, domainCatalog)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Model, error) {
	key := r.keys.Key(domainCatalog, "ModelByID", id.String())

	var rec modelRecord
	if r.lookup(ctx, key, &rec) {
		return entities.ReconstructModel(rec.ID, rec.BrandID, rec.Name), nil
	}

	model, err := r.inner.FindByID(ctx, id)
	if err != nil || model == nil {
		return model, err
	}

	r.store(ctx, key, modelRecord{ID: model.ID(), BrandID: model.BrandID(), Name: model.Name()}, r.ttl)
	return model, nil
}

// FindAllByBrand - cache-aside чтение.
func (r *CachedModelRepository) FindAllByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Model, error) {
	key := r.keys.Key(domainCatalog, "ModelsByBrand", brandID.String())

	var records []modelRecord
	if r.lookup(ctx, key, &records) {
		return fromModelRecords(records), nil
	}

	models, err := r.inner.FindAllByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, toModelRecords(models), r.ttl)
	return models, nil
}

// FindAll - cache-aside чтение страницы.
func (r *CachedModelRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Model, int, error) {
	key := r.keys.Key(domainCatalog, "Models", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page modelPage
	if r.lookup(ctx, key, &page) {
		return fromModelRecords(page.Models), page.Total, nil
	}

	models, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, modelPage{Models: toModelRecords(models), Total: total}, r.ttl)
	return models, total, nil
}

// CachedColorRepository оборачивает ports.ColorRepository.
type CachedColorRepository struct {
	base
	inner ports.ColorRepository
	ttl   time.Duration
}

// NewCachedColorRepository создаёт декоратор.
func NewCachedColorRepository(inner ports.ColorRepository, cache ports.CacheService, opts Options, logger *slog.Logger) *CachedColorRepository {
	return &CachedColorRepository{
		base:  newBase(cache, opts, logger),
		inner: inner,
		ttl:   opts.CatalogTTL,
	}
}

// Create пишет в БД и инвалидирует домен catalog.
func (r *CachedColorRepository) Create(ctx context.Context, color *entities.Color) error {
	if err := r.inner.Create(ctx, color); err != nil {
		return err
	}
	r.invalidate(ctx, domainCatalog)
	return nil
}

// FindByID - cache-aside чтение.
func (r *CachedColorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Color, error) {
	key := r.keys.Key(domainCatalog, "ColorByID", id.String())

	var rec colorRecord
	if r.lookup(ctx, key, &rec) {
		return entities.ReconstructColor(rec.ID, rec.Name), nil
	}

	color, err := r.inner.FindByID(ctx, id)
	if err != nil || color == nil {
		return color, err
	}

	r.store(ctx, key, colorRecord{ID: color.ID(), Name: color.Name()}, r.ttl)
	return color, nil
}

// FindAll - cache-aside чтение страницы.
func (r *CachedColorRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Color, int, error) {
	key := r.keys.Key(domainCatalog, "Colors", fmt.Sprintf("p%d:l%d", p.Page, p.Limit))

	var page colorPage
	if r.lookup(ctx, key, &page) {
		return page.toEntities(), page.Total, nil
	}

	colors, total, err := r.inner.FindAll(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	r.store(ctx, key, toColorPage(colors, total), r.ttl)
	return colors, total, nil
}
