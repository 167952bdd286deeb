// Package postgres - репозитории справочника автомобилей
// (brands, models, colors). Таблицы справочника маленькие и почти
// не меняются, поэтому репозитории нарочно простые.
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	domainErrors "github.com/roadshare/roadshare/internal/domain/errors"
)

var (
	_ ports.BrandRepository = (*BrandRepository)(nil)
	_ ports.ModelRepository = (*ModelRepository)(nil)
	_ ports.ColorRepository = (*ColorRepository)(nil)
)

// BrandRepository реализует ports.BrandRepository.
type BrandRepository struct {
	pool *pgxpool.Pool
}

// NewBrandRepository создаёт новый BrandRepository.
func NewBrandRepository(pool *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{pool: pool}
}

// Create вставляет новую марку.
func (r *BrandRepository) Create(ctx context.Context, brand *entities.Brand) error {
	q := queryTarget(ctx, r.pool)

	_, err := q.Exec(ctx, `INSERT INTO brands (id, name) VALUES ($1, $2)`, brand.ID(), brand.Name())
	if err != nil {
		return domainErrors.NewRepositoryError("failed to create brand", err)
	}
	return nil
}

// FindByID загружает марку по ID. (nil, nil) если не найдена.
func (r *BrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	q := queryTarget(ctx, r.pool)

	var (
		brandID uuid.UUID
		name    string
	)
	err := q.QueryRow(ctx, `SELECT id, name FROM brands WHERE id = $1`, id).Scan(&brandID, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find brand by id", err)
	}

	return entities.ReconstructBrand(brandID, name), nil
}

// FindAll возвращает страницу марок.
func (r *BrandRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Brand, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM brands`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count brands", err)
	}

	rows, err := q.Query(ctx, `SELECT id, name FROM brands ORDER BY name ASC OFFSET $1 LIMIT $2`, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list brands", err)
	}
	defer rows.Close()

	var brands []*entities.Brand
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, 0, domainErrors.NewRepositoryError("failed to scan brand row", err)
		}
		brands = append(brands, entities.ReconstructBrand(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("error iterating brand rows", err)
	}

	return brands, total, nil
}

// ModelRepository реализует ports.ModelRepository.
type ModelRepository struct {
	pool *pgxpool.Pool
}

// NewModelRepository создаёт новый ModelRepository.
func NewModelRepository(pool *pgxpool.Pool) *ModelRepository {
	return &ModelRepository{pool: pool}
}

// Create вставляет новую модель.
func (r *ModelRepository) Create(ctx context.Context, model *entities.Model) error {
	q := queryTarget(ctx, r.pool)

	_, err := q.Exec(ctx, `INSERT INTO models (id, brand_id, name) VALUES ($1, $2, $3)`,
		model.ID(), model.BrandID(), model.Name())
	if err != nil {
		return domainErrors.NewRepositoryError("failed to create model", err)
	}
	return nil
}

// FindByID загружает модель по ID. (nil, nil) если не найдена.
func (r *ModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Model, error) {
	q := queryTarget(ctx, r.pool)

	var (
		modelID, brandID uuid.UUID
		name             string
	)
	err := q.QueryRow(ctx, `SELECT id, brand_id, name FROM models WHERE id = $1`, id).
		Scan(&modelID, &brandID, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find model by id", err)
	}

	return entities.ReconstructModel(modelID, brandID, name), nil
}

// FindAllByBrand возвращает все модели марки.
func (r *ModelRepository) FindAllByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Model, error) {
	q := queryTarget(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id, brand_id, name FROM models WHERE brand_id = $1 ORDER BY name ASC`, brandID)
	if err != nil {
		return nil, domainErrors.NewRepositoryError("failed to list models by brand", err)
	}
	defer rows.Close()

	return collectModels(rows)
}

// FindAll возвращает страницу моделей.
func (r *ModelRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Model, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM models`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count models", err)
	}

	rows, err := q.Query(ctx, `SELECT id, brand_id, name FROM models ORDER BY name ASC OFFSET $1 LIMIT $2`, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list models", err)
	}
	defer rows.Close()

	models, err := collectModels(rows)
	if err != nil {
		return nil, 0, err
	}

	return models, total, nil
}

func collectModels(rows pgx.Rows) ([]*entities.Model, error) {
	var models []*entities.Model
	for rows.Next() {
		var (
			id, brandID uuid.UUID
			name        string
		)
		if err := rows.Scan(&id, &brandID, &name); err != nil {
			return nil, domainErrors.NewRepositoryError("failed to scan model row", err)
		}
		models = append(models, entities.ReconstructModel(id, brandID, name))
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewRepositoryError("error iterating model rows", err)
	}
	return models, nil
}

// ColorRepository реализует ports.ColorRepository.
type ColorRepository struct {
	pool *pgxpool.Pool
}

// NewColorRepository создаёт новый ColorRepository.
func NewColorRepository(pool *pgxpool.Pool) *ColorRepository {
	return &ColorRepository{pool: pool}
}

// Create вставляет новый цвет.
func (r *ColorRepository) Create(ctx context.Context, color *entities.Color) error {
	q := queryTarget(ctx, r.pool)

	_, err := q.Exec(ctx, `INSERT INTO colors (id, name) VALUES ($1, $2)`, color.ID(), color.Name())
	if err != nil {
		return domainErrors.NewRepositoryError("failed to create color", err)
	}
	return nil
}

// FindByID загружает цвет по ID. (nil, nil) если не найден.
func (r *ColorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Color, error) {
	q := queryTarget(ctx, r.pool)

	var (
		colorID uuid.UUID
		name    string
	)
	err := q.QueryRow(ctx, `SELECT id, name FROM colors WHERE id = $1`, id).Scan(&colorID, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find color by id", err)
	}

	return entities.ReconstructColor(colorID, name), nil
}

// FindAll возвращает страницу цветов.
func (r *ColorRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Color, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM colors`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count colors", err)
	}

	rows, err := q.Query(ctx, `SELECT id, name FROM colors ORDER BY name ASC OFFSET $1 LIMIT $2`, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list colors", err)
	}
	defer rows.Close()

	var colors []*entities.Color
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, 0, domainErrors.NewRepositoryError("failed to scan color row", err)
		}
		colors = append(colors, entities.ReconstructColor(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("error iterating color rows", err)
	}

	return colors, total, nil
}
