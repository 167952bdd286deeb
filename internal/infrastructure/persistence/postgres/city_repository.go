// Package postgres - CityRepository implementation.
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

var _ ports.CityRepository = (*CityRepository)(nil)

// CityRepository реализует ports.CityRepository.
type CityRepository struct {
	pool *pgxpool.Pool
}

// NewCityRepository создаёт новый CityRepository.
func NewCityRepository(pool *pgxpool.Pool) *CityRepository {
	return &CityRepository{pool: pool}
}

const cityColumns = `id, name, zip_code`

func scanCity(scanner interface{ Scan(dest ...any) error }) (*entities.City, error) {
	var (
		id            uuid.UUID
		name, zipCode string
	)

	if err := scanner.Scan(&id, &name, &zipCode); err != nil {
		return nil, err
	}

	return entities.ReconstructCity(id, name, zipCode), nil
}

// Create вставляет новый город.
func (r *CityRepository) Create(ctx context.Context, city *entities.City) error {
	q := queryTarget(ctx, r.pool)

	query := `INSERT INTO cities (id, name, zip_code) VALUES ($1, $2, $3)`

	_, err := q.Exec(ctx, query, city.ID(), city.Name(), city.ZipCode())
	if err != nil {
		if isUniqueViolation(err, "cities_name_key") {
			return domainErrors.NewCityAlreadyExists(city.Name())
		}
		return domainErrors.NewRepositoryError("failed to create city", err)
	}

	return nil
}

// FindByID загружает город по ID. (nil, nil) если не найден.
func (r *CityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + cityColumns + ` FROM cities WHERE id = $1`

	city, err := scanCity(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find city by id", err)
	}

	return city, nil
}

// FindByName загружает город по имени (case-insensitive).
func (r *CityRepository) FindByName(ctx context.Context, name string) (*entities.City, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + cityColumns + ` FROM cities WHERE LOWER(name) = LOWER($1)`

	city, err := scanCity(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find city by name", err)
	}

	return city, nil
}

// FindAll возвращает страницу городов (по алфавиту) и общее количество.
func (r *CityRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.City, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM cities`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count cities", err)
	}

	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY name ASC OFFSET $1 LIMIT $2`

	rows, err := q.Query(ctx, query, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list cities", err)
	}
	defer rows.Close()

	var cities []*entities.City
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			return nil, 0, domainErrors.NewRepositoryError("failed to scan city row", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("error iterating city rows", err)
	}

	return cities, total, nil
}

// Delete удаляет город (только если на него не ссылаются поездки).
func (r *CityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := queryTarget(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return domainErrors.NewRepositoryError("failed to delete city", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewCityNotFound(id.String())
	}

	return nil
}
