// Package postgres - TravelRepository implementation.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	domainErrors "github.com/roadshare/roadshare/internal/domain/errors"
)

var _ ports.TravelRepository = (*TravelRepository)(nil)

// TravelRepository реализует ports.TravelRepository.
type TravelRepository struct {
	pool *pgxpool.Pool
}

// NewTravelRepository создаёт новый TravelRepository.
func NewTravelRepository(pool *pgxpool.Pool) *TravelRepository {
	return &TravelRepository{pool: pool}
}

const travelColumns = `id, driver_id, car_id, departure_city_id, arrival_city_id, date, kms, seats, created_at`

func scanTravel(scanner interface{ Scan(dest ...any) error }) (*entities.Travel, error) {
	var (
		id, driverID, carID        uuid.UUID
		departureCity, arrivalCity uuid.UUID
		date, createdAt            time.Time
		kms, seats                 int
	)

	err := scanner.Scan(
		&id, &driverID, &carID,
		&departureCity, &arrivalCity,
		&date, &kms, &seats, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructTravel(
		id, driverID, carID, departureCity, arrivalCity,
		date, kms, seats, createdAt,
	), nil
}

// Create вставляет новую поездку.
func (r *TravelRepository) Create(ctx context.Context, travel *entities.Travel) error {
	q := queryTarget(ctx, r.pool)

	query := `
		INSERT INTO travels (id, driver_id, car_id, departure_city_id, arrival_city_id, date, kms, seats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		travel.ID(),
		travel.DriverID(),
		travel.CarID(),
		travel.DepartureCity(),
		travel.ArrivalCity(),
		travel.Date(),
		travel.Kms(),
		travel.Seats(),
		travel.CreatedAt(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.NewDriverNotFound(travel.DriverID().String())
		}
		return domainErrors.NewRepositoryError("failed to create travel", err)
	}

	return nil
}

// FindByID загружает поездку по ID. (nil, nil) если не найдена.
func (r *TravelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Travel, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + travelColumns + ` FROM travels WHERE id = $1`

	travel, err := scanTravel(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find travel by id", err)
	}

	return travel, nil
}

// FindAll возвращает страницу поездок (ближайшие по дате первыми)
// и общее количество.
func (r *TravelRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Travel, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM travels`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count travels", err)
	}

	query := `SELECT ` + travelColumns + ` FROM travels ORDER BY date ASC OFFSET $1 LIMIT $2`

	rows, err := q.Query(ctx, query, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list travels", err)
	}
	defer rows.Close()

	travels, err := collectTravels(rows)
	if err != nil {
		return nil, 0, err
	}

	return travels, total, nil
}

// FindAllByDriver возвращает поездки одного водителя.
func (r *TravelRepository) FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Travel, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + travelColumns + ` FROM travels WHERE driver_id = $1 ORDER BY date ASC`

	rows, err := q.Query(ctx, query, driverID)
	if err != nil {
		return nil, domainErrors.NewRepositoryError("failed to list travels by driver", err)
	}
	defer rows.Close()

	return collectTravels(rows)
}

// Delete удаляет поездку. Инскрипции уходят каскадом (FK ON DELETE CASCADE).
func (r *TravelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := queryTarget(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM travels WHERE id = $1`, id)
	if err != nil {
		return domainErrors.NewRepositoryError("failed to delete travel", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewTravelNotFound(id.String())
	}

	return nil
}

func collectTravels(rows pgx.Rows) ([]*entities.Travel, error) {
	var travels []*entities.Travel
	for rows.Next() {
		travel, err := scanTravel(rows)
		if err != nil {
			return nil, domainErrors.NewRepositoryError("failed to scan travel row", err)
		}
		travels = append(travels, travel)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewRepositoryError("error iterating travel rows", err)
	}
	return travels, nil
}
