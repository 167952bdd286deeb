// Package postgres - CarRepository implementation.
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

var _ ports.CarRepository = (*CarRepository)(nil)

// CarRepository реализует ports.CarRepository.
type CarRepository struct {
	pool *pgxpool.Pool
}

// NewCarRepository создаёт новый CarRepository.
func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

const carColumns = `id, driver_id, model_id, color_id, plate, seats, created_at`

func scanCar(scanner interface{ Scan(dest ...any) error }) (*entities.Car, error) {
	var (
		id, driverID, modelID, colorID uuid.UUID
		plate                          string
		seats                          int
		createdAt                      time.Time
	)

	if err := scanner.Scan(&id, &driverID, &modelID, &colorID, &plate, &seats, &createdAt); err != nil {
		return nil, err
	}

	return entities.ReconstructCar(id, driverID, modelID, colorID, plate, seats, createdAt), nil
}

// Create вставляет новый автомобиль.
func (r *CarRepository) Create(ctx context.Context, car *entities.Car) error {
	q := queryTarget(ctx, r.pool)

	query := `
		INSERT INTO cars (id, driver_id, model_id, color_id, plate, seats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		car.ID(),
		car.DriverID(),
		car.ModelID(),
		car.ColorID(),
		car.Plate(),
		car.Seats(),
		car.CreatedAt(),
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "cars_plate_key"):
			return domainErrors.NewPlateAlreadyExists(car.Plate())
		case isForeignKeyViolation(err):
			return domainErrors.NewModelNotFound(car.ModelID().String())
		}
		return domainErrors.NewRepositoryError("failed to create car", err)
	}

	return nil
}

// FindByID загружает автомобиль по ID. (nil, nil) если не найден.
func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Car, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	car, err := scanCar(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find car by id", err)
	}

	return car, nil
}

// ExistsByPlate проверяет занятость номерного знака.
func (r *CarRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT EXISTS(SELECT 1 FROM cars WHERE plate = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, plate).Scan(&exists); err != nil {
		return false, domainErrors.NewRepositoryError("failed to check plate existence", err)
	}

	return exists, nil
}

// FindAllByDriver возвращает автомобили водителя.
func (r *CarRepository) FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Car, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + carColumns + ` FROM cars WHERE driver_id = $1 ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, driverID)
	if err != nil {
		return nil, domainErrors.NewRepositoryError("failed to list cars by driver", err)
	}
	defer rows.Close()

	return collectCars(rows)
}

// FindAll возвращает страницу автомобилей и общее количество.
func (r *CarRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Car, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM cars`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count cars", err)
	}

	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := q.Query(ctx, query, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list cars", err)
	}
	defer rows.Close()

	cars, err := collectCars(rows)
	if err != nil {
		return nil, 0, err
	}

	return cars, total, nil
}

// Delete удаляет автомобиль.
func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := queryTarget(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return domainErrors.NewRepositoryError("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewCarNotFound(id.String())
	}

	return nil
}

func collectCars(rows pgx.Rows) ([]*entities.Car, error) {
	var cars []*entities.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, domainErrors.NewRepositoryError("failed to scan car row", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewRepositoryError("error iterating car rows", err)
	}
	return cars, nil
}
