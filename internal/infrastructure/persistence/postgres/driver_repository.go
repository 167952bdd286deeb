// Package postgres - DriverRepository implementation.
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

var _ ports.DriverRepository = (*DriverRepository)(nil)

// DriverRepository реализует ports.DriverRepository.
type DriverRepository struct {
	pool *pgxpool.Pool
}

// NewDriverRepository создаёт новый DriverRepository.
func NewDriverRepository(pool *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{pool: pool}
}

const driverColumns = `id, user_id, license, created_at`

func scanDriver(scanner interface{ Scan(dest ...any) error }) (*entities.Driver, error) {
	var (
		id, userID uuid.UUID
		license    string
		createdAt  time.Time
	)

	if err := scanner.Scan(&id, &userID, &license, &createdAt); err != nil {
		return nil, err
	}

	return entities.ReconstructDriver(id, userID, license, createdAt), nil
}

// Create вставляет новый Driver профиль.
func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	q := queryTarget(ctx, r.pool)

	query := `INSERT INTO drivers (id, user_id, license, created_at) VALUES ($1, $2, $3, $4)`

	_, err := q.Exec(ctx, query, driver.ID(), driver.UserID(), driver.License(), driver.CreatedAt())
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.NewUserNotFound(driver.UserID().String())
		}
		return domainErrors.NewRepositoryError("failed to create driver", err)
	}

	return nil
}

// FindByID загружает Driver по ID. (nil, nil) если не найден.
func (r *DriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	driver, err := scanDriver(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find driver by id", err)
	}

	return driver, nil
}

// FindByUserID загружает Driver профиль пользователя. (nil, nil) если
// пользователь ещё не водитель.
func (r *DriverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Driver, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1`

	driver, err := scanDriver(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find driver by user id", err)
	}

	return driver, nil
}
