// Package postgres - InscriptionRepository implementation.
//
// Ключевое место системы бронирования: инварианты "одна активная
// инскрипция на пару (user, travel)" и "не больше мест, чем объявлено"
// держит сама БД (частичный UNIQUE индекс + триггер вместимости из
// миграций). Create переводит нарушения этих ограничений в доменные
// ошибки, поэтому гонка двух одновременных бронирований безопасна:
// один INSERT проходит, второй получает конфликт.
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

var _ ports.InscriptionRepository = (*InscriptionRepository)(nil)

// InscriptionRepository реализует ports.InscriptionRepository.
type InscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewInscriptionRepository создаёт новый InscriptionRepository.
func NewInscriptionRepository(pool *pgxpool.Pool) *InscriptionRepository {
	return &InscriptionRepository{pool: pool}
}

const inscriptionColumns = `id, user_id, travel_id, status, created_at`

func scanInscription(scanner interface{ Scan(dest ...any) error }) (*entities.Inscription, error) {
	var (
		id, userID, travelID uuid.UUID
		status               string
		createdAt            time.Time
	)

	if err := scanner.Scan(&id, &userID, &travelID, &status, &createdAt); err != nil {
		return nil, err
	}

	return entities.ReconstructInscription(
		id, userID, travelID,
		entities.InscriptionStatus(status),
		createdAt,
	), nil
}

// Create вставляет инскрипцию.
//
// Нарушения ограничений БД переводятся в доменные ошибки:
//   - частичный UNIQUE (user_id, travel_id) -> ALREADY_INSCRIBED
//   - триггер вместимости -> NO_SEATS_AVAILABLE
//   - FK на travels -> TRAVEL_NOT_FOUND (поездку успели удалить)
func (r *InscriptionRepository) Create(ctx context.Context, ins *entities.Inscription) error {
	q := queryTarget(ctx, r.pool)

	query := `
		INSERT INTO inscriptions (id, user_id, travel_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query,
		ins.ID(),
		ins.UserID(),
		ins.TravelID(),
		string(ins.Status()),
		ins.CreatedAt(),
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "inscriptions_user_travel_active"):
			return domainErrors.NewAlreadyInscribed(ins.UserID().String(), ins.TravelID().String())
		case isRaisedException(err, "no seats available"):
			return domainErrors.NewNoSeatsAvailable(ins.TravelID().String(), 0)
		case isForeignKeyViolation(err):
			return domainErrors.NewTravelNotFound(ins.TravelID().String())
		}
		return domainErrors.NewRepositoryError("failed to create inscription", err)
	}

	return nil
}

// FindByID загружает инскрипцию по ID. (nil, nil) если не найдена.
func (r *InscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Inscription, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + inscriptionColumns + ` FROM inscriptions WHERE id = $1`

	ins, err := scanInscription(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find inscription by id", err)
	}

	return ins, nil
}

// ExistsByUserAndTravel проверяет наличие активной инскрипции пары.
func (r *InscriptionRepository) ExistsByUserAndTravel(ctx context.Context, userID, travelID uuid.UUID) (bool, error) {
	q := queryTarget(ctx, r.pool)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM inscriptions
			WHERE user_id = $1 AND travel_id = $2 AND status <> 'CANCELLED'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, travelID).Scan(&exists); err != nil {
		return false, domainErrors.NewRepositoryError("failed to check inscription existence", err)
	}

	return exists, nil
}

// CountActiveByTravel считает активные (PENDING/CONFIRMED) инскрипции поездки.
func (r *InscriptionRepository) CountActiveByTravel(ctx context.Context, travelID uuid.UUID) (int, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT COUNT(*) FROM inscriptions WHERE travel_id = $1 AND status <> 'CANCELLED'`

	var count int
	if err := q.QueryRow(ctx, query, travelID).Scan(&count); err != nil {
		return 0, domainErrors.NewRepositoryError("failed to count active inscriptions", err)
	}

	return count, nil
}

// FindAllByUser возвращает инскрипции пользователя (свежие первыми).
func (r *InscriptionRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Inscription, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + inscriptionColumns + ` FROM inscriptions WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, domainErrors.NewRepositoryError("failed to list inscriptions by user", err)
	}
	defer rows.Close()

	return collectInscriptions(rows)
}

// FindAllByTravel возвращает инскрипции поездки.
func (r *InscriptionRepository) FindAllByTravel(ctx context.Context, travelID uuid.UUID) ([]*entities.Inscription, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + inscriptionColumns + ` FROM inscriptions WHERE travel_id = $1 ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, travelID)
	if err != nil {
		return nil, domainErrors.NewRepositoryError("failed to list inscriptions by travel", err)
	}
	defer rows.Close()

	return collectInscriptions(rows)
}

// Update сохраняет смену статуса инскрипции.
func (r *InscriptionRepository) Update(ctx context.Context, ins *entities.Inscription) error {
	q := queryTarget(ctx, r.pool)

	query := `UPDATE inscriptions SET status = $2 WHERE id = $1`

	tag, err := q.Exec(ctx, query, ins.ID(), string(ins.Status()))
	if err != nil {
		return domainErrors.NewRepositoryError("failed to update inscription", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewInscriptionNotFound(ins.ID().String())
	}

	return nil
}

// Delete удаляет инскрипцию.
func (r *InscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := queryTarget(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM inscriptions WHERE id = $1`, id)
	if err != nil {
		return domainErrors.NewRepositoryError("failed to delete inscription", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewInscriptionNotFound(id.String())
	}

	return nil
}

func collectInscriptions(rows pgx.Rows) ([]*entities.Inscription, error) {
	var list []*entities.Inscription
	for rows.Next() {
		ins, err := scanInscription(rows)
		if err != nil {
			return nil, domainErrors.NewRepositoryError("failed to scan inscription row", err)
		}
		list = append(list, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, domainErrors.NewRepositoryError("error iterating inscription rows", err)
	}
	return list, nil
}
