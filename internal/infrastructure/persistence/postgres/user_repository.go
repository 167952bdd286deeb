// Package postgres - UserRepository implementation.
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

// Compile-time check: UserRepository implements ports.UserRepository
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository реализует ports.UserRepository с использованием PostgreSQL.
//
// Thread-safe: использует connection pool.
// Transaction-aware: автоматически использует транзакцию из context если есть.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository создаёт новый UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, full_name, phone, role, anonymized_at, created_at, updated_at`

// scanUser сканирует строку в domain entity User.
func scanUser(scanner interface{ Scan(dest ...any) error }) (*entities.User, error) {
	var (
		id                   uuid.UUID
		email                string
		passwordHash         string
		fullName             string
		phone                string
		role                 string
		anonymizedAt         *time.Time
		createdAt, updatedAt time.Time
	)

	err := scanner.Scan(
		&id,
		&email,
		&passwordHash,
		&fullName,
		&phone,
		&role,
		&anonymizedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructUser(
		id, email, passwordHash, fullName, phone,
		entities.Role(role),
		anonymizedAt,
		createdAt, updatedAt,
	), nil
}

// Create вставляет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	q := queryTarget(ctx, r.pool)

	query := `
		INSERT INTO users (id, email, password_hash, full_name, phone, role, anonymized_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		user.ID(),
		user.Email(),
		user.PasswordHash(),
		user.FullName(),
		user.Phone(),
		string(user.Role()),
		user.AnonymizedAt(),
		user.CreatedAt(),
		user.UpdatedAt(),
	)

	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domainErrors.NewEmailAlreadyExists(user.Email())
		}
		return domainErrors.NewRepositoryError("failed to create user", err)
	}

	return nil
}

// FindByID загружает пользователя по ID. (nil, nil) если не найден.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find user by id", err)
	}

	return user, nil
}

// FindByEmail загружает пользователя по email. (nil, nil) если не найден.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domainErrors.NewRepositoryError("failed to find user by email", err)
	}

	return user, nil
}

// ExistsByEmail проверяет существование пользователя по email.
// Оптимизированный запрос без загрузки всех полей.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := queryTarget(ctx, r.pool)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, domainErrors.NewRepositoryError("failed to check email existence", err)
	}

	return exists, nil
}

// FindAll возвращает страницу пользователей и общее количество.
func (r *UserRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.User, int, error) {
	q := queryTarget(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to count users", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := q.Query(ctx, query, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, domainErrors.NewRepositoryError("failed to list users", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, domainErrors.NewRepositoryError("failed to scan user row", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, domainErrors.NewRepositoryError("error iterating user rows", err)
	}

	return users, total, nil
}

// Update сохраняет изменённого пользователя.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	q := queryTarget(ctx, r.pool)

	query := `
		UPDATE users
		SET email = $2, password_hash = $3, full_name = $4, phone = $5,
		    role = $6, anonymized_at = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		user.ID(),
		user.Email(),
		user.PasswordHash(),
		user.FullName(),
		user.Phone(),
		string(user.Role()),
		user.AnonymizedAt(),
		user.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domainErrors.NewEmailAlreadyExists(user.Email())
		}
		return domainErrors.NewRepositoryError("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewUserNotFound(user.ID().String())
	}

	return nil
}

// Delete удаляет пользователя. Вызывающий обязан сначала проверить
// IsReferenced: FK без каскада откажет, и это вернётся конфликтом.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := queryTarget(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.NewUserReferenced(id.String())
		}
		return domainErrors.NewRepositoryError("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.NewUserNotFound(id.String())
	}

	return nil
}

// IsReferenced проверяет, ссылаются ли на пользователя инскрипции
// или Driver профиль.
func (r *UserRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	q := queryTarget(ctx, r.pool)

	query := `
		SELECT EXISTS(SELECT 1 FROM inscriptions WHERE user_id = $1)
		    OR EXISTS(SELECT 1 FROM drivers WHERE user_id = $1)
	`

	var referenced bool
	if err := q.QueryRow(ctx, query, id).Scan(&referenced); err != nil {
		return false, domainErrors.NewRepositoryError("failed to check user references", err)
	}

	return referenced, nil
}
