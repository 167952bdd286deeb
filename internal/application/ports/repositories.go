// Package ports определяет интерфейсы (порты) для внешних зависимостей.
// Эти интерфейсы реализуются в Infrastructure Layer.
//
// SOLID Principles:
// - DIP: Application зависит от абстракций, не от конкретных реализаций
// - ISP: Каждый интерфейс фокусируется на одной сущности
// - SRP: Repository отвечает только за persistence
//
// Pattern: Repository Pattern + Ports & Adapters (Hexagonal Architecture)
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/entities"
)

// Pagination описывает запрошенную страницу списка.
type Pagination struct {
	Page  int // 1-based
	Limit int
}

// Offset возвращает SQL offset для страницы.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Normalize приводит пагинацию к допустимым значениям.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

// Finder-методы возвращают (nil, nil) когда сущность не найдена.
// "Не найдено" - это НЕ ошибка: ошибка означает сбой хранилища.
// Use case сам решает, превращать ли nil в доменную not-found ошибку.

// UserRepository определяет контракт для хранения пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя.
	Create(ctx context.Context, user *entities.User) error

	// FindByID загружает пользователя по ID. (nil, nil) если не найден.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByEmail загружает пользователя по email. (nil, nil) если не найден.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// ExistsByEmail проверяет существование без загрузки всей entity.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll возвращает страницу пользователей и общее количество.
	FindAll(ctx context.Context, p Pagination) ([]*entities.User, int, error)

	// Update перезаписывает пользователя (используется анонимизацией).
	Update(ctx context.Context, user *entities.User) error

	// Delete жёстко удаляет пользователя. Допустимо только когда на
	// него не ссылаются travels/inscriptions (IsReferenced == false).
	Delete(ctx context.Context, id uuid.UUID) error

	// IsReferenced проверяет, ссылаются ли на пользователя поездки
	// или инскрипции (как пассажир или водитель).
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
}

// DriverRepository определяет контракт для хранения водителей.
type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
	// FindByUserID возвращает профиль водителя пользователя.
	// (nil, nil) если пользователь ещё не водитель.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Driver, error)
}

// CarRepository определяет контракт для хранения автомобилей.
type CarRepository interface {
	Create(ctx context.Context, car *entities.Car) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Car, error)
	ExistsByPlate(ctx context.Context, plate string) (bool, error)
	FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Car, error)
	FindAll(ctx context.Context, p Pagination) ([]*entities.Car, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TravelRepository определяет контракт для хранения поездок.
type TravelRepository interface {
	Create(ctx context.Context, travel *entities.Travel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Travel, error)
	FindAll(ctx context.Context, p Pagination) ([]*entities.Travel, int, error)
	FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Travel, error)
	// Delete удаляет поездку. Каскад на инскрипции делает БД,
	// кэш-инвалидация обоих доменов - обязанность декоратора.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InscriptionRepository определяет контракт для хранения бронирований.
type InscriptionRepository interface {
	// Create сохраняет инскрипцию. Реализация ОБЯЗАНА вернуть
	// доменную ошибку ALREADY_INSCRIBED при нарушении уникальности
	// пары (user, travel) и NO_SEATS_AVAILABLE при превышении
	// вместимости: ограничения БД - последняя линия защиты от гонок.
	Create(ctx context.Context, inscription *entities.Inscription) error

	FindByID(ctx context.Context, id uuid.UUID) (*entities.Inscription, error)

	// ExistsByUserAndTravel проверяет наличие активной инскрипции пары.
	ExistsByUserAndTravel(ctx context.Context, userID, travelID uuid.UUID) (bool, error)

	// CountActiveByTravel возвращает число активных инскрипций поездки.
	CountActiveByTravel(ctx context.Context, travelID uuid.UUID) (int, error)

	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Inscription, error)
	FindAllByTravel(ctx context.Context, travelID uuid.UUID) ([]*entities.Inscription, error)

	// Update перезаписывает статус (confirm / cancel).
	Update(ctx context.Context, inscription *entities.Inscription) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// CityRepository определяет контракт для хранения городов.
type CityRepository interface {
	Create(ctx context.Context, city *entities.City) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.City, error)
	// FindByName ищет по точному имени. (nil, nil) если не найден.
	FindByName(ctx context.Context, name string) (*entities.City, error)
	FindAll(ctx context.Context, p Pagination) ([]*entities.City, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrandRepository - справочник марок автомобилей.
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	FindAll(ctx context.Context, p Pagination) ([]*entities.Brand, int, error)
}

// ModelRepository - справочник моделей автомобилей.
type ModelRepository interface {
	Create(ctx context.Context, model *entities.Model) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Model, error)
	FindAllByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Model, error)
	FindAll(ctx context.Context, p Pagination) ([]*entities.Model, int, error)
}

// ColorRepository - справочник цветов.
type ColorRepository interface {
	Create(ctx context.Context, color *entities.Color) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Color, error)
	FindAll(ctx context.Context, p Pagination) ([]*entities.Color, int, error)
}
