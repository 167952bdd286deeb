package car

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// ListCarsUseCase - страница всех автомобилей (admin-эндпоинт).
type ListCarsUseCase struct {
	carRepo ports.CarRepository
}

// NewListCarsUseCase создаёт новый use case.
func NewListCarsUseCase(carRepo ports.CarRepository) *ListCarsUseCase {
	return &ListCarsUseCase{carRepo: carRepo}
}

// Execute возвращает страницу автомобилей.
func (uc *ListCarsUseCase) Execute(ctx context.Context, query dtos.ListCarsQuery) (*dtos.CarListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	cars, total, err := uc.carRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.CarListDTO{
		Cars: dtos.ToCarDTOList(cars),
		Meta: dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}

// ListCarsByDriverUseCase - автомобили конкретного пользователя.
type ListCarsByDriverUseCase struct {
	driverRepo ports.DriverRepository
	carRepo    ports.CarRepository
}

// NewListCarsByDriverUseCase создаёт новый use case.
func NewListCarsByDriverUseCase(driverRepo ports.DriverRepository, carRepo ports.CarRepository) *ListCarsByDriverUseCase {
	return &ListCarsByDriverUseCase{driverRepo: driverRepo, carRepo: carRepo}
}

// Execute возвращает автомобили пользователя (через его Driver профиль).
//
// Errors:
//   - DRIVER_NOT_FOUND: у пользователя нет Driver профиля
func (uc *ListCarsByDriverUseCase) Execute(ctx context.Context, userID string) ([]dtos.CarDTO, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	driver, err := uc.driverRepo.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, errors.NewDriverNotFound(userID)
	}

	cars, err := uc.carRepo.FindAllByDriver(ctx, driver.ID())
	if err != nil {
		return nil, err
	}

	return dtos.ToCarDTOList(cars), nil
}
