// Package travel содержит use cases для публикации и чтения поездок.
//
// Pattern: Use Case (Interactor)
// - Оркестрирует domain entities
// - Проверяет существование связанных сущностей перед записью
package travel

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// CreateTravelUseCase - публикация поездки водителем.
//
// Сценарий:
// 1. Разрешить Driver профиль пользователя
// 2. Проверить, что автомобиль существует и принадлежит водителю
// 3. Проверить оба города
// 4. Создать domain entity Travel (валидация внутри)
// 5. Сохранить
type CreateTravelUseCase struct {
	driverRepo ports.DriverRepository
	carRepo    ports.CarRepository
	cityRepo   ports.CityRepository
	travelRepo ports.TravelRepository
}

// NewCreateTravelUseCase создаёт новый use case.
func NewCreateTravelUseCase(
	driverRepo ports.DriverRepository,
	carRepo ports.CarRepository,
	cityRepo ports.CityRepository,
	travelRepo ports.TravelRepository,
) *CreateTravelUseCase {
	return &CreateTravelUseCase{
		driverRepo: driverRepo,
		carRepo:    carRepo,
		cityRepo:   cityRepo,
		travelRepo: travelRepo,
	}
}

// Execute публикует поездку.
//
// Errors:
//   - DRIVER_NOT_FOUND: у пользователя нет Driver профиля
//   - CAR_NOT_FOUND: автомобиль не существует или чужой
//   - CITY_NOT_FOUND: город отправления/прибытия не существует
func (uc *CreateTravelUseCase) Execute(ctx context.Context, cmd dtos.CreateTravelCommand) (*dtos.TravelDTO, error) {
	userID, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}
	carID, err := uuid.Parse(cmd.CarID)
	if err != nil {
		return nil, errors.ValidationError{Field: "car_id", Message: "must be a valid UUID"}
	}
	departureID, err := uuid.Parse(cmd.DepartureCityID)
	if err != nil {
		return nil, errors.ValidationError{Field: "departure_city_id", Message: "must be a valid UUID"}
	}
	arrivalID, err := uuid.Parse(cmd.ArrivalCityID)
	if err != nil {
		return nil, errors.ValidationError{Field: "arrival_city_id", Message: "must be a valid UUID"}
	}

	// 1. Driver профиль
	driver, err := uc.driverRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, errors.NewDriverNotFound(cmd.UserID)
	}

	// 2. Автомобиль существует и принадлежит этому водителю
	car, err := uc.carRepo.FindByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil || car.DriverID() != driver.ID() {
		return nil, errors.NewCarNotFound(cmd.CarID)
	}

	// 3. Города
	departure, err := uc.cityRepo.FindByID(ctx, departureID)
	if err != nil {
		return nil, err
	}
	if departure == nil {
		return nil, errors.NewCityNotFound(cmd.DepartureCityID)
	}

	arrival, err := uc.cityRepo.FindByID(ctx, arrivalID)
	if err != nil {
		return nil, err
	}
	if arrival == nil {
		return nil, errors.NewCityNotFound(cmd.ArrivalCityID)
	}

	// 4. Entity с бизнес-валидацией (дата в будущем, города различны...)
	travel, err := entities.NewTravel(driver.ID(), car.ID(), departure.ID(), arrival.ID(), cmd.Date, cmd.Kms, cmd.Seats)
	if err != nil {
		return nil, err
	}

	// 5. Сохраняем
	if err := uc.travelRepo.Create(ctx, travel); err != nil {
		return nil, err
	}

	dto := dtos.ToTravelDTO(travel)
	return &dto, nil
}
