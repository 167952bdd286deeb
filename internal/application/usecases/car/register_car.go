// Package car содержит use cases для автомобилей.
package car

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// RegisterCarUseCase - регистрация автомобиля.
//
// Сценарий:
// 1. Проверить пользователя, модель и цвет
// 2. Проверить уникальность номерного знака
// 3. Найти Driver профиль; если его нет - создать из License
// 4. Создать Car
// Шаги 3-4 идут в одной транзакции (UnitOfWork): полуготовое
// состояние "водитель без машины" при сбое не остаётся.
type RegisterCarUseCase struct {
	userRepo   ports.UserRepository
	driverRepo ports.DriverRepository
	carRepo    ports.CarRepository
	modelRepo  ports.ModelRepository
	colorRepo  ports.ColorRepository
	uow        ports.UnitOfWork
	logger     *slog.Logger
}

// NewRegisterCarUseCase создаёт новый use case.
func NewRegisterCarUseCase(
	userRepo ports.UserRepository,
	driverRepo ports.DriverRepository,
	carRepo ports.CarRepository,
	modelRepo ports.ModelRepository,
	colorRepo ports.ColorRepository,
	uow ports.UnitOfWork,
	logger *slog.Logger,
) *RegisterCarUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterCarUseCase{
		userRepo:   userRepo,
		driverRepo: driverRepo,
		carRepo:    carRepo,
		modelRepo:  modelRepo,
		colorRepo:  colorRepo,
		uow:        uow,
		logger:     logger,
	}
}

// Execute регистрирует автомобиль (и при необходимости Driver профиль).
//
// Errors:
//   - USER_NOT_FOUND: пользователь не существует или анонимизирован
//   - MODEL_NOT_FOUND: модель не существует
//   - CITY/COLOR ошибки из справочника
//   - PLATE_ALREADY_EXISTS: номерной знак занят
func (uc *RegisterCarUseCase) Execute(ctx context.Context, cmd dtos.RegisterCarCommand) (*dtos.CarRegisteredDTO, error) {
	userID, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}
	modelID, err := uuid.Parse(cmd.ModelID)
	if err != nil {
		return nil, errors.ValidationError{Field: "model_id", Message: "must be a valid UUID"}
	}
	colorID, err := uuid.Parse(cmd.ColorID)
	if err != nil {
		return nil, errors.ValidationError{Field: "color_id", Message: "must be a valid UUID"}
	}

	// 1. Пользователь
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsAnonymized() {
		return nil, errors.NewUserNotFound(cmd.UserID)
	}

	// Справочник: модель и цвет должны существовать
	model, err := uc.modelRepo.FindByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, errors.NewModelNotFound(cmd.ModelID)
	}

	color, err := uc.colorRepo.FindByID(ctx, colorID)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, errors.NewColorNotFound(cmd.ColorID)
	}

	// 2. Уникальность номера. Гонку закрывает UNIQUE в БД.
	taken, err := uc.carRepo.ExistsByPlate(ctx, cmd.Plate)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewPlateAlreadyExists(cmd.Plate)
	}

	// 3-4. Driver (find-or-create) + Car в одной транзакции.
	var car *entities.Car
	var driver *entities.Driver
	err = uc.uow.Execute(ctx, func(txCtx context.Context) error {
		driver, err = uc.driverRepo.FindByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		if driver == nil {
			driver, err = entities.NewDriver(userID, cmd.License)
			if err != nil {
				return err
			}
			if err := uc.driverRepo.Create(txCtx, driver); err != nil {
				return err
			}
		}

		car, err = entities.NewCar(driver.ID(), modelID, colorID, cmd.Plate, cmd.Seats)
		if err != nil {
			return err
		}
		return uc.carRepo.Create(txCtx, car)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("car registered",
		slog.String("car_id", car.ID().String()),
		slog.String("driver_id", driver.ID().String()),
	)

	return &dtos.CarRegisteredDTO{
		Car:      dtos.ToCarDTO(car),
		DriverID: driver.ID().String(),
		Message:  "Car registered.",
	}, nil
}
