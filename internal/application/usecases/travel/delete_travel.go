package travel

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// DeleteTravelUseCase - удаление поездки её водителем.
//
// Удаление каскадно убирает инскрипции (FK ON DELETE CASCADE);
// кэш-декоратор TravelRepository после успешного Delete инвалидирует
// и домен travels, и домен inscriptions.
type DeleteTravelUseCase struct {
	travelRepo ports.TravelRepository
	driverRepo ports.DriverRepository
}

// NewDeleteTravelUseCase создаёт новый use case.
func NewDeleteTravelUseCase(travelRepo ports.TravelRepository, driverRepo ports.DriverRepository) *DeleteTravelUseCase {
	return &DeleteTravelUseCase{
		travelRepo: travelRepo,
		driverRepo: driverRepo,
	}
}

// Execute удаляет поездку.
//
// Errors:
//   - TRAVEL_NOT_FOUND: поездка не существует или принадлежит другому
//     водителю (чужие поездки не раскрываем)
func (uc *DeleteTravelUseCase) Execute(ctx context.Context, cmd dtos.DeleteTravelCommand) error {
	travelID, err := uuid.Parse(cmd.TravelID)
	if err != nil {
		return errors.ValidationError{Field: "travel_id", Message: "must be a valid UUID"}
	}
	userID, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	travel, err := uc.travelRepo.FindByID(ctx, travelID)
	if err != nil {
		return err
	}
	if travel == nil {
		return errors.NewTravelNotFound(cmd.TravelID)
	}

	driver, err := uc.driverRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if driver == nil || travel.DriverID() != driver.ID() {
		return errors.NewTravelNotFound(cmd.TravelID)
	}

	return uc.travelRepo.Delete(ctx, travelID)
}
