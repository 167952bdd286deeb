package inscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// ConfirmInscriptionUseCase - подтверждение бронирования водителем.
// Подтвердить может только водитель той поездки, к которой относится
// инскрипция; пассажиру операция недоступна.
type ConfirmInscriptionUseCase struct {
	inscriptionRepo ports.InscriptionRepository
	travelRepo      ports.TravelRepository
	driverRepo      ports.DriverRepository
}

// NewConfirmInscriptionUseCase создаёт новый use case.
func NewConfirmInscriptionUseCase(
	inscriptionRepo ports.InscriptionRepository,
	travelRepo ports.TravelRepository,
	driverRepo ports.DriverRepository,
) *ConfirmInscriptionUseCase {
	return &ConfirmInscriptionUseCase{
		inscriptionRepo: inscriptionRepo,
		travelRepo:      travelRepo,
		driverRepo:      driverRepo,
	}
}

// Execute подтверждает бронирование.
//
// Errors:
//   - INSCRIPTION_NOT_FOUND: инскрипция не существует
//   - TRAVEL_NOT_FOUND: поездка инскрипции была удалена
//   - NOT_TRAVEL_DRIVER: вызывающий не водитель этой поездки
//   - ErrInvalidInscriptionStatus: инскрипция не в статусе PENDING
func (uc *ConfirmInscriptionUseCase) Execute(ctx context.Context, cmd dtos.ConfirmInscriptionCommand) (*dtos.InscriptionDTO, error) {
	insID, err := uuid.Parse(cmd.InscriptionID)
	if err != nil {
		return nil, errors.ValidationError{Field: "inscription_id", Message: "must be a valid UUID"}
	}
	driverUserID, err := uuid.Parse(cmd.DriverUserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "driver_user_id", Message: "must be a valid UUID"}
	}

	ins, err := uc.inscriptionRepo.FindByID(ctx, insID)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, errors.NewInscriptionNotFound(cmd.InscriptionID)
	}

	travel, err := uc.travelRepo.FindByID(ctx, ins.TravelID())
	if err != nil {
		return nil, err
	}
	if travel == nil {
		return nil, errors.NewTravelNotFound(ins.TravelID().String())
	}

	driver, err := uc.driverRepo.FindByUserID(ctx, driverUserID)
	if err != nil {
		return nil, err
	}
	if driver == nil || driver.ID() != travel.DriverID() {
		return nil, errors.NewNotTravelDriver(travel.ID().String())
	}

	if err := ins.Confirm(); err != nil {
		return nil, err
	}

	if err := uc.inscriptionRepo.Update(ctx, ins); err != nil {
		return nil, err
	}

	dto := dtos.ToInscriptionDTO(ins)
	return &dto, nil
}
