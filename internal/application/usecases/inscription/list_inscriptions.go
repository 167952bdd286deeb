package inscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// ListInscriptionsByUserUseCase - бронирования пассажира.
type ListInscriptionsByUserUseCase struct {
	inscriptionRepo ports.InscriptionRepository
}

// NewListInscriptionsByUserUseCase создаёт новый use case.
func NewListInscriptionsByUserUseCase(inscriptionRepo ports.InscriptionRepository) *ListInscriptionsByUserUseCase {
	return &ListInscriptionsByUserUseCase{inscriptionRepo: inscriptionRepo}
}

// Execute возвращает все инскрипции пассажира.
func (uc *ListInscriptionsByUserUseCase) Execute(ctx context.Context, query dtos.ListInscriptionsByUserQuery) (*dtos.InscriptionListDTO, error) {
	userID, err := uuid.Parse(query.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	list, err := uc.inscriptionRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dtos.InscriptionListDTO{Inscriptions: dtos.ToInscriptionDTOList(list)}, nil
}

// ListInscriptionsByTravelUseCase - бронирования поездки (для водителя).
type ListInscriptionsByTravelUseCase struct {
	travelRepo      ports.TravelRepository
	inscriptionRepo ports.InscriptionRepository
}

// NewListInscriptionsByTravelUseCase создаёт новый use case.
func NewListInscriptionsByTravelUseCase(
	travelRepo ports.TravelRepository,
	inscriptionRepo ports.InscriptionRepository,
) *ListInscriptionsByTravelUseCase {
	return &ListInscriptionsByTravelUseCase{
		travelRepo:      travelRepo,
		inscriptionRepo: inscriptionRepo,
	}
}

// Execute возвращает все инскрипции поездки.
//
// Errors:
//   - TRAVEL_NOT_FOUND: поездка не существует
func (uc *ListInscriptionsByTravelUseCase) Execute(ctx context.Context, query dtos.ListInscriptionsByTravelQuery) (*dtos.InscriptionListDTO, error) {
	travelID, err := uuid.Parse(query.TravelID)
	if err != nil {
		return nil, errors.ValidationError{Field: "travel_id", Message: "must be a valid UUID"}
	}

	travel, err := uc.travelRepo.FindByID(ctx, travelID)
	if err != nil {
		return nil, err
	}
	if travel == nil {
		return nil, errors.NewTravelNotFound(query.TravelID)
	}

	list, err := uc.inscriptionRepo.FindAllByTravel(ctx, travelID)
	if err != nil {
		return nil, err
	}

	return &dtos.InscriptionListDTO{Inscriptions: dtos.ToInscriptionDTOList(list)}, nil
}
