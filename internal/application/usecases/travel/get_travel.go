package travel

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// GetTravelUseCase - чтение одной поездки.
type GetTravelUseCase struct {
	travelRepo ports.TravelRepository
}

// NewGetTravelUseCase создаёт новый use case.
func NewGetTravelUseCase(travelRepo ports.TravelRepository) *GetTravelUseCase {
	return &GetTravelUseCase{travelRepo: travelRepo}
}

// Execute возвращает поездку по ID.
func (uc *GetTravelUseCase) Execute(ctx context.Context, query dtos.GetTravelQuery) (*dtos.TravelDTO, error) {
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

	dto := dtos.ToTravelDTO(travel)
	return &dto, nil
}
