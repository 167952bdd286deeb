package travel

import (
	"context"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
)

// ListTravelsUseCase - страница опубликованных поездок.
type ListTravelsUseCase struct {
	travelRepo ports.TravelRepository
}

// NewListTravelsUseCase создаёт новый use case.
func NewListTravelsUseCase(travelRepo ports.TravelRepository) *ListTravelsUseCase {
	return &ListTravelsUseCase{travelRepo: travelRepo}
}

// Execute возвращает страницу поездок с мета-информацией пагинации.
func (uc *ListTravelsUseCase) Execute(ctx context.Context, query dtos.ListTravelsQuery) (*dtos.TravelListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	travels, total, err := uc.travelRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.TravelListDTO{
		Travels: dtos.ToTravelDTOList(travels),
		Meta:    dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}
