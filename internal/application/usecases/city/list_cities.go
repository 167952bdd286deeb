package city

import (
	"context"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
)

// ListCitiesUseCase - страница городов.
type ListCitiesUseCase struct {
	cityRepo ports.CityRepository
}

// NewListCitiesUseCase создаёт новый use case.
func NewListCitiesUseCase(cityRepo ports.CityRepository) *ListCitiesUseCase {
	return &ListCitiesUseCase{cityRepo: cityRepo}
}

// Execute возвращает страницу городов с мета-информацией.
func (uc *ListCitiesUseCase) Execute(ctx context.Context, query dtos.ListCitiesQuery) (*dtos.CityListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	cities, total, err := uc.cityRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.CityListDTO{
		Cities: dtos.ToCityDTOList(cities),
		Meta:   dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}
