// Package catalog содержит use cases для справочника автомобилей
// (марки, модели, цвета). Справочник только читается через API;
// наполняется он миграциями и admin-инструментами.
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// ListBrandsUseCase - страница марок.
type ListBrandsUseCase struct {
	brandRepo ports.BrandRepository
}

// NewListBrandsUseCase создаёт новый use case.
func NewListBrandsUseCase(brandRepo ports.BrandRepository) *ListBrandsUseCase {
	return &ListBrandsUseCase{brandRepo: brandRepo}
}

// Execute возвращает страницу марок.
func (uc *ListBrandsUseCase) Execute(ctx context.Context, query dtos.ListCatalogQuery) (*dtos.BrandListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	brands, total, err := uc.brandRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.BrandListDTO{
		Brands: dtos.ToBrandDTOList(brands),
		Meta:   dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}

// ListModelsUseCase - страница моделей, опционально по марке.
type ListModelsUseCase struct {
	modelRepo ports.ModelRepository
}

// NewListModelsUseCase создаёт новый use case.
func NewListModelsUseCase(modelRepo ports.ModelRepository) *ListModelsUseCase {
	return &ListModelsUseCase{modelRepo: modelRepo}
}

// Execute возвращает страницу моделей.
func (uc *ListModelsUseCase) Execute(ctx context.Context, query dtos.ListCatalogQuery) (*dtos.ModelListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	models, total, err := uc.modelRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.ModelListDTO{
		Models: dtos.ToModelDTOList(models),
		Meta:   dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}

// ExecuteByBrand возвращает все модели одной марки (без пагинации,
// справочник небольшой).
func (uc *ListModelsUseCase) ExecuteByBrand(ctx context.Context, brandID string) ([]dtos.ModelDTO, error) {
	id, err := uuid.Parse(brandID)
	if err != nil {
		return nil, errors.ValidationError{Field: "brand_id", Message: "must be a valid UUID"}
	}

	models, err := uc.modelRepo.FindAllByBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	return dtos.ToModelDTOList(models), nil
}

// ListColorsUseCase - страница цветов.
type ListColorsUseCase struct {
	colorRepo ports.ColorRepository
}

// NewListColorsUseCase создаёт новый use case.
func NewListColorsUseCase(colorRepo ports.ColorRepository) *ListColorsUseCase {
	return &ListColorsUseCase{colorRepo: colorRepo}
}

// Execute возвращает страницу цветов. Пустой справочник - это
// успешный ответ с пустым массивом, не ошибка.
func (uc *ListColorsUseCase) Execute(ctx context.Context, query dtos.ListCatalogQuery) (*dtos.ColorListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	colors, total, err := uc.colorRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.ColorListDTO{
		Colors: dtos.ToColorDTOList(colors),
		Meta:   dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}
