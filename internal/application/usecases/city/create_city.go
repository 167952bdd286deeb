// Package city содержит use cases для справочника городов.
package city

import (
	"context"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// CreateCityUseCase - добавление города в справочник (admin-эндпоинт).
type CreateCityUseCase struct {
	cityRepo ports.CityRepository
}

// NewCreateCityUseCase создаёт новый use case.
func NewCreateCityUseCase(cityRepo ports.CityRepository) *CreateCityUseCase {
	return &CreateCityUseCase{cityRepo: cityRepo}
}

// Execute добавляет город.
//
// Errors:
//   - CITY_ALREADY_EXISTS: город с таким именем уже есть
func (uc *CreateCityUseCase) Execute(ctx context.Context, cmd dtos.CreateCityCommand) (*dtos.CityDTO, error) {
	// Уникальность имени. Гонку закрывает UNIQUE в БД.
	existing, err := uc.cityRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewCityAlreadyExists(cmd.Name)
	}

	city, err := entities.NewCity(cmd.Name, cmd.ZipCode)
	if err != nil {
		return nil, err
	}

	if err := uc.cityRepo.Create(ctx, city); err != nil {
		return nil, err
	}

	dto := dtos.ToCityDTO(city)
	return &dto, nil
}
