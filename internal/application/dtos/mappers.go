// Package dtos - Mappers для конвертации domain entities в DTOs.
//
// Pattern: Mapper/Converter
// Отделяет domain representation от API representation
package dtos

import (
	"github.com/roadshare/roadshare/internal/domain/entities"
)

// ============================================
// User Mappers
// ============================================

// ToUserDTO конвертирует domain entity User в DTO.
func ToUserDTO(user *entities.User) UserDTO {
	return UserDTO{
		ID:         user.ID().String(),
		Email:      user.Email(),
		FullName:   user.FullName(),
		Phone:      user.Phone(),
		Role:       string(user.Role()),
		Anonymized: user.IsAnonymized(),
		CreatedAt:  user.CreatedAt(),
		UpdatedAt:  user.UpdatedAt(),
	}
}

// ToUserDTOList конвертирует список users.
func ToUserDTOList(users []*entities.User) []UserDTO {
	result := make([]UserDTO, len(users))
	for i, user := range users {
		result[i] = ToUserDTO(user)
	}
	return result
}

// ============================================
// Travel Mappers
// ============================================

// ToTravelDTO конвертирует domain entity Travel в DTO.
func ToTravelDTO(travel *entities.Travel) TravelDTO {
	return TravelDTO{
		ID:              travel.ID().String(),
		DriverID:        travel.DriverID().String(),
		CarID:           travel.CarID().String(),
		DepartureCityID: travel.DepartureCity().String(),
		ArrivalCityID:   travel.ArrivalCity().String(),
		Date:            travel.Date(),
		Kms:             travel.Kms(),
		Seats:           travel.Seats(),
		CreatedAt:       travel.CreatedAt(),
	}
}

// ToTravelDTOList конвертирует список travels.
func ToTravelDTOList(travels []*entities.Travel) []TravelDTO {
	result := make([]TravelDTO, len(travels))
	for i, travel := range travels {
		result[i] = ToTravelDTO(travel)
	}
	return result
}

// ============================================
// Inscription Mappers
// ============================================

// ToInscriptionDTO конвертирует domain entity Inscription в DTO.
func ToInscriptionDTO(ins *entities.Inscription) InscriptionDTO {
	return InscriptionDTO{
		ID:        ins.ID().String(),
		UserID:    ins.UserID().String(),
		TravelID:  ins.TravelID().String(),
		Status:    string(ins.Status()),
		CreatedAt: ins.CreatedAt(),
	}
}

// ToInscriptionDTOList конвертирует список inscriptions.
func ToInscriptionDTOList(list []*entities.Inscription) []InscriptionDTO {
	result := make([]InscriptionDTO, len(list))
	for i, ins := range list {
		result[i] = ToInscriptionDTO(ins)
	}
	return result
}

// ============================================
// Car / Catalog / City Mappers
// ============================================

// ToCarDTO конвертирует domain entity Car в DTO.
func ToCarDTO(car *entities.Car) CarDTO {
	return CarDTO{
		ID:        car.ID().String(),
		DriverID:  car.DriverID().String(),
		ModelID:   car.ModelID().String(),
		ColorID:   car.ColorID().String(),
		Plate:     car.Plate(),
		Seats:     car.Seats(),
		CreatedAt: car.CreatedAt(),
	}
}

// ToCarDTOList конвертирует список cars.
func ToCarDTOList(cars []*entities.Car) []CarDTO {
	result := make([]CarDTO, len(cars))
	for i, car := range cars {
		result[i] = ToCarDTO(car)
	}
	return result
}

// ToCityDTO конвертирует domain entity City в DTO.
func ToCityDTO(city *entities.City) CityDTO {
	return CityDTO{
		ID:      city.ID().String(),
		Name:    city.Name(),
		ZipCode: city.ZipCode(),
	}
}

// ToCityDTOList конвертирует список cities.
func ToCityDTOList(cities []*entities.City) []CityDTO {
	result := make([]CityDTO, len(cities))
	for i, city := range cities {
		result[i] = ToCityDTO(city)
	}
	return result
}

// ToBrandDTO конвертирует Brand в DTO.
func ToBrandDTO(brand *entities.Brand) BrandDTO {
	return BrandDTO{ID: brand.ID().String(), Name: brand.Name()}
}

// ToBrandDTOList конвертирует список brands.
func ToBrandDTOList(brands []*entities.Brand) []BrandDTO {
	result := make([]BrandDTO, len(brands))
	for i, brand := range brands {
		result[i] = ToBrandDTO(brand)
	}
	return result
}

// ToModelDTO конвертирует Model в DTO.
func ToModelDTO(model *entities.Model) ModelDTO {
	return ModelDTO{
		ID:      model.ID().String(),
		BrandID: model.BrandID().String(),
		Name:    model.Name(),
	}
}

// ToModelDTOList конвертирует список models.
func ToModelDTOList(models []*entities.Model) []ModelDTO {
	result := make([]ModelDTO, len(models))
	for i, model := range models {
		result[i] = ToModelDTO(model)
	}
	return result
}

// ToColorDTO конвертирует Color в DTO.
func ToColorDTO(color *entities.Color) ColorDTO {
	return ColorDTO{ID: color.ID().String(), Name: color.Name()}
}

// ToColorDTOList конвертирует список colors.
func ToColorDTOList(colors []*entities.Color) []ColorDTO {
	result := make([]ColorDTO, len(colors))
	for i, color := range colors {
		result[i] = ToColorDTO(color)
	}
	return result
}
