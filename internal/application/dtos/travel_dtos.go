package dtos

import "time"

// CreateTravelCommand - команда публикации поездки.
// UserID - аутентифицированный пользователь; use case разрешает его
// в Driver профиль и проверяет владение автомобилем.
type CreateTravelCommand struct {
	UserID          string    `json:"user_id" validate:"required,uuid"`
	CarID           string    `json:"car_id" validate:"required,uuid"`
	DepartureCityID string    `json:"departure_city_id" validate:"required,uuid"`
	ArrivalCityID   string    `json:"arrival_city_id" validate:"required,uuid"`
	Date            time.Time `json:"date" validate:"required"`
	Kms             int       `json:"kms" validate:"required,gt=0"`
	Seats           int       `json:"seats" validate:"required,min=1,max=8"`
}

// DeleteTravelCommand - команда удаления поездки.
type DeleteTravelCommand struct {
	TravelID string `json:"travel_id" validate:"required,uuid"`
	UserID   string `json:"user_id" validate:"required,uuid"` // должен быть водителем поездки
}

// GetTravelQuery - запрос поездки по ID.
type GetTravelQuery struct {
	TravelID string `json:"travel_id" validate:"required,uuid"`
}

// ListTravelsQuery - запрос страницы поездок.
type ListTravelsQuery struct {
	Page  int `json:"page" validate:"min=0"`
	Limit int `json:"limit" validate:"min=0,max=100"`
}

// TravelDTO - представление поездки для API.
type TravelDTO struct {
	ID              string    `json:"id"`
	DriverID        string    `json:"driver_id"`
	CarID           string    `json:"car_id"`
	DepartureCityID string    `json:"departure_city_id"`
	ArrivalCityID   string    `json:"arrival_city_id"`
	Date            time.Time `json:"date"`
	Kms             int       `json:"kms"`
	Seats           int       `json:"seats"`
	CreatedAt       time.Time `json:"created_at"`
}

// TravelListDTO - страница поездок.
type TravelListDTO struct {
	Travels []TravelDTO `json:"data"`
	Meta    ListMeta    `json:"meta"`
}
