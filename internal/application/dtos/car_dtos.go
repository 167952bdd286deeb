package dtos

import "time"

// RegisterCarCommand - команда регистрации автомобиля.
// Если у пользователя ещё нет Driver профиля, он создаётся здесь же
// из License (в одной транзакции с автомобилем).
type RegisterCarCommand struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	ModelID string `json:"model_id" validate:"required,uuid"`
	ColorID string `json:"color_id" validate:"required,uuid"`
	Plate   string `json:"plate" validate:"required,min=4,max=16"`
	Seats   int    `json:"seats" validate:"required,min=1,max=8"`
	License string `json:"license" validate:"required,min=5,max=32"`
}

// ListCarsQuery - запрос страницы автомобилей.
type ListCarsQuery struct {
	Page  int `json:"page" validate:"min=0"`
	Limit int `json:"limit" validate:"min=0,max=100"`
}

// CarDTO - представление автомобиля для API.
type CarDTO struct {
	ID        string    `json:"id"`
	DriverID  string    `json:"driver_id"`
	ModelID   string    `json:"model_id"`
	ColorID   string    `json:"color_id"`
	Plate     string    `json:"plate"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}

// CarRegisteredDTO - результат регистрации автомобиля.
type CarRegisteredDTO struct {
	Car      CarDTO `json:"car"`
	DriverID string `json:"driver_id"`
	Message  string `json:"message"`
}

// CarListDTO - страница автомобилей.
type CarListDTO struct {
	Cars []CarDTO `json:"data"`
	Meta ListMeta `json:"meta"`
}
