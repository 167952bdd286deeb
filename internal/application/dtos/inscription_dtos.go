package dtos

import "time"

// CreateInscriptionCommand - команда бронирования места в поездке.
// UserID - пассажир; слой аутентификации гарантирует, что он
// совпадает с вызывающим.
type CreateInscriptionCommand struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	TravelID string `json:"travel_id" validate:"required,uuid"`
}

// CancelInscriptionCommand - команда отмены бронирования.
type CancelInscriptionCommand struct {
	InscriptionID string `json:"inscription_id" validate:"required,uuid"`
	UserID        string `json:"user_id" validate:"required,uuid"` // владелец инскрипции
}

// ConfirmInscriptionCommand - команда подтверждения бронирования.
// DriverUserID - пользователь-водитель; подтверждать может только
// водитель той поездки, к которой относится инскрипция.
type ConfirmInscriptionCommand struct {
	InscriptionID string `json:"inscription_id" validate:"required,uuid"`
	DriverUserID  string `json:"driver_user_id" validate:"required,uuid"`
}

// ListInscriptionsByUserQuery - бронирования пассажира.
type ListInscriptionsByUserQuery struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// ListInscriptionsByTravelQuery - бронирования поездки.
type ListInscriptionsByTravelQuery struct {
	TravelID string `json:"travel_id" validate:"required,uuid"`
}

// InscriptionDTO - представление бронирования для API.
type InscriptionDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TravelID  string    `json:"travel_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// InscriptionCreatedDTO - результат бронирования.
type InscriptionCreatedDTO struct {
	Inscription InscriptionDTO `json:"inscription"`
	Message     string         `json:"message"`
}

// InscriptionListDTO - список бронирований (без пагинации: объём
// ограничен вместимостью поездки либо историей одного пассажира).
type InscriptionListDTO struct {
	Inscriptions []InscriptionDTO `json:"data"`
}
