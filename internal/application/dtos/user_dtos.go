package dtos

import "time"

// ============================================
// Commands (Write операции - изменяют состояние)
// ============================================

// RegisterUserCommand - команда для регистрации пользователя.
// Пароль приходит в открытом виде и хэшируется инфраструктурой
// внутри use case; в DTO ответа он не попадает никогда.
type RegisterUserCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone,omitempty"`
}

// LoginCommand - команда для входа.
type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AnonymizeUserCommand - команда GDPR-анонимизации аккаунта.
type AnonymizeUserCommand struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// DeleteUserCommand - команда жёсткого удаления аккаунта.
// Допустима только для аккаунтов без поездок и бронирований.
type DeleteUserCommand struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// ============================================
// Queries (Read операции - не изменяют состояние)
// ============================================

// GetUserQuery - запрос пользователя по ID.
type GetUserQuery struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// ListUsersQuery - запрос страницы пользователей.
type ListUsersQuery struct {
	Page  int `json:"page" validate:"min=0"`
	Limit int `json:"limit" validate:"min=0,max=100"`
}

// ============================================
// DTOs (ответы)
// ============================================

// UserDTO - представление пользователя для API.
type UserDTO struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	Anonymized bool      `json:"anonymized"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserRegisteredDTO - результат регистрации.
type UserRegisteredDTO struct {
	User    UserDTO `json:"user"`
	Message string  `json:"message"`
}

// LoggedInDTO - результат входа.
type LoggedInDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// UserListDTO - страница пользователей.
type UserListDTO struct {
	Users []UserDTO `json:"data"`
	Meta  ListMeta  `json:"meta"`
}
