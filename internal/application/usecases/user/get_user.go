package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// GetUserUseCase - чтение одного пользователя по ID.
type GetUserUseCase struct {
	userRepo ports.UserRepository
}

// NewGetUserUseCase создаёт новый use case.
func NewGetUserUseCase(userRepo ports.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute возвращает пользователя.
//
// Errors:
//   - USER_NOT_FOUND: пользователь не существует
func (uc *GetUserUseCase) Execute(ctx context.Context, query dtos.GetUserQuery) (*dtos.UserDTO, error) {
	id, err := uuid.Parse(query.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewUserNotFound(query.UserID)
	}

	dto := dtos.ToUserDTO(user)
	return &dto, nil
}
