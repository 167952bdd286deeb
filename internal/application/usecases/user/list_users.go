package user

import (
	"context"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
)

// ListUsersUseCase - страница пользователей (admin-эндпоинт).
type ListUsersUseCase struct {
	userRepo ports.UserRepository
}

// NewListUsersUseCase создаёт новый use case.
func NewListUsersUseCase(userRepo ports.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute возвращает страницу пользователей с мета-информацией.
func (uc *ListUsersUseCase) Execute(ctx context.Context, query dtos.ListUsersQuery) (*dtos.UserListDTO, error) {
	p := ports.Pagination{Page: query.Page, Limit: query.Limit}.Normalize()

	users, total, err := uc.userRepo.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dtos.UserListDTO{
		Users: dtos.ToUserDTOList(users),
		Meta:  dtos.NewListMeta(p.Page, p.Limit, total),
	}, nil
}
