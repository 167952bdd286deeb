package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// DeleteUserUseCase - жёсткое удаление аккаунта.
//
// Допустимо только когда на пользователя ничего не ссылается: нет ни
// поездок (через Driver профиль), ни инскрипций. Для аккаунтов с
// историей используется анонимизация.
type DeleteUserUseCase struct {
	userRepo ports.UserRepository
	logger   *slog.Logger
}

// NewDeleteUserUseCase создаёт новый use case.
func NewDeleteUserUseCase(userRepo ports.UserRepository, logger *slog.Logger) *DeleteUserUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute удаляет аккаунт без истории.
//
// Errors:
//   - USER_NOT_FOUND: пользователь не существует
//   - USER_REFERENCED: на аккаунт ссылаются поездки или инскрипции
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd dtos.DeleteUserCommand) error {
	id, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NewUserNotFound(cmd.UserID)
	}

	referenced, err := uc.userRepo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return errors.NewUserReferenced(cmd.UserID)
	}

	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("user deleted", slog.String("user_id", cmd.UserID))
	return nil
}
