package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// AnonymizeUserUseCase - GDPR-анонимизация аккаунта.
//
// Вместо физического удаления PII затирается плейсхолдерами: история
// поездок и бронирований сохраняет ссылочную целостность, но больше
// не указывает на человека. Операция необратима и идемпотентна.
type AnonymizeUserUseCase struct {
	userRepo ports.UserRepository
	logger   *slog.Logger
}

// NewAnonymizeUserUseCase создаёт новый use case.
func NewAnonymizeUserUseCase(userRepo ports.UserRepository, logger *slog.Logger) *AnonymizeUserUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnonymizeUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute анонимизирует аккаунт.
//
// Errors:
//   - USER_NOT_FOUND: пользователь не существует
func (uc *AnonymizeUserUseCase) Execute(ctx context.Context, cmd dtos.AnonymizeUserCommand) (*dtos.UserDTO, error) {
	id, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewUserNotFound(cmd.UserID)
	}

	// Повторный вызов - no-op: возвращаем текущее состояние без записи.
	if user.IsAnonymized() {
		dto := dtos.ToUserDTO(user)
		return &dto, nil
	}

	if err := user.Anonymize(); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user anonymized", slog.String("user_id", cmd.UserID))

	dto := dtos.ToUserDTO(user)
	return &dto, nil
}
