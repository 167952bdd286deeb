package user

import (
	"context"
	"log/slog"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// LoginUseCase - вход по email и паролю, выпуск JWT.
type LoginUseCase struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	logger   *slog.Logger
}

// NewLoginUseCase создаёт новый use case.
func NewLoginUseCase(
	userRepo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger *slog.Logger,
) *LoginUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute проверяет учётные данные и возвращает токен доступа.
//
// Errors:
//   - INVALID_CREDENTIALS: неизвестный email, неверный пароль или
//     анонимизированный аккаунт (не различаем намеренно)
func (uc *LoginUseCase) Execute(ctx context.Context, cmd dtos.LoginCommand) (*dtos.LoggedInDTO, error) {
	user, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsAnonymized() {
		return nil, errors.NewInvalidCredentials()
	}

	if err := uc.hasher.Compare(user.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warn("failed login attempt", slog.String("email", cmd.Email))
		return nil, errors.NewInvalidCredentials()
	}

	token, err := uc.tokens.Generate(ports.TokenClaims{
		UserID: user.ID().String(),
		Email:  user.Email(),
		Role:   string(user.Role()),
	})
	if err != nil {
		return nil, err
	}

	return &dtos.LoggedInDTO{
		User:  dtos.ToUserDTO(user),
		Token: token,
	}, nil
}
