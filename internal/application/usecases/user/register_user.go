// Package user содержит use cases для управления аккаунтами.
//
// Pattern: Use Case (Interactor)
// - Один use case = один бизнес-сценарий
// - Зависит только от ports (Dependency Inversion)
package user

import (
	"context"
	"log/slog"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// RegisterUserUseCase - регистрация нового пользователя.
//
// Сценарий:
// 1. Проверить уникальность email
// 2. Захэшировать пароль (bcrypt за портом PasswordHasher)
// 3. Создать domain entity User (валидация внутри)
// 4. Сохранить
// 5. Отправить welcome-письмо (best-effort)
type RegisterUserUseCase struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	mailer   ports.Mailer
	logger   *slog.Logger
}

// NewRegisterUserUseCase создаёт новый use case.
func NewRegisterUserUseCase(
	userRepo ports.UserRepository,
	hasher ports.PasswordHasher,
	mailer ports.Mailer,
	logger *slog.Logger,
) *RegisterUserUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		mailer:   mailer,
		logger:   logger,
	}
}

// Execute регистрирует пользователя.
//
// Errors:
//   - EMAIL_ALREADY_EXISTS: email уже зарегистрирован
//   - validation errors из domain entity (email, имя)
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd dtos.RegisterUserCommand) (*dtos.UserRegisteredDTO, error) {
	// 1. Уникальность email. Гонка двух одновременных регистраций
	// закрывается UNIQUE-констрейнтом в БД; репозиторий вернёт тот же
	// EMAIL_ALREADY_EXISTS из Create.
	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewEmailAlreadyExists(cmd.Email)
	}

	// 2. Хэш пароля
	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}

	// 3. Entity с бизнес-валидацией
	user, err := entities.NewUser(cmd.Email, hash, cmd.FullName, cmd.Phone)
	if err != nil {
		return nil, err
	}

	// 4. Сохраняем
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// 5. Welcome-письмо. Сбой не проваливает регистрацию.
	if err := uc.mailer.SendWelcome(ctx, user.Email(), user.FullName()); err != nil {
		uc.logger.Warn("failed to send welcome email",
			slog.String("user_id", user.ID().String()),
			slog.String("error", err.Error()),
		)
	}

	uc.logger.Info("user registered", slog.String("user_id", user.ID().String()))

	return &dtos.UserRegisteredDTO{
		User:    dtos.ToUserDTO(user),
		Message: "Account created. Welcome aboard!",
	}, nil
}
