// Package inscription содержит use cases для бронирования мест в поездках.
//
// SOLID Principles:
// - SRP: Каждый use case отвечает за один сценарий
// - DIP: Зависит от интерфейсов (ports), не от конкретных реализаций
//
// Pattern: Use Case (Interactor)
package inscription

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// CreateInscriptionUseCase - use case бронирования места в поездке.
//
// Сценарий (строго последовательный, каждый шаг обрывает выполнение):
// 1. Разрешить пассажира (анонимизированный аккаунт = не найден)
// 2. Разрешить поездку
// 3. Проверить отсутствие активной инскрипции пары (user, travel)
// 4. Проверить наличие свободного места
// 5. Создать запись бронирования
//
// Шаги 3-4 - быстрые проверки для нормального потока; авторитетная
// защита от гонки двух запросов за последнее место - ограничения БД,
// которые repository.Create транслирует в те же доменные ошибки.
// Ошибки repository возвращаются без изменений: use case никогда не
// превращает инфраструктурную ошибку в доменную.
type CreateInscriptionUseCase struct {
	userRepo        ports.UserRepository
	travelRepo      ports.TravelRepository
	inscriptionRepo ports.InscriptionRepository
	mailer          ports.Mailer
	logger          *slog.Logger
}

// NewCreateInscriptionUseCase создаёт новый use case.
func NewCreateInscriptionUseCase(
	userRepo ports.UserRepository,
	travelRepo ports.TravelRepository,
	inscriptionRepo ports.InscriptionRepository,
	mailer ports.Mailer,
	logger *slog.Logger,
) *CreateInscriptionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateInscriptionUseCase{
		userRepo:        userRepo,
		travelRepo:      travelRepo,
		inscriptionRepo: inscriptionRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

// Execute выполняет бронирование.
//
// Errors:
//   - USER_NOT_FOUND: пассажир не существует или анонимизирован
//   - TRAVEL_NOT_FOUND: поездка не существует
//   - ALREADY_INSCRIBED: активная инскрипция пары уже есть
//   - NO_SEATS_AVAILABLE: мест не осталось
//   - RepositoryError: сбой хранилища (без изменений)
func (uc *CreateInscriptionUseCase) Execute(ctx context.Context, cmd dtos.CreateInscriptionCommand) (*dtos.InscriptionCreatedDTO, error) {
	userID, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}
	travelID, err := uuid.Parse(cmd.TravelID)
	if err != nil {
		return nil, errors.ValidationError{Field: "travel_id", Message: "must be a valid UUID"}
	}

	// 1. Разрешаем пассажира
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CanInscribe() {
		return nil, errors.NewUserNotFound(cmd.UserID)
	}

	// 2. Разрешаем поездку
	travel, err := uc.travelRepo.FindByID(ctx, travelID)
	if err != nil {
		return nil, err
	}
	if travel == nil {
		return nil, errors.NewTravelNotFound(cmd.TravelID)
	}

	// 3. Дубликат: активная инскрипция пары уже существует?
	exists, err := uc.inscriptionRepo.ExistsByUserAndTravel(ctx, userID, travelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewAlreadyInscribed(cmd.UserID, cmd.TravelID)
	}

	// 4. Вместимость: считаем активные инскрипции поездки
	count, err := uc.inscriptionRepo.CountActiveByTravel(ctx, travelID)
	if err != nil {
		return nil, err
	}
	if !travel.HasSeatLeft(count) {
		return nil, errors.NewNoSeatsAvailable(cmd.TravelID, travel.Seats())
	}

	// 5. Создаём запись. Ограничения БД могут вернуть ALREADY_INSCRIBED
	// или NO_SEATS_AVAILABLE, если кто-то успел раньше нас между
	// шагами 3-4 и этим insert - отдаём такие ошибки как есть.
	ins, err := entities.NewInscription(userID, travelID)
	if err != nil {
		return nil, err
	}

	if err := uc.inscriptionRepo.Create(ctx, ins); err != nil {
		return nil, err
	}

	// Письмо-подтверждение best-effort: сбой почты не отменяет бронь.
	if uc.mailer != nil {
		if err := uc.mailer.SendInscriptionConfirmation(ctx, user.Email(), user.FullName(), travel.ID().String()); err != nil {
			uc.logger.Warn("failed to send inscription confirmation email",
				"user_id", user.ID().String(),
				"travel_id", travel.ID().String(),
				"error", err,
			)
		}
	}

	return &dtos.InscriptionCreatedDTO{
		Inscription: dtos.ToInscriptionDTO(ins),
		Message:     "Seat reserved. The driver will confirm your inscription.",
	}, nil
}
