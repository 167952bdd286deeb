package inscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// CancelInscriptionUseCase - отмена бронирования пассажиром.
// Отменённая инскрипция перестаёт считаться активной и освобождает
// место; запись остаётся в истории.
type CancelInscriptionUseCase struct {
	inscriptionRepo ports.InscriptionRepository
}

// NewCancelInscriptionUseCase создаёт новый use case.
func NewCancelInscriptionUseCase(inscriptionRepo ports.InscriptionRepository) *CancelInscriptionUseCase {
	return &CancelInscriptionUseCase{inscriptionRepo: inscriptionRepo}
}

// Execute отменяет бронирование.
//
// Errors:
//   - INSCRIPTION_NOT_FOUND: инскрипция не существует или принадлежит
//     другому пользователю (не раскрываем чужие инскрипции)
//   - ErrInvalidInscriptionStatus: уже отменена
func (uc *CancelInscriptionUseCase) Execute(ctx context.Context, cmd dtos.CancelInscriptionCommand) (*dtos.InscriptionDTO, error) {
	insID, err := uuid.Parse(cmd.InscriptionID)
	if err != nil {
		return nil, errors.ValidationError{Field: "inscription_id", Message: "must be a valid UUID"}
	}
	userID, err := uuid.Parse(cmd.UserID)
	if err != nil {
		return nil, errors.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}

	ins, err := uc.inscriptionRepo.FindByID(ctx, insID)
	if err != nil {
		return nil, err
	}
	if ins == nil || ins.UserID() != userID {
		return nil, errors.NewInscriptionNotFound(cmd.InscriptionID)
	}

	if err := ins.Cancel(); err != nil {
		return nil, err
	}

	if err := uc.inscriptionRepo.Update(ctx, ins); err != nil {
		return nil, err
	}

	dto := dtos.ToInscriptionDTO(ins)
	return &dto, nil
}
