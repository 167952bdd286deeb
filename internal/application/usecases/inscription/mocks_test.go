// Package inscription_test - mocks (test doubles) для тестов бронирования.
//
// Pattern: Test Doubles (Mocks, Stubs)
package inscription_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
	"github.com/roadshare/roadshare/internal/domain/errors"
)

// MockUserRepository - mock реализация UserRepository для тестов.
type MockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error { return nil }

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.User, int, error) {
	return nil, 0, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error { return nil }
func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (m *MockUserRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

// MockTravelRepository - mock реализация TravelRepository для тестов.
type MockTravelRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entities.Travel, error)
	Calls        int // сколько раз звали FindByID
}

func (m *MockTravelRepository) Create(ctx context.Context, travel *entities.Travel) error {
	return nil
}

func (m *MockTravelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Travel, error) {
	m.Calls++
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTravelRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Travel, int, error) {
	return nil, 0, nil
}

func (m *MockTravelRepository) FindAllByDriver(ctx context.Context, driverID uuid.UUID) ([]*entities.Travel, error) {
	return nil, nil
}

func (m *MockTravelRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// MockDriverRepository - mock реализация DriverRepository для тестов.
type MockDriverRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*entities.Driver, error)
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	return nil
}

func (m *MockDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	return nil, nil
}

func (m *MockDriverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Driver, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// MockInscriptionRepository - mock реализация InscriptionRepository.
type MockInscriptionRepository struct {
	ExistsByUserAndTravelFunc func(ctx context.Context, userID, travelID uuid.UUID) (bool, error)
	CountActiveByTravelFunc   func(ctx context.Context, travelID uuid.UUID) (int, error)
	CreateFunc                func(ctx context.Context, ins *entities.Inscription) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*entities.Inscription, error)
	UpdateFunc                func(ctx context.Context, ins *entities.Inscription) error

	CreateCalls int
}

func (m *MockInscriptionRepository) Create(ctx context.Context, ins *entities.Inscription) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ins)
	}
	return nil
}

func (m *MockInscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Inscription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockInscriptionRepository) ExistsByUserAndTravel(ctx context.Context, userID, travelID uuid.UUID) (bool, error) {
	if m.ExistsByUserAndTravelFunc != nil {
		return m.ExistsByUserAndTravelFunc(ctx, userID, travelID)
	}
	return false, nil
}

func (m *MockInscriptionRepository) CountActiveByTravel(ctx context.Context, travelID uuid.UUID) (int, error) {
	if m.CountActiveByTravelFunc != nil {
		return m.CountActiveByTravelFunc(ctx, travelID)
	}
	return 0, nil
}

func (m *MockInscriptionRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Inscription, error) {
	return nil, nil
}

func (m *MockInscriptionRepository) FindAllByTravel(ctx context.Context, travelID uuid.UUID) ([]*entities.Inscription, error) {
	return nil, nil
}

func (m *MockInscriptionRepository) Update(ctx context.Context, ins *entities.Inscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ins)
	}
	return nil
}

func (m *MockInscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// MockMailer - mock для Mailer.
type MockMailer struct {
	ConfirmationFunc func(ctx context.Context, to, fullName, travelID string) error
	Sent             []string // адреса, на которые ушли письма
	mu               sync.Mutex
}

func (m *MockMailer) SendWelcome(ctx context.Context, to, fullName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, to)
	return nil
}

func (m *MockMailer) SendInscriptionConfirmation(ctx context.Context, to, fullName, travelID string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, to)
	m.mu.Unlock()
	if m.ConfirmationFunc != nil {
		return m.ConfirmationFunc(ctx, to, fullName, travelID)
	}
	return nil
}

// ============================================
// In-memory repository, повторяющий ограничения БД
// ============================================

// ConstraintInscriptionRepository - in-memory реализация, которая как
// и настоящая схема атомарно держит уникальность пары и вместимость.
// Нужна для конкурентного теста: обычные mock'и не могут воспроизвести
// гонку за последнее место.
type ConstraintInscriptionRepository struct {
	mu       sync.Mutex
	seats    int
	byPair   map[[2]uuid.UUID]*entities.Inscription
	byID     map[uuid.UUID]*entities.Inscription
	travelID uuid.UUID
}

// NewConstraintInscriptionRepository создаёт репозиторий для поездки
// с заданной вместимостью.
func NewConstraintInscriptionRepository(travelID uuid.UUID, seats int) *ConstraintInscriptionRepository {
	return &ConstraintInscriptionRepository{
		seats:    seats,
		byPair:   make(map[[2]uuid.UUID]*entities.Inscription),
		byID:     make(map[uuid.UUID]*entities.Inscription),
		travelID: travelID,
	}
}

func (r *ConstraintInscriptionRepository) Create(ctx context.Context, ins *entities.Inscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pair := [2]uuid.UUID{ins.UserID(), ins.TravelID()}
	if _, ok := r.byPair[pair]; ok {
		// UNIQUE (user_id, travel_id)
		return errors.NewAlreadyInscribed(ins.UserID().String(), ins.TravelID().String())
	}

	active := 0
	for _, existing := range r.byID {
		if existing.TravelID() == ins.TravelID() && existing.IsActive() {
			active++
		}
	}
	if active >= r.seats {
		// Триггер вместимости
		return errors.NewNoSeatsAvailable(ins.TravelID().String(), r.seats)
	}

	r.byPair[pair] = ins
	r.byID[ins.ID()] = ins
	return nil
}

func (r *ConstraintInscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Inscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *ConstraintInscriptionRepository) ExistsByUserAndTravel(ctx context.Context, userID, travelID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ins, ok := r.byPair[[2]uuid.UUID{userID, travelID}]
	return ok && ins.IsActive(), nil
}

func (r *ConstraintInscriptionRepository) CountActiveByTravel(ctx context.Context, travelID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, ins := range r.byID {
		if ins.TravelID() == travelID && ins.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *ConstraintInscriptionRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Inscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Inscription
	for _, ins := range r.byID {
		if ins.UserID() == userID {
			result = append(result, ins)
		}
	}
	return result, nil
}

func (r *ConstraintInscriptionRepository) FindAllByTravel(ctx context.Context, travelID uuid.UUID) ([]*entities.Inscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entities.Inscription
	for _, ins := range r.byID {
		if ins.TravelID() == travelID {
			result = append(result, ins)
		}
	}
	return result, nil
}

func (r *ConstraintInscriptionRepository) Update(ctx context.Context, ins *entities.Inscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[ins.ID()] = ins
	if !ins.IsActive() {
		delete(r.byPair, [2]uuid.UUID{ins.UserID(), ins.TravelID()})
	}
	return nil
}

func (r *ConstraintInscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ins, ok := r.byID[id]; ok {
		delete(r.byPair, [2]uuid.UUID{ins.UserID(), ins.TravelID()})
		delete(r.byID, id)
	}
	return nil
}
