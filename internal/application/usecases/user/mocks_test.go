package user_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/domain/entities"
)

// MockUserRepository - ручной мок с func-полями: каждый тест
// подставляет только нужное поведение.
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *entities.User) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*entities.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	FindAllFunc       func(ctx context.Context, p ports.Pagination) ([]*entities.User, int, error)
	UpdateFunc        func(ctx context.Context, user *entities.User) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	IsReferencedFunc  func(ctx context.Context, id uuid.UUID) (bool, error)

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.User, int, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, p)
	}
	return nil, 0, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.IsReferencedFunc != nil {
		return m.IsReferencedFunc(ctx, id)
	}
	return false, nil
}

// MockPasswordHasher - детерминированный "хэшер" для тестов.
type MockPasswordHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) error
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// MockTokenService выпускает фиксированный токен.
type MockTokenService struct {
	GenerateFunc func(claims ports.TokenClaims) (string, error)
	LastClaims   *ports.TokenClaims
}

func (m *MockTokenService) Generate(claims ports.TokenClaims) (string, error) {
	m.LastClaims = &claims
	if m.GenerateFunc != nil {
		return m.GenerateFunc(claims)
	}
	return "test-token", nil
}

func (m *MockTokenService) Validate(token string) (*ports.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

// MockMailer записывает отправленные письма.
type MockMailer struct {
	mu          sync.Mutex
	WelcomeSent []string
	FailWelcome error
}

func (m *MockMailer) SendWelcome(ctx context.Context, to, fullName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWelcome != nil {
		return m.FailWelcome
	}
	m.WelcomeSent = append(m.WelcomeSent, to)
	return nil
}

func (m *MockMailer) SendInscriptionConfirmation(ctx context.Context, to, fullName, travelID string) error {
	return nil
}
