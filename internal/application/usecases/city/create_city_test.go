package city_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/application/usecases/city"
	"github.com/roadshare/roadshare/internal/domain/entities"
	domainErrors "github.com/roadshare/roadshare/internal/domain/errors"
)

type MockCityRepository struct {
	CreateFunc     func(ctx context.Context, c *entities.City) error
	FindByNameFunc func(ctx context.Context, name string) (*entities.City, error)
	FindAllFunc    func(ctx context.Context, p ports.Pagination) ([]*entities.City, int, error)
	CreateCalls    int
}

func (m *MockCityRepository) Create(ctx context.Context, c *entities.City) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	return nil, nil
}

func (m *MockCityRepository) FindByName(ctx context.Context, name string) (*entities.City, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockCityRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.City, int, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, p)
	}
	return nil, 0, nil
}

func (m *MockCityRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// TestCreateCity_Success тестирует добавление города.
func TestCreateCity_Success(t *testing.T) {
	repo := &MockCityRepository{}
	useCase := city.NewCreateCityUseCase(repo)

	result, err := useCase.Execute(context.Background(), dtos.CreateCityCommand{
		Name:    "Toulouse",
		ZipCode: "31000",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Name != "Toulouse" || result.ZipCode != "31000" {
		t.Errorf("Unexpected DTO: %+v", result)
	}
	if repo.CreateCalls != 1 {
		t.Errorf("Expected 1 Create call, got %d", repo.CreateCalls)
	}
}

// TestCreateCity_Duplicate тестирует конфликт имени.
func TestCreateCity_Duplicate(t *testing.T) {
	existing, err := entities.NewCity("Toulouse", "31000")
	if err != nil {
		t.Fatalf("failed to create city: %v", err)
	}
	repo := &MockCityRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*entities.City, error) {
			return existing, nil
		},
	}

	useCase := city.NewCreateCityUseCase(repo)

	_, err = useCase.Execute(context.Background(), dtos.CreateCityCommand{
		Name:    "Toulouse",
		ZipCode: "31000",
	})

	if domainErrors.CodeOf(err) != domainErrors.CodeCityAlreadyExists {
		t.Fatalf("Expected CITY_ALREADY_EXISTS, got %v", err)
	}
	if repo.CreateCalls != 0 {
		t.Errorf("Expected no Create call, got %d", repo.CreateCalls)
	}
}

// TestListCities_Meta проверяет расчёт страниц.
func TestListCities_Meta(t *testing.T) {
	repo := &MockCityRepository{
		FindAllFunc: func(ctx context.Context, p ports.Pagination) ([]*entities.City, int, error) {
			return []*entities.City{entities.ReconstructCity(uuid.New(), "Paris", "75000")}, 41, nil
		},
	}

	useCase := city.NewListCitiesUseCase(repo)

	result, err := useCase.Execute(context.Background(), dtos.ListCitiesQuery{Page: 3, Limit: 20})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Meta.Page != 3 || result.Meta.TotalPages != 3 {
		t.Errorf("Expected page=3 totalPages=3, got %d/%d", result.Meta.Page, result.Meta.TotalPages)
	}
}
