package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/ports"
	"github.com/roadshare/roadshare/internal/application/usecases/catalog"
	"github.com/roadshare/roadshare/internal/domain/entities"
)

type MockColorRepository struct {
	FindAllFunc func(ctx context.Context, p ports.Pagination) ([]*entities.Color, int, error)
}

func (m *MockColorRepository) Create(ctx context.Context, color *entities.Color) error { return nil }

func (m *MockColorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Color, error) {
	return nil, nil
}

func (m *MockColorRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Color, int, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, p)
	}
	return nil, 0, nil
}

type MockModelRepository struct {
	FindAllByBrandFunc func(ctx context.Context, brandID uuid.UUID) ([]*entities.Model, error)
}

func (m *MockModelRepository) Create(ctx context.Context, model *entities.Model) error { return nil }

func (m *MockModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Model, error) {
	return nil, nil
}

func (m *MockModelRepository) FindAllByBrand(ctx context.Context, brandID uuid.UUID) ([]*entities.Model, error) {
	if m.FindAllByBrandFunc != nil {
		return m.FindAllByBrandFunc(ctx, brandID)
	}
	return nil, nil
}

func (m *MockModelRepository) FindAll(ctx context.Context, p ports.Pagination) ([]*entities.Model, int, error) {
	return nil, 0, nil
}

// TestListColors_EmptyCatalog: пустой справочник - успешный ответ с
// пустым массивом и total=0 totalPages=0.
func TestListColors_EmptyCatalog(t *testing.T) {
	useCase := catalog.NewListColorsUseCase(&MockColorRepository{})

	result, err := useCase.Execute(context.Background(), dtos.ListCatalogQuery{})
	if err != nil {
		t.Fatalf("Expected no error for empty catalog, got %v", err)
	}

	if len(result.Colors) != 0 {
		t.Errorf("Expected empty data array, got %d items", len(result.Colors))
	}
	if result.Meta.Page != 1 || result.Meta.Limit != 20 {
		t.Errorf("Expected defaults page=1 limit=20, got %d/%d", result.Meta.Page, result.Meta.Limit)
	}
	if result.Meta.Total != 0 || result.Meta.TotalPages != 0 {
		t.Errorf("Expected total=0 totalPages=0, got %d/%d", result.Meta.Total, result.Meta.TotalPages)
	}
}

// TestListColors_Page тестирует обычную страницу справочника.
func TestListColors_Page(t *testing.T) {
	colors := []*entities.Color{
		entities.ReconstructColor(uuid.New(), "Red"),
		entities.ReconstructColor(uuid.New(), "Blue"),
	}
	repo := &MockColorRepository{
		FindAllFunc: func(ctx context.Context, p ports.Pagination) ([]*entities.Color, int, error) {
			return colors, 42, nil
		},
	}

	useCase := catalog.NewListColorsUseCase(repo)

	result, err := useCase.Execute(context.Background(), dtos.ListCatalogQuery{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Colors) != 2 {
		t.Errorf("Expected 2 colors, got %d", len(result.Colors))
	}
	if result.Meta.Total != 42 {
		t.Errorf("Expected total=42, got %d", result.Meta.Total)
	}
	if result.Meta.TotalPages != 21 {
		t.Errorf("Expected totalPages=21, got %d", result.Meta.TotalPages)
	}
}

// TestListModelsByBrand возвращает модели одной марки.
func TestListModelsByBrand(t *testing.T) {
	brandID := uuid.New()
	repo := &MockModelRepository{
		FindAllByBrandFunc: func(ctx context.Context, id uuid.UUID) ([]*entities.Model, error) {
			if id != brandID {
				t.Errorf("Expected brand %s, got %s", brandID, id)
			}
			return []*entities.Model{
				entities.ReconstructModel(uuid.New(), brandID, "Clio"),
				entities.ReconstructModel(uuid.New(), brandID, "Megane"),
			}, nil
		},
	}

	useCase := catalog.NewListModelsUseCase(repo)

	models, err := useCase.ExecuteByBrand(context.Background(), brandID.String())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(models) != 2 {
		t.Errorf("Expected 2 models, got %d", len(models))
	}
}
