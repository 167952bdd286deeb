package dtos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadshare/roadshare/internal/domain/entities"
)

func TestToUserDTO(t *testing.T) {
	user, err := entities.NewUser("test@example.com", "$2a$10$hash", "Test User", "+33611223344")
	require.NoError(t, err)

	dto := ToUserDTO(user)

	assert.Equal(t, user.ID().String(), dto.ID)
	assert.Equal(t, "test@example.com", dto.Email)
	assert.Equal(t, "Test User", dto.FullName)
	assert.Equal(t, "+33611223344", dto.Phone)
	assert.Equal(t, "USER", dto.Role)
	assert.False(t, dto.Anonymized)
	assert.False(t, dto.CreatedAt.IsZero())
	assert.False(t, dto.UpdatedAt.IsZero())
}

func TestToUserDTO_Anonymized(t *testing.T) {
	user, err := entities.NewUser("gone@example.com", "$2a$10$hash", "Gone User", "")
	require.NoError(t, err)
	require.NoError(t, user.Anonymize())

	dto := ToUserDTO(user)

	assert.True(t, dto.Anonymized)
	assert.Empty(t, dto.FullName)
	assert.Empty(t, dto.Phone)
}

func TestToUserDTOList(t *testing.T) {
	user1, _ := entities.NewUser("user1@example.com", "$2a$10$hash", "User One", "")
	user2, _ := entities.NewUser("user2@example.com", "$2a$10$hash", "User Two", "")
	user3, _ := entities.NewUser("user3@example.com", "$2a$10$hash", "User Three", "")

	users := []*entities.User{user1, user2, user3}

	result := ToUserDTOList(users)

	assert.Len(t, result, 3)
	assert.Equal(t, "user1@example.com", result[0].Email)
	assert.Equal(t, "user2@example.com", result[1].Email)
	assert.Equal(t, "user3@example.com", result[2].Email)
}

func TestToUserDTOList_Empty(t *testing.T) {
	var users []*entities.User

	result := ToUserDTOList(users)

	assert.Len(t, result, 0)
	assert.NotNil(t, result)
}

func TestToTravelDTO(t *testing.T) {
	driverID := uuid.New()
	carID := uuid.New()
	departure := uuid.New()
	arrival := uuid.New()
	date := time.Now().UTC().Add(72 * time.Hour)

	travel, err := entities.NewTravel(driverID, carID, departure, arrival, date, 250, 3)
	require.NoError(t, err)

	dto := ToTravelDTO(travel)

	assert.Equal(t, travel.ID().String(), dto.ID)
	assert.Equal(t, driverID.String(), dto.DriverID)
	assert.Equal(t, carID.String(), dto.CarID)
	assert.Equal(t, departure.String(), dto.DepartureCityID)
	assert.Equal(t, arrival.String(), dto.ArrivalCityID)
	assert.Equal(t, 250, dto.Kms)
	assert.Equal(t, 3, dto.Seats)
	assert.True(t, dto.Date.Equal(date))
}

func TestToTravelDTOList(t *testing.T) {
	date := time.Now().UTC().Add(72 * time.Hour)
	t1, _ := entities.NewTravel(uuid.New(), uuid.New(), uuid.New(), uuid.New(), date, 100, 2)
	t2, _ := entities.NewTravel(uuid.New(), uuid.New(), uuid.New(), uuid.New(), date, 200, 4)

	result := ToTravelDTOList([]*entities.Travel{t1, t2})

	assert.Len(t, result, 2)
	assert.Equal(t, 100, result[0].Kms)
	assert.Equal(t, 200, result[1].Kms)
}

func TestToInscriptionDTO(t *testing.T) {
	userID := uuid.New()
	travelID := uuid.New()

	ins, err := entities.NewInscription(userID, travelID)
	require.NoError(t, err)

	dto := ToInscriptionDTO(ins)

	assert.Equal(t, ins.ID().String(), dto.ID)
	assert.Equal(t, userID.String(), dto.UserID)
	assert.Equal(t, travelID.String(), dto.TravelID)
	assert.Equal(t, "PENDING", dto.Status)
	assert.False(t, dto.CreatedAt.IsZero())
}

func TestToInscriptionDTO_Cancelled(t *testing.T) {
	ins, err := entities.NewInscription(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, ins.Cancel())

	dto := ToInscriptionDTO(ins)

	assert.Equal(t, "CANCELLED", dto.Status)
}

func TestToInscriptionDTOList_Empty(t *testing.T) {
	result := ToInscriptionDTOList(nil)

	assert.Len(t, result, 0)
	assert.NotNil(t, result)
}

func TestToCarDTO(t *testing.T) {
	driverID := uuid.New()
	modelID := uuid.New()
	colorID := uuid.New()

	car, err := entities.NewCar(driverID, modelID, colorID, "aa-123-bb", 4)
	require.NoError(t, err)

	dto := ToCarDTO(car)

	assert.Equal(t, car.ID().String(), dto.ID)
	assert.Equal(t, driverID.String(), dto.DriverID)
	assert.Equal(t, modelID.String(), dto.ModelID)
	assert.Equal(t, colorID.String(), dto.ColorID)
	assert.Equal(t, "AA-123-BB", dto.Plate)
	assert.Equal(t, 4, dto.Seats)
}

func TestToCityDTO(t *testing.T) {
	city, err := entities.NewCity("Lyon", "69000")
	require.NoError(t, err)

	dto := ToCityDTO(city)

	assert.Equal(t, city.ID().String(), dto.ID)
	assert.Equal(t, "Lyon", dto.Name)
	assert.Equal(t, "69000", dto.ZipCode)
}

func TestCatalogMappers(t *testing.T) {
	brand, err := entities.NewBrand("Renault")
	require.NoError(t, err)

	model, err := entities.NewModel(brand.ID(), "Clio")
	require.NoError(t, err)

	color, err := entities.NewColor("Blue")
	require.NoError(t, err)

	brandDTO := ToBrandDTO(brand)
	assert.Equal(t, brand.ID().String(), brandDTO.ID)
	assert.Equal(t, "Renault", brandDTO.Name)

	modelDTO := ToModelDTO(model)
	assert.Equal(t, model.ID().String(), modelDTO.ID)
	assert.Equal(t, brand.ID().String(), modelDTO.BrandID)
	assert.Equal(t, "Clio", modelDTO.Name)

	colorDTO := ToColorDTO(color)
	assert.Equal(t, "Blue", colorDTO.Name)

	assert.Len(t, ToBrandDTOList([]*entities.Brand{brand}), 1)
	assert.Len(t, ToModelDTOList([]*entities.Model{model}), 1)
	assert.Len(t, ToColorDTOList([]*entities.Color{color}), 1)
}

func TestNewListMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		wantPage   int
		wantLimit  int
		wantPages  int
	}{
		{"first page", 1, 20, 45, 1, 20, 3},
		{"exact fit", 2, 10, 30, 2, 10, 3},
		{"empty list", 1, 20, 0, 1, 20, 0},
		{"single item", 1, 20, 1, 1, 20, 1},
		{"zero page normalized", 0, 20, 10, 1, 20, 1},
		{"zero limit normalized", 1, 0, 10, 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewListMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.wantPage, meta.Page)
			assert.Equal(t, tt.wantLimit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}
