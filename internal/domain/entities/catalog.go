package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/errors"
)

// Brand is a car manufacturer (reference data).
type Brand struct {
	id   uuid.UUID
	name string
}

// NewBrand creates a Brand with a non-empty name.
func NewBrand(name string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ValidationError{Field: "name", Message: "brand name is required"}
	}
	return &Brand{id: uuid.New(), name: name}, nil
}

// ReconstructBrand rebuilds a Brand from persistence.
func ReconstructBrand(id uuid.UUID, name string) *Brand {
	return &Brand{id: id, name: name}
}

func (b *Brand) ID() uuid.UUID { return b.id }
func (b *Brand) Name() string  { return b.name }

// Model is a car model belonging to a Brand (reference data).
type Model struct {
	id      uuid.UUID
	brandID uuid.UUID
	name    string
}

// NewModel creates a Model under the given brand.
func NewModel(brandID uuid.UUID, name string) (*Model, error) {
	if brandID == uuid.Nil {
		return nil, errors.ErrInvalidEntityID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ValidationError{Field: "name", Message: "model name is required"}
	}
	return &Model{id: uuid.New(), brandID: brandID, name: name}, nil
}

// ReconstructModel rebuilds a Model from persistence.
func ReconstructModel(id, brandID uuid.UUID, name string) *Model {
	return &Model{id: id, brandID: brandID, name: name}
}

func (m *Model) ID() uuid.UUID      { return m.id }
func (m *Model) BrandID() uuid.UUID { return m.brandID }
func (m *Model) Name() string       { return m.name }

// Color is a car color (reference data).
type Color struct {
	id   uuid.UUID
	name string
}

// NewColor creates a Color with a non-empty name.
func NewColor(name string) (*Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ValidationError{Field: "name", Message: "color name is required"}
	}
	return &Color{id: uuid.New(), name: name}, nil
}

// ReconstructColor rebuilds a Color from persistence.
func ReconstructColor(id uuid.UUID, name string) *Color {
	return &Color{id: id, name: name}
}

func (c *Color) ID() uuid.UUID { return c.id }
func (c *Color) Name() string  { return c.name }

// Car is a vehicle with a unique plate, owned by a Driver and built
// from the Brand/Model/Color reference data.
type Car struct {
	id        uuid.UUID
	driverID  uuid.UUID
	modelID   uuid.UUID
	colorID   uuid.UUID
	plate     string
	seats     int
	createdAt time.Time
}

// NewCar creates a Car with a normalized plate.
//
// Business Rules:
// - Plate is uppercased and must be at least 4 characters
// - Seats is the physical seat count of the vehicle (1..8)
func NewCar(driverID, modelID, colorID uuid.UUID, plate string, seats int) (*Car, error) {
	if driverID == uuid.Nil || modelID == uuid.Nil || colorID == uuid.Nil {
		return nil, errors.ErrInvalidEntityID
	}

	plate = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
	if len(plate) < 4 {
		return nil, errors.ErrInvalidPlate
	}

	if seats < 1 || seats > 8 {
		return nil, errors.ErrInvalidSeatCount
	}

	return &Car{
		id:        uuid.New(),
		driverID:  driverID,
		modelID:   modelID,
		colorID:   colorID,
		plate:     plate,
		seats:     seats,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructCar rebuilds a Car from persistence without validation.
func ReconstructCar(id, driverID, modelID, colorID uuid.UUID, plate string, seats int, createdAt time.Time) *Car {
	return &Car{
		id:        id,
		driverID:  driverID,
		modelID:   modelID,
		colorID:   colorID,
		plate:     plate,
		seats:     seats,
		createdAt: createdAt,
	}
}

func (c *Car) ID() uuid.UUID        { return c.id }
func (c *Car) DriverID() uuid.UUID  { return c.driverID }
func (c *Car) ModelID() uuid.UUID   { return c.modelID }
func (c *Car) ColorID() uuid.UUID   { return c.colorID }
func (c *Car) Plate() string        { return c.plate }
func (c *Car) Seats() int           { return c.seats }
func (c *Car) CreatedAt() time.Time { return c.createdAt }
