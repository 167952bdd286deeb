package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/errors"
)

// Travel represents one published carpooling journey.
//
// Immutable once created except for deletion: there is no
// update-in-place, a driver cancels and republishes instead.
// Seats is the number of passenger seats offered, which bounds the
// count of active inscriptions for this travel.
type Travel struct {
	id            uuid.UUID
	driverID      uuid.UUID
	carID         uuid.UUID
	departureCity uuid.UUID
	arrivalCity   uuid.UUID
	date          time.Time
	kms           int
	seats         int
	createdAt     time.Time
}

// NewTravel creates a Travel with validation.
//
// Business Rules:
// - Departure and arrival cities must differ
// - Date must be in the future
// - Distance must be positive
// - Seats offered must be between 1 and 8
func NewTravel(driverID, carID, departureCity, arrivalCity uuid.UUID, date time.Time, kms, seats int) (*Travel, error) {
	if driverID == uuid.Nil || carID == uuid.Nil || departureCity == uuid.Nil || arrivalCity == uuid.Nil {
		return nil, errors.ErrInvalidEntityID
	}

	if departureCity == arrivalCity {
		return nil, errors.ErrSameCity
	}

	if date.Before(time.Now().UTC()) {
		return nil, errors.ErrTravelInPast
	}

	if kms <= 0 {
		return nil, errors.ErrInvalidDistance
	}

	if seats < 1 || seats > 8 {
		return nil, errors.ErrInvalidSeatCount
	}

	return &Travel{
		id:            uuid.New(),
		driverID:      driverID,
		carID:         carID,
		departureCity: departureCity,
		arrivalCity:   arrivalCity,
		date:          date.UTC(),
		kms:           kms,
		seats:         seats,
		createdAt:     time.Now().UTC(),
	}, nil
}

// ReconstructTravel rebuilds a Travel from persistence without validation.
func ReconstructTravel(
	id, driverID, carID, departureCity, arrivalCity uuid.UUID,
	date time.Time,
	kms, seats int,
	createdAt time.Time,
) *Travel {
	return &Travel{
		id:            id,
		driverID:      driverID,
		carID:         carID,
		departureCity: departureCity,
		arrivalCity:   arrivalCity,
		date:          date,
		kms:           kms,
		seats:         seats,
		createdAt:     createdAt,
	}
}

func (t *Travel) ID() uuid.UUID            { return t.id }
func (t *Travel) DriverID() uuid.UUID      { return t.driverID }
func (t *Travel) CarID() uuid.UUID         { return t.carID }
func (t *Travel) DepartureCity() uuid.UUID { return t.departureCity }
func (t *Travel) ArrivalCity() uuid.UUID   { return t.arrivalCity }
func (t *Travel) Date() time.Time          { return t.date }
func (t *Travel) Kms() int                 { return t.kms }
func (t *Travel) Seats() int               { return t.seats }
func (t *Travel) CreatedAt() time.Time     { return t.createdAt }

// HasSeatLeft reports whether one more inscription fits given the
// current count of active inscriptions.
func (t *Travel) HasSeatLeft(activeInscriptions int) bool {
	return activeInscriptions < t.seats
}
