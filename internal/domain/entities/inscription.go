package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/errors"
)

// InscriptionStatus represents the lifecycle state of a booking.
type InscriptionStatus string

const (
	InscriptionStatusPending   InscriptionStatus = "PENDING"
	InscriptionStatusConfirmed InscriptionStatus = "CONFIRMED"
	InscriptionStatusCancelled InscriptionStatus = "CANCELLED"
)

// IsValid checks if the inscription status is valid.
func (s InscriptionStatus) IsValid() bool {
	switch s {
	case InscriptionStatusPending, InscriptionStatusConfirmed, InscriptionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status counts against seat capacity.
func (s InscriptionStatus) IsActive() bool {
	return s == InscriptionStatusPending || s == InscriptionStatusConfirmed
}

// Inscription is a passenger's booking on a travel: the many-to-many
// join between a User and a Travel.
//
// Invariants (enforced by the use case and by DB constraints):
// - At most one active inscription per (user, travel) pair
// - Active inscriptions for a travel never exceed the travel's seats
// - References only an existing user and an existing travel
type Inscription struct {
	id        uuid.UUID
	userID    uuid.UUID
	travelID  uuid.UUID
	status    InscriptionStatus
	createdAt time.Time
}

// NewInscription creates a pending Inscription for the pair.
// Existence of the user and travel is the use case's responsibility.
func NewInscription(userID, travelID uuid.UUID) (*Inscription, error) {
	if userID == uuid.Nil || travelID == uuid.Nil {
		return nil, errors.ErrInvalidEntityID
	}

	return &Inscription{
		id:        uuid.New(),
		userID:    userID,
		travelID:  travelID,
		status:    InscriptionStatusPending,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructInscription rebuilds an Inscription from persistence.
func ReconstructInscription(id, userID, travelID uuid.UUID, status InscriptionStatus, createdAt time.Time) *Inscription {
	return &Inscription{
		id:        id,
		userID:    userID,
		travelID:  travelID,
		status:    status,
		createdAt: createdAt,
	}
}

func (i *Inscription) ID() uuid.UUID             { return i.id }
func (i *Inscription) UserID() uuid.UUID         { return i.userID }
func (i *Inscription) TravelID() uuid.UUID       { return i.travelID }
func (i *Inscription) Status() InscriptionStatus { return i.status }
func (i *Inscription) CreatedAt() time.Time      { return i.createdAt }

// IsActive reports whether the inscription counts against capacity.
func (i *Inscription) IsActive() bool {
	return i.status.IsActive()
}

// Confirm moves a pending inscription to CONFIRMED.
func (i *Inscription) Confirm() error {
	if i.status != InscriptionStatusPending {
		return errors.ErrInvalidInscriptionStatus
	}
	i.status = InscriptionStatusConfirmed
	return nil
}

// Cancel releases the seat. Cancelling twice is an error.
func (i *Inscription) Cancel() error {
	if i.status == InscriptionStatusCancelled {
		return errors.ErrInvalidInscriptionStatus
	}
	i.status = InscriptionStatusCancelled
	return nil
}
