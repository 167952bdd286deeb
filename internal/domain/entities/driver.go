package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/errors"
)

// Driver is a capability record linking a User to a driving license.
// Created on demand when a user registers a car. At most one per user
// (enforced by a UNIQUE constraint on user_id).
type Driver struct {
	id        uuid.UUID
	userID    uuid.UUID
	license   string
	createdAt time.Time
}

// NewDriver creates a Driver profile for the given user.
func NewDriver(userID uuid.UUID, license string) (*Driver, error) {
	if userID == uuid.Nil {
		return nil, errors.ErrInvalidEntityID
	}

	license = strings.ToUpper(strings.TrimSpace(license))
	if len(license) < 5 {
		return nil, errors.ErrInvalidLicense
	}

	return &Driver{
		id:        uuid.New(),
		userID:    userID,
		license:   license,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructDriver rebuilds a Driver from persistence without validation.
func ReconstructDriver(id, userID uuid.UUID, license string, createdAt time.Time) *Driver {
	return &Driver{
		id:        id,
		userID:    userID,
		license:   license,
		createdAt: createdAt,
	}
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() uuid.UUID { return d.id }

// UserID returns the owning user's identifier.
func (d *Driver) UserID() uuid.UUID { return d.userID }

// License returns the normalized license string.
func (d *Driver) License() string { return d.license }

// CreatedAt returns the creation timestamp.
func (d *Driver) CreatedAt() time.Time { return d.createdAt }
