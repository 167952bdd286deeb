package entities

import (
	"strings"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/errors"
)

// City is a name + zip code referenced by travels.
// The name acts as a practically-unique lookup key: uniqueness is
// checked by the use case, not enforced by the schema.
type City struct {
	id      uuid.UUID
	name    string
	zipCode string
}

// NewCity creates a City with a normalized name.
func NewCity(name, zipCode string) (*City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ValidationError{Field: "name", Message: "city name is required"}
	}

	zipCode = strings.TrimSpace(zipCode)
	if zipCode == "" {
		return nil, errors.ValidationError{Field: "zip_code", Message: "zip code is required"}
	}

	return &City{
		id:      uuid.New(),
		name:    name,
		zipCode: zipCode,
	}, nil
}

// ReconstructCity rebuilds a City from persistence.
func ReconstructCity(id uuid.UUID, name, zipCode string) *City {
	return &City{id: id, name: name, zipCode: zipCode}
}

func (c *City) ID() uuid.UUID   { return c.id }
func (c *City) Name() string    { return c.name }
func (c *City) ZipCode() string { return c.zipCode }
