// Package entities contains domain entities with identity and lifecycle.
// Entities are mutable and compared by their ID, not by their attributes.
//
// SOLID Principles:
// - SRP: Each entity manages its own business rules
// - OCP: Can add new methods without modifying existing code
// - DIP: Doesn't depend on infrastructure (no DB, no HTTP)
package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/errors"
)

// Role represents the access level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid checks if the role is valid.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents a registered user of the carpooling platform.
// This is an Entity (has identity via ID, has lifecycle).
//
// Entity Pattern:
// - Has unique identity (ID)
// - Mutable state over time
// - Business logic encapsulated in methods
// - Self-validating (maintains invariants)
type User struct {
	id           uuid.UUID // Identity - never changes
	email        string
	passwordHash string
	fullName     string
	phone        string
	role         Role
	anonymizedAt *time.Time // GDPR soft delete marker, nil while active
	createdAt    time.Time
	updatedAt    time.Time
}

// Email validation regex (simplified - real systems use more complex validation)
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewUser creates a new User with validation.
// Factory function ensures all User instances satisfy business invariants.
//
// Business Rules:
// - Email must be valid format and unique (uniqueness checked by repository)
// - Password hash must already be computed (hashing is infrastructure)
// - Full name is required
// - New users start with role USER
func NewUser(email, passwordHash, fullName, phone string) (*User, error) {
	id := uuid.New()

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, errors.ErrInvalidEmail
	}

	if passwordHash == "" {
		return nil, errors.ErrWeakPassword
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, errors.ValidationError{Field: "full_name", Message: "full name is required"}
	}

	now := time.Now().UTC()

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		phone:        strings.TrimSpace(phone),
		role:         RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence without validation.
// Only the repository layer should call this.
func ReconstructUser(
	id uuid.UUID,
	email, passwordHash, fullName, phone string,
	role Role,
	anonymizedAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		phone:        phone,
		role:         role,
		anonymizedAt: anonymizedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the user's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Email returns the user's email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// FullName returns the user's full name.
func (u *User) FullName() string { return u.fullName }

// Phone returns the user's phone number.
func (u *User) Phone() string { return u.phone }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// AnonymizedAt returns the anonymization timestamp, nil while active.
func (u *User) AnonymizedAt() *time.Time { return u.anonymizedAt }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last modification timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsAnonymized reports whether the account went through GDPR anonymization.
func (u *User) IsAnonymized() bool {
	return u.anonymizedAt != nil
}

// UpdateProfile changes the user's full name and phone.
func (u *User) UpdateProfile(fullName, phone string) error {
	if u.IsAnonymized() {
		return errors.ErrUserAnonymized
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errors.ValidationError{Field: "full_name", Message: "full name is required"}
	}

	u.fullName = fullName
	u.phone = strings.TrimSpace(phone)
	u.updatedAt = time.Now().UTC()
	return nil
}

// PromoteToAdmin elevates the user to the ADMIN role.
func (u *User) PromoteToAdmin() error {
	if u.IsAnonymized() {
		return errors.ErrUserAnonymized
	}
	u.role = RoleAdmin
	u.updatedAt = time.Now().UTC()
	return nil
}

// Anonymize nulls all PII while keeping the row for referential
// integrity (inscriptions and travels still point at this user).
// The email is replaced with a non-routable unique address so the
// UNIQUE constraint keeps holding.
func (u *User) Anonymize() error {
	if u.IsAnonymized() {
		return errors.ErrUserAnonymized
	}

	now := time.Now().UTC()
	u.email = "anonymized+" + u.id.String() + "@invalid.local"
	u.passwordHash = ""
	u.fullName = ""
	u.phone = ""
	u.anonymizedAt = &now
	u.updatedAt = now
	return nil
}

// CanInscribe reports whether the user may book a trip.
// Anonymized accounts are treated as non-existent by business rules.
func (u *User) CanInscribe() bool {
	return !u.IsAnonymized()
}
