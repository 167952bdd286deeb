// Package errors defines domain-specific error types.
// Using typed errors (instead of strings) allows clients to handle specific cases.
//
// SOLID Principles:
// - ISP: Clients can check for specific errors they care about
// - DIP: Error types are abstractions that don't depend on infrastructure
//
// Pattern: Sentinel Errors + Custom Error Types
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for domain validation
var (
	// Entity validation errors
	ErrInvalidEntityID     = errors.New("invalid entity ID")
	ErrEntityNotFound      = errors.New("entity not found")
	ErrEntityAlreadyExists = errors.New("entity already exists")

	// User errors
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidRole    = errors.New("invalid user role")
	ErrUserAnonymized = errors.New("user account is anonymized")
	ErrWeakPassword   = errors.New("password does not meet requirements")

	// Driver / Car errors
	ErrInvalidLicense   = errors.New("invalid driver license")
	ErrInvalidPlate     = errors.New("invalid car plate")
	ErrDriverAlreadySet = errors.New("user already has a driver profile")

	// Travel errors
	ErrInvalidSeatCount = errors.New("invalid seat count")
	ErrInvalidDistance  = errors.New("invalid trip distance")
	ErrTravelInPast     = errors.New("trip date is in the past")
	ErrSameCity         = errors.New("departure and arrival city must differ")

	// Inscription errors
	ErrInvalidInscriptionStatus = errors.New("invalid inscription status")
)

// Machine-readable error codes. The HTTP layer maps these to statuses;
// nothing below the adapters ever sees an HTTP status.
const (
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeTravelNotFound      = "TRAVEL_NOT_FOUND"
	CodeInscriptionNotFound = "INSCRIPTION_NOT_FOUND"
	CodeCityNotFound        = "CITY_NOT_FOUND"
	CodeCarNotFound         = "CAR_NOT_FOUND"
	CodeDriverNotFound      = "DRIVER_NOT_FOUND"
	CodeModelNotFound       = "MODEL_NOT_FOUND"
	CodeColorNotFound       = "COLOR_NOT_FOUND"
	CodeAlreadyInscribed    = "ALREADY_INSCRIBED"
	CodeNoSeatsAvailable    = "NO_SEATS_AVAILABLE"
	CodeEmailAlreadyExists  = "EMAIL_ALREADY_EXISTS"
	CodeCityAlreadyExists   = "CITY_ALREADY_EXISTS"
	CodePlateAlreadyExists  = "PLATE_ALREADY_EXISTS"
	CodeUserReferenced      = "USER_REFERENCED"
	CodeNotTravelDriver     = "NOT_TRAVEL_DRIVER"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeRepository          = "REPOSITORY_ERROR"
)

// DomainError is a custom error type that wraps errors with additional context.
// This allows us to add domain-specific information while maintaining the error chain.
//
// Pattern: Error Wrapping with Context
type DomainError struct {
	Code    string // Machine-readable error code (e.g., "NO_SEATS_AVAILABLE")
	Message string // Human-readable message
	Err     error  // Underlying error (for error chains)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Not-found constructors, one per entity kind. They all wrap
// ErrEntityNotFound so errors.Is keeps working across layers.

// NewUserNotFound returns a USER_NOT_FOUND domain error.
func NewUserNotFound(id string) *DomainError {
	return NewDomainError(CodeUserNotFound, fmt.Sprintf("user %s not found", id), ErrEntityNotFound)
}

// NewTravelNotFound returns a TRAVEL_NOT_FOUND domain error.
func NewTravelNotFound(id string) *DomainError {
	return NewDomainError(CodeTravelNotFound, fmt.Sprintf("travel %s not found", id), ErrEntityNotFound)
}

// NewInscriptionNotFound returns an INSCRIPTION_NOT_FOUND domain error.
func NewInscriptionNotFound(id string) *DomainError {
	return NewDomainError(CodeInscriptionNotFound, fmt.Sprintf("inscription %s not found", id), ErrEntityNotFound)
}

// NewCityNotFound returns a CITY_NOT_FOUND domain error.
func NewCityNotFound(id string) *DomainError {
	return NewDomainError(CodeCityNotFound, fmt.Sprintf("city %s not found", id), ErrEntityNotFound)
}

// NewCarNotFound returns a CAR_NOT_FOUND domain error.
func NewCarNotFound(id string) *DomainError {
	return NewDomainError(CodeCarNotFound, fmt.Sprintf("car %s not found", id), ErrEntityNotFound)
}

// NewDriverNotFound returns a DRIVER_NOT_FOUND domain error.
func NewDriverNotFound(id string) *DomainError {
	return NewDomainError(CodeDriverNotFound, fmt.Sprintf("driver %s not found", id), ErrEntityNotFound)
}

// NewModelNotFound returns a MODEL_NOT_FOUND domain error.
func NewModelNotFound(id string) *DomainError {
	return NewDomainError(CodeModelNotFound, fmt.Sprintf("car model %s not found", id), ErrEntityNotFound)
}

// NewColorNotFound returns a COLOR_NOT_FOUND domain error.
func NewColorNotFound(id string) *DomainError {
	return NewDomainError(CodeColorNotFound, fmt.Sprintf("color %s not found", id), ErrEntityNotFound)
}

// NewAlreadyInscribed returns an ALREADY_INSCRIBED conflict for a
// (user, travel) pair that already has an active inscription.
func NewAlreadyInscribed(userID, travelID string) *DomainError {
	return NewDomainError(
		CodeAlreadyInscribed,
		fmt.Sprintf("user %s already has an inscription for travel %s", userID, travelID),
		ErrEntityAlreadyExists,
	)
}

// NewNotTravelDriver returns a NOT_TRAVEL_DRIVER error when a user who
// is not the driver of a travel tries to manage its inscriptions.
func NewNotTravelDriver(travelID string) *DomainError {
	return NewDomainError(
		CodeNotTravelDriver,
		fmt.Sprintf("only the driver of travel %s can perform this action", travelID),
		nil,
	)
}

// NewNoSeatsAvailable returns a NO_SEATS_AVAILABLE error when a travel
// is fully booked. Pass seats <= 0 when the capacity is not known at the
// call site (e.g. the database trigger rejected the insert); the message
// then omits the capacity instead of reporting a bogus zero.
func NewNoSeatsAvailable(travelID string, seats int) *DomainError {
	msg := fmt.Sprintf("travel %s has no seats left", travelID)
	if seats > 0 {
		msg = fmt.Sprintf("%s (capacity %d)", msg, seats)
	}
	return NewDomainError(CodeNoSeatsAvailable, msg, nil)
}

// NewEmailAlreadyExists returns an EMAIL_ALREADY_EXISTS conflict.
func NewEmailAlreadyExists(email string) *DomainError {
	return NewDomainError(
		CodeEmailAlreadyExists,
		fmt.Sprintf("email %s is already registered", email),
		ErrEntityAlreadyExists,
	)
}

// NewCityAlreadyExists returns a CITY_ALREADY_EXISTS conflict.
func NewCityAlreadyExists(name string) *DomainError {
	return NewDomainError(
		CodeCityAlreadyExists,
		fmt.Sprintf("city %s already exists", name),
		ErrEntityAlreadyExists,
	)
}

// NewPlateAlreadyExists returns a PLATE_ALREADY_EXISTS conflict.
func NewPlateAlreadyExists(plate string) *DomainError {
	return NewDomainError(
		CodePlateAlreadyExists,
		fmt.Sprintf("car with plate %s already exists", plate),
		ErrEntityAlreadyExists,
	)
}

// NewUserReferenced returns a USER_REFERENCED conflict: the account
// still has travels or inscriptions and cannot be hard-deleted.
func NewUserReferenced(id string) *DomainError {
	return NewDomainError(
		CodeUserReferenced,
		fmt.Sprintf("user %s is still referenced by travels or inscriptions", id),
		nil,
	)
}

// NewInvalidCredentials returns an INVALID_CREDENTIALS error. The same
// error is returned for unknown email and wrong password so login
// attempts cannot probe which addresses exist.
func NewInvalidCredentials() *DomainError {
	return NewDomainError(CodeInvalidCredentials, "invalid email or password", nil)
}

// RepositoryError wraps failures coming from the persistence layer.
// The underlying cause is kept for logs only; callers route on the
// stable Code and never see the cause in API responses.
type RepositoryError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error wrapping cause.
func NewRepositoryError(message string, err error) *RepositoryError {
	return &RepositoryError{
		Code:    CodeRepository,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents validation failures with field-level details.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // What went wrong
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(e))
}

// Add appends a validation error.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Helper functions for common error checking

// IsNotFound checks if an error is an "entity not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}

// IsConflict checks if an error is an "already exists" conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEntityAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var valErr ValidationError
	var valErrs ValidationErrors
	return errors.As(err, &valErr) || errors.As(err, &valErrs)
}

// AsDomainError checks if an error is a DomainError and returns it.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsRepositoryError checks if an error is a RepositoryError.
func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}

// CodeOf returns the machine-readable code carried by err, or empty
// string when err carries none.
func CodeOf(err error) string {
	if de, ok := AsDomainError(err); ok {
		return de.Code
	}
	var re *RepositoryError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
