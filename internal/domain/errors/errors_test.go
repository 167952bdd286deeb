package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestSentinelErrors tests that all sentinel errors are defined
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidEntityID", ErrInvalidEntityID},
		{"ErrEntityNotFound", ErrEntityNotFound},
		{"ErrEntityAlreadyExists", ErrEntityAlreadyExists},
		{"ErrInvalidEmail", ErrInvalidEmail},
		{"ErrInvalidRole", ErrInvalidRole},
		{"ErrUserAnonymized", ErrUserAnonymized},
		{"ErrWeakPassword", ErrWeakPassword},
		{"ErrInvalidLicense", ErrInvalidLicense},
		{"ErrInvalidPlate", ErrInvalidPlate},
		{"ErrDriverAlreadySet", ErrDriverAlreadySet},
		{"ErrInvalidSeatCount", ErrInvalidSeatCount},
		{"ErrInvalidDistance", ErrInvalidDistance},
		{"ErrTravelInPast", ErrTravelInPast},
		{"ErrSameCity", ErrSameCity},
		{"ErrInvalidInscriptionStatus", ErrInvalidInscriptionStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Errorf("%s should not be nil", tt.name)
			}
			if tt.err.Error() == "" {
				t.Errorf("%s should have an error message", tt.name)
			}
		})
	}
}

// TestDomainError_Error tests DomainError error message formatting
func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		contains []string
	}{
		{
			name: "Error with underlying error",
			err: &DomainError{
				Code:    "TEST_ERROR",
				Message: "Test message",
				Err:     errors.New("underlying error"),
			},
			contains: []string{"TEST_ERROR", "Test message", "underlying error"},
		},
		{
			name: "Error without underlying error",
			err: &DomainError{
				Code:    "TEST_ERROR",
				Message: "Test message",
				Err:     nil,
			},
			contains: []string{"TEST_ERROR", "Test message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Error message %q should contain %q", errMsg, substr)
				}
			}
		})
	}
}

// TestDomainError_Unwrap tests error unwrapping
func TestDomainError_Unwrap(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	domainErr := &DomainError{
		Code:    "TEST",
		Message: "Test",
		Err:     underlyingErr,
	}

	if unwrapped := domainErr.Unwrap(); unwrapped != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlyingErr)
	}

	nilErr := &DomainError{Code: "TEST", Message: "Test"}
	if unwrapped := nilErr.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

// TestNewDomainError tests DomainError creation
func TestNewDomainError(t *testing.T) {
	underlyingErr := errors.New("test error")
	domainErr := NewDomainError("TEST_CODE", "Test message", underlyingErr)

	if domainErr.Code != "TEST_CODE" {
		t.Errorf("Code = %q, want %q", domainErr.Code, "TEST_CODE")
	}

	if domainErr.Message != "Test message" {
		t.Errorf("Message = %q, want %q", domainErr.Message, "Test message")
	}

	if domainErr.Err != underlyingErr {
		t.Errorf("Err = %v, want %v", domainErr.Err, underlyingErr)
	}
}

// TestNotFoundConstructors tests the per-entity not-found constructors.
// All of them must wrap ErrEntityNotFound so IsNotFound keeps working.
func TestNotFoundConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		code string
	}{
		{"user", NewUserNotFound("u-1"), CodeUserNotFound},
		{"travel", NewTravelNotFound("t-1"), CodeTravelNotFound},
		{"inscription", NewInscriptionNotFound("i-1"), CodeInscriptionNotFound},
		{"city", NewCityNotFound("c-1"), CodeCityNotFound},
		{"car", NewCarNotFound("car-1"), CodeCarNotFound},
		{"driver", NewDriverNotFound("d-1"), CodeDriverNotFound},
		{"model", NewModelNotFound("m-1"), CodeModelNotFound},
		{"color", NewColorNotFound("col-1"), CodeColorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if !IsNotFound(tt.err) {
				t.Error("IsNotFound should be true")
			}
		})
	}
}

// TestConflictConstructors tests conflict constructors wrap ErrEntityAlreadyExists.
func TestConflictConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		code string
	}{
		{"inscribed", NewAlreadyInscribed("u-1", "t-1"), CodeAlreadyInscribed},
		{"email", NewEmailAlreadyExists("user@example.com"), CodeEmailAlreadyExists},
		{"city", NewCityAlreadyExists("Lyon"), CodeCityAlreadyExists},
		{"plate", NewPlateAlreadyExists("AA-123-BB"), CodePlateAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if !IsConflict(tt.err) {
				t.Error("IsConflict should be true")
			}
		})
	}
}

// TestNewNoSeatsAvailable tests the fully-booked error.
func TestNewNoSeatsAvailable(t *testing.T) {
	err := NewNoSeatsAvailable("t-1", 3)

	if err.Code != CodeNoSeatsAvailable {
		t.Errorf("Code = %q, want %q", err.Code, CodeNoSeatsAvailable)
	}
	if !strings.Contains(err.Error(), "t-1") || !strings.Contains(err.Error(), "3") {
		t.Errorf("Error() = %q, should mention travel id and capacity", err.Error())
	}
	// Being fully booked is not a not-found and not a conflict
	if IsNotFound(err) || IsConflict(err) {
		t.Error("NO_SEATS_AVAILABLE should be neither not-found nor conflict")
	}
}

// TestNewNoSeatsAvailable_UnknownCapacity tests that the trigger-rejection
// path, where the repository does not know the capacity, produces a message
// without a capacity figure instead of claiming "capacity 0".
func TestNewNoSeatsAvailable_UnknownCapacity(t *testing.T) {
	err := NewNoSeatsAvailable("t-1", 0)

	if err.Code != CodeNoSeatsAvailable {
		t.Errorf("Code = %q, want %q", err.Code, CodeNoSeatsAvailable)
	}
	if !strings.Contains(err.Error(), "t-1") {
		t.Errorf("Error() = %q, should mention travel id", err.Error())
	}
	if strings.Contains(err.Error(), "capacity") {
		t.Errorf("Error() = %q, should not report a capacity it does not know", err.Error())
	}
}

// TestNewInvalidCredentials tests the login failure error carries no detail.
func TestNewInvalidCredentials(t *testing.T) {
	err := NewInvalidCredentials()

	if err.Code != CodeInvalidCredentials {
		t.Errorf("Code = %q, want %q", err.Code, CodeInvalidCredentials)
	}
	// Same message for unknown email and wrong password
	if strings.Contains(err.Message, "email not found") || strings.Contains(err.Message, "wrong password") {
		t.Error("Message must not reveal which credential failed")
	}
}

// TestRepositoryError tests wrapping of persistence failures.
func TestRepositoryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewRepositoryError("query users", cause)

	if err.Code != CodeRepository {
		t.Errorf("Code = %q, want %q", err.Code, CodeRepository)
	}
	if !strings.Contains(err.Error(), "query users") || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, should contain message and cause", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
	if !IsRepositoryError(err) {
		t.Error("IsRepositoryError should be true")
	}
	if IsRepositoryError(errors.New("other")) {
		t.Error("IsRepositoryError should be false for plain errors")
	}
}

// TestValidationError_Error tests ValidationError error message
func TestValidationError_Error(t *testing.T) {
	valErr := ValidationError{
		Field:   "email",
		Message: "invalid format",
	}

	errMsg := valErr.Error()
	if !strings.Contains(errMsg, "email") || !strings.Contains(errMsg, "invalid format") {
		t.Errorf("Error() = %q, should contain field and message", errMsg)
	}
}

// TestValidationErrors_Error tests ValidationErrors error message
func TestValidationErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   ValidationErrors
		contains string
	}{
		{
			name:     "Empty validation errors",
			errors:   ValidationErrors{},
			contains: "validation failed",
		},
		{
			name: "Single validation error",
			errors: ValidationErrors{
				{Field: "email", Message: "invalid"},
			},
			contains: "1 error",
		},
		{
			name: "Multiple validation errors",
			errors: ValidationErrors{
				{Field: "email", Message: "invalid"},
				{Field: "name", Message: "required"},
			},
			contains: "2 error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.errors.Error()
			if !strings.Contains(errMsg, tt.contains) {
				t.Errorf("Error() = %q, should contain %q", errMsg, tt.contains)
			}
		})
	}
}

// TestValidationErrors_Add tests adding validation errors
func TestValidationErrors_Add(t *testing.T) {
	var errs ValidationErrors

	errs.Add("email", "invalid format")
	errs.Add("full_name", "required")

	if len(errs) != 2 {
		t.Errorf("len(errs) = %d, want 2", len(errs))
	}

	if errs[0].Field != "email" {
		t.Errorf("First error field = %q, want %q", errs[0].Field, "email")
	}

	if errs[1].Field != "full_name" {
		t.Errorf("Second error field = %q, want %q", errs[1].Field, "full_name")
	}
}

// TestValidationErrors_HasErrors tests error detection
func TestValidationErrors_HasErrors(t *testing.T) {
	tests := []struct {
		name     string
		errors   ValidationErrors
		expected bool
	}{
		{"Empty errors", ValidationErrors{}, false},
		{"With errors", ValidationErrors{{Field: "test", Message: "error"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errors.HasErrors(); got != tt.expected {
				t.Errorf("HasErrors() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestIsNotFound tests IsNotFound helper
func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Sentinel ErrEntityNotFound", ErrEntityNotFound, true},
		{"Wrapped ErrEntityNotFound", NewDomainError("NOT_FOUND", "Not found", ErrEntityNotFound), true},
		{"Different error", errors.New("other error"), false},
		{"Nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.expected {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestIsValidationError tests IsValidationError helper
func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ValidationError", ValidationError{Field: "test", Message: "error"}, true},
		{"ValidationErrors", ValidationErrors{{Field: "test", Message: "error"}}, true},
		{"Different error", errors.New("other error"), false},
		{"Nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.expected {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestAsDomainError tests DomainError extraction
func TestAsDomainError(t *testing.T) {
	de, ok := AsDomainError(NewNoSeatsAvailable("t-1", 2))
	if !ok {
		t.Fatal("AsDomainError should succeed for a DomainError")
	}
	if de.Code != CodeNoSeatsAvailable {
		t.Errorf("Code = %q, want %q", de.Code, CodeNoSeatsAvailable)
	}

	if _, ok := AsDomainError(errors.New("plain")); ok {
		t.Error("AsDomainError should fail for plain errors")
	}
}

// TestCodeOf tests code extraction across error types
func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"DomainError", NewUserNotFound("u-1"), CodeUserNotFound},
		{"RepositoryError", NewRepositoryError("query", errors.New("boom")), CodeRepository},
		{"Plain error", errors.New("plain"), ""},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestErrorWrapping tests that errors.Is works with wrapped domain errors
func TestErrorWrapping(t *testing.T) {
	baseErr := ErrEntityAlreadyExists
	wrappedErr := NewAlreadyInscribed("u-1", "t-1")

	if !errors.Is(wrappedErr, baseErr) {
		t.Error("errors.Is should recognize wrapped error")
	}
}
