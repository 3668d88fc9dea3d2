package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by the registries, the registration engine and the
// repositories. Presentation adapters map these to HTTP statuses or console
// messages; nothing retries them internally.
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicatePhone = errors.New("phone number already exists")

	ErrIllegalStatusTransition  = errors.New("cannot change status of completed tournament")
	ErrCapacityExceeded         = errors.New("tournament has reached maximum participants")
	ErrMemberNotEligible        = errors.New("member is not active")
	ErrInsufficientParticipants = errors.New("cannot start tournament with insufficient participants")

	// ErrVersionConflict means the stored record's version advanced between
	// read and write. The caller reloads and retries.
	ErrVersionConflict = errors.New("record was modified concurrently")
)

// ValidationError reports a malformed or constraint-violating input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a field validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is an email/phone uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicatePhone)
}

// IsNotFound reports whether err means a referenced ID is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMemberNotFound) || errors.Is(err, ErrTournamentNotFound)
}
