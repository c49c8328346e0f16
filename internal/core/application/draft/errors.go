package draft

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteSelection is returned by InitDraft when origin, destination or
	// service class is missing. The caller should send the customer back to the
	// selection step.
	ErrIncompleteSelection = errors.New("incomplete selection: from, to and service class are required")

	// ErrNoActiveDraft is returned by operations that need a draft when none exists.
	ErrNoActiveDraft = errors.New("no active booking draft")

	// ErrDerivedField is returned when trying to set price or delivery date directly.
	ErrDerivedField = errors.New("field is derived from the service class and cannot be set")

	// ErrUnknownField is returned for field names the draft does not have.
	ErrUnknownField = errors.New("unknown draft field")
)

// ValidationError reports the first draft field that fails the submission rules.
type ValidationError struct {
	Field Field
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("validation failed on %s", e.Field)
	}
	return fmt.Sprintf("validation failed on %s: %v", e.Field, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
