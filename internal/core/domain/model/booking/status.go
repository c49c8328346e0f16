package booking

import (
	"errors"
	"fmt"

	"fastex/internal/pkg/errs"
)

// ErrAlreadyCancelled is returned when cancelling a booking that is no longer active.
var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// Status is the persisted lifecycle state of a booking.
//
// State transitions:
//
//	Active ──> Cancelled
type Status string

const (
	// Active is assigned by the Booking Store when a booking is accepted.
	Active Status = "ACTIVE"

	// Cancelled is final.
	Cancelled Status = "CANCELLED"
)

// ParseStatus converts a stored or wire value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks the status is one of Active or Cancelled.
func (s Status) Validate() error {
	switch s {
	case Active, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// Cancel transitions Active to Cancelled.
//
// Returns:
//   - (Cancelled, nil) from Active
//   - ("", ErrAlreadyCancelled) from Cancelled
//   - ("", error) for invalid statuses
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if s == Cancelled {
		return "", ErrAlreadyCancelled
	}
	return Cancelled, nil
}

func (s Status) String() string {
	return string(s)
}
