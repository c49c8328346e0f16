package lifecycle

import (
	"errors"

	"fastex/internal/core/application/draft"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
)

// State is the position of the current booking attempt.
//
// State transitions:
//
//	Editing ──> AwaitingConfirmation ──> Submitting ──> Submitted
//	   ^                 │                   │
//	   └─────────────────┘                   └──> SubmitFailed ──> Submitting (retry)
type State string

const (
	Editing              State = "EDITING"
	AwaitingConfirmation State = "AWAITING_CONFIRMATION"
	Submitting           State = "SUBMITTING"
	Submitted            State = "SUBMITTED"
	SubmitFailed         State = "SUBMIT_FAILED"
)

// CancelState is the client-side view of a stored booking while it is being cancelled.
//
//	Active ──> Cancelling ──> Cancelled
//	              │
//	              └──> CancelFailed (booking stays active)
type CancelState string

const (
	CancelStateActive     CancelState = "ACTIVE"
	CancelStateCancelling CancelState = "CANCELLING"
	CancelStateCancelled  CancelState = "CANCELLED"
	CancelStateFailed     CancelState = "CANCEL_FAILED"
)

// Step tells the caller where to take the customer next.
type Step string

const (
	StepStay     Step = ""
	StepLogin    Step = "login"
	StepBookings Step = "bookings"
)

// Messages shown to the customer.
const (
	MessageBookingCreated     = "Booking created successfully!"
	MessageSubmitFailed       = "Failed to create booking. Please try again."
	MessageCancelFailed       = "Failed to cancel booking. Please try again."
	MessageLoadBookingsFailed = "Failed to load bookings. Please try again later."
)

var (
	// ErrAuthRequired means the customer must sign in first. Callers resolve it by
	// redirecting to the login step; the draft is kept.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAlreadyInProgress rejects a second submission or cancellation while the
	// first is still running.
	ErrAlreadyInProgress = errors.New("operation already in progress")

	// ErrNotAwaitingConfirmation is returned by Confirm outside the confirmation step.
	ErrNotAwaitingConfirmation = errors.New("booking is not awaiting confirmation")

	// ErrSubmitFailed wraps store failures on create. It is reported in Result.Err.
	ErrSubmitFailed = errors.New("submit failed")

	// ErrCancelFailed wraps store failures on cancel. It is reported in CancelResult.Err.
	ErrCancelFailed = errors.New("cancel failed")

	// ErrLoadBookingsFailed wraps store failures on listing.
	ErrLoadBookingsFailed = errors.New("load bookings failed")
)

// Result describes the outcome of a submit step.
type Result struct {
	State   State
	Next    Step
	Message string

	// Draft is the validated draft when awaiting confirmation.
	Draft draft.Draft

	// Booking is the stored booking after a successful submission.
	Booking *booking.Booking

	// Err carries a wrapped ErrSubmitFailed when the store rejected the booking.
	Err error
}

// CancelResult describes the outcome of a cancellation.
type CancelResult struct {
	BookingID kernel.UUID
	State     CancelState
	Next      Step
	Message   string
	Err       error
}
