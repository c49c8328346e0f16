// Package lifecycle drives a customer's booking from draft to submission and,
// later, cancellation. It gates privileged steps on the Auth Gate and talks to
// the Booking Store only through ports.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"fastex/internal/core/application/draft"
	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/ports"
	"fastex/internal/pkg/errs"
)

// Controller is the session-scoped booking state machine. Store calls are made
// without holding the controller's lock, so a long submission never blocks
// State, Message or draft editing.
//
// Example:
//
//	ctrl := lifecycle.NewController(drafts, store, auth, logger)
//	if _, err := drafts.InitDraft("Dublin", "Cork", "EXPRESS"); err != nil {
//	    // back to selection
//	}
//	res, err := ctrl.RequestSubmit(ctx)
//	if errors.Is(err, lifecycle.ErrAuthRequired) {
//	    // res.Next == lifecycle.StepLogin
//	}
//	res, err = ctrl.Confirm(ctx)
type Controller struct {
	drafts *draft.Manager
	store  ports.BookingStore
	auth   ports.AuthGate
	logger *slog.Logger

	mu           sync.Mutex
	state        State
	message      string
	bookings     []*booking.Booking
	cancelStates map[kernel.UUID]CancelState
}

// NewController creates a controller in the Editing state.
func NewController(
	drafts *draft.Manager,
	store ports.BookingStore,
	auth ports.AuthGate,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		drafts:       drafts,
		store:        store,
		auth:         auth,
		logger:       logger.With("component", "booking_lifecycle"),
		state:        Editing,
		cancelStates: make(map[kernel.UUID]CancelState),
	}
}

// Drafts returns the draft manager the controller submits from.
func (c *Controller) Drafts() *draft.Manager {
	return c.drafts
}

// State returns the current attempt state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Message returns the last customer-facing message, if any.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// RequestSubmit asks to show the confirmation step.
//
// Without a session it returns ErrAuthRequired with Next == StepLogin and stays
// in Editing; the draft is preserved. An invalid draft returns the
// *draft.ValidationError and stays in Editing.
func (c *Controller) RequestSubmit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return Result{State: Submitting}, ErrAlreadyInProgress
	}
	c.message = ""
	c.mu.Unlock()

	if _, ok := c.auth.CurrentSession(ctx); !ok {
		if !c.setStateUnlessSubmitting(Editing) {
			return Result{State: Submitting}, ErrAlreadyInProgress
		}
		c.logger.InfoContext(ctx, "Submit requested without a session, redirecting to login")
		return Result{State: Editing, Next: StepLogin}, ErrAuthRequired
	}

	d, err := c.drafts.ValidateForSubmission()
	if err != nil {
		if !c.setStateUnlessSubmitting(Editing) {
			return Result{State: Submitting}, ErrAlreadyInProgress
		}
		return Result{State: Editing}, err
	}

	if !c.setStateUnlessSubmitting(AwaitingConfirmation) {
		return Result{State: Submitting}, ErrAlreadyInProgress
	}
	return Result{State: AwaitingConfirmation, Draft: d}, nil
}

// DismissConfirmation closes the confirmation step and returns to Editing.
func (c *Controller) DismissConfirmation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == AwaitingConfirmation || c.state == SubmitFailed {
		c.state = Editing
	}
}

// Confirm submits the draft to the Booking Store. It is allowed from
// AwaitingConfirmation and, to retry, from SubmitFailed.
//
// Returns:
//   - Submitted with Next == StepBookings on success; the draft is discarded
//   - SubmitFailed with a retry message and nil error when the store call fails
//   - Editing with a *draft.ValidationError or ErrAuthRequired
//   - ErrAlreadyInProgress while another submission runs
func (c *Controller) Confirm(ctx context.Context) (Result, error) {
	c.mu.Lock()
	switch c.state {
	case Submitting:
		c.mu.Unlock()
		return Result{State: Submitting}, ErrAlreadyInProgress
	case AwaitingConfirmation, SubmitFailed:
		c.state = Submitting
		c.message = ""
	default:
		state := c.state
		c.mu.Unlock()
		return Result{State: state}, ErrNotAwaitingConfirmation
	}
	c.mu.Unlock()

	d, err := c.drafts.ValidateForSubmission()
	if err != nil {
		c.setState(Editing)
		return Result{State: Editing}, err
	}

	details, err := d.Details()
	if err != nil {
		c.setState(Editing)
		return Result{State: Editing}, err
	}

	token, ok := c.auth.Token(ctx)
	if !ok {
		c.setState(Editing)
		return Result{State: Editing, Next: StepLogin}, ErrAuthRequired
	}

	stored, err := c.store.CreateBooking(ctx, token, details)
	if err == nil {
		err = stored.Validate()
	}
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to create booking", "error", err)

		c.mu.Lock()
		c.state = SubmitFailed
		c.message = MessageSubmitFailed
		c.mu.Unlock()

		return Result{
			State:   SubmitFailed,
			Message: MessageSubmitFailed,
			Draft:   d,
			Err:     fmt.Errorf("%w: %w", ErrSubmitFailed, err),
		}, nil
	}

	c.drafts.Discard()

	c.mu.Lock()
	c.state = Submitted
	c.message = MessageBookingCreated
	c.bookings = append(c.bookings, stored)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "Booking created", "booking_id", stored.ID().String())
	return Result{
		State:   Submitted,
		Next:    StepBookings,
		Message: MessageBookingCreated,
		Booking: stored,
	}, nil
}

// ListBookings fetches the signed-in customer's bookings in store order and
// refreshes the cached copies used by Cancel.
func (c *Controller) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	token, ok := c.auth.Token(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}

	list, err := c.store.ListBookings(ctx, token)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load bookings", "error", err)
		c.mu.Lock()
		c.message = MessageLoadBookingsFailed
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrLoadBookingsFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.bookings = slices.Clone(list)
	for id, state := range c.cancelStates {
		if state != CancelStateCancelling {
			delete(c.cancelStates, id)
		}
	}
	return slices.Clone(list), nil
}

// Bookings returns the cached bookings from the last listing or submission.
func (c *Controller) Bookings() []*booking.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.bookings)
}

// Cancel cancels one cached booking of the signed-in customer. Only one
// cancellation per booking runs at a time; a concurrent call gets
// ErrAlreadyInProgress. A store failure returns CancelStateFailed with a
// message and nil error, leaving the booking active.
func (c *Controller) Cancel(ctx context.Context, id kernel.UUID) (CancelResult, error) {
	session, ok := c.auth.CurrentSession(ctx)
	if !ok {
		return CancelResult{BookingID: id, Next: StepLogin}, ErrAuthRequired
	}

	c.mu.Lock()
	err := c.beginCancel(id, session.Identity)
	c.mu.Unlock()
	if err != nil {
		return CancelResult{BookingID: id, State: c.CancelState(id)}, err
	}

	token, ok := c.auth.Token(ctx)
	if !ok {
		c.mu.Lock()
		delete(c.cancelStates, id)
		c.mu.Unlock()
		return CancelResult{BookingID: id, State: CancelStateActive, Next: StepLogin}, ErrAuthRequired
	}

	if err = c.store.CancelBooking(ctx, token, id); err != nil {
		c.logger.ErrorContext(ctx, "Failed to cancel booking", "booking_id", id.String(), "error", err)

		c.mu.Lock()
		c.cancelStates[id] = CancelStateFailed
		c.message = MessageCancelFailed
		c.mu.Unlock()

		return CancelResult{
			BookingID: id,
			State:     CancelStateFailed,
			Message:   MessageCancelFailed,
			Err:       fmt.Errorf("%w: %w", ErrCancelFailed, err),
		}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Bookings handed out earlier are never mutated; the cached entry is
	// swapped for a cancelled copy. A listing may have replaced the cache
	// while the call was in flight.
	if err = c.markCancelledLocked(id); err != nil {
		c.logger.ErrorContext(ctx, "Failed to update cached booking", "booking_id", id.String(), "error", err)
	}
	c.cancelStates[id] = CancelStateCancelled
	c.logger.InfoContext(ctx, "Booking cancelled", "booking_id", id.String())
	return CancelResult{BookingID: id, State: CancelStateCancelled}, nil
}

// CancelState returns the cancellation view of a cached booking, or "" when
// the booking is not cached.
func (c *Controller) CancelState(id kernel.UUID) CancelState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state, ok := c.cancelStates[id]; ok {
		return state
	}
	b := c.findLocked(id)
	switch {
	case b == nil:
		return ""
	case b.IsActive():
		return CancelStateActive
	default:
		return CancelStateCancelled
	}
}

// beginCancel checks the booking can be cancelled by identity and marks it
// Cancelling. Must be called with c.mu held.
func (c *Controller) beginCancel(id kernel.UUID, identity string) error {
	target := c.findLocked(id)
	if target == nil {
		return errs.NewObjectNotFoundError("bookingId", id.String())
	}
	if c.cancelStates[id] == CancelStateCancelling {
		return ErrAlreadyInProgress
	}
	if !target.IsOwnedBy(identity) {
		return booking.ErrNotOwner
	}
	if !target.IsActive() {
		return booking.ErrAlreadyCancelled
	}

	c.cancelStates[id] = CancelStateCancelling
	return nil
}

func (c *Controller) findLocked(id kernel.UUID) *booking.Booking {
	for _, b := range c.bookings {
		if b.ID().IsEqual(id) {
			return b
		}
	}
	return nil
}

// markCancelledLocked replaces the cached booking with a Cancelled copy.
// Must be called with c.mu held.
func (c *Controller) markCancelledLocked(id kernel.UUID) error {
	for i, b := range c.bookings {
		if !b.ID().IsEqual(id) {
			continue
		}
		cancelled, err := booking.RestoreBooking(b.ID(), b.Details(), booking.Cancelled, b.BookedBy(), b.BookedOn())
		if err != nil {
			return err
		}
		c.bookings[i] = cancelled
		return nil
	}
	return nil
}

// setStateUnlessSubmitting applies state unless a submission started in the
// meantime, in which case it reports false and leaves Submitting in place.
func (c *Controller) setStateUnlessSubmitting(state State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Submitting {
		return false
	}
	c.state = state
	return true
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}
