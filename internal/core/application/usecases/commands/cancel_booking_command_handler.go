package commands

import (
	"context"
	"errors"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/notification"
	"fastex/internal/core/ports"
)

// DefaultCancellationLockTTL bounds how long a crashed instance can block
// cancellations of one booking.
const DefaultCancellationLockTTL = 30 * time.Second

// ErrCancellationInProgress is returned when another request is already
// cancelling the same booking.
var ErrCancellationInProgress = errors.New("cancellation already in progress")

// CancelBookingCommandHandler cancels a booking under a per-booking distributed
// lock and queues the cancellation e-mail in the same transaction.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	lock       ports.CancellationLock
	lockTTL    time.Duration
	now        func() time.Time
}

// NewCancelBookingCommandHandler creates the handler. A non-positive ttl means
// DefaultCancellationLockTTL and a nil clock means time.Now.
func NewCancelBookingCommandHandler(
	uowFactory BookingUoWFactory,
	lock ports.CancellationLock,
	lockTTL time.Duration,
	clock func() time.Time,
) CancelBookingCommandHandler {
	if lockTTL <= 0 {
		lockTTL = DefaultCancellationLockTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		lock:       lock,
		lockTTL:    lockTTL,
		now:        clock,
	}
}

// Handle cancels the booking and returns it in CANCELLED status.
//
// Returns:
//   - ErrCancellationInProgress when the lock is held by another request
//   - errs.ObjectNotFoundError for unknown bookings
//   - booking.ErrNotOwner or booking.ErrAlreadyCancelled from the aggregate
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	token, acquired, err := h.lock.Acquire(ctx, cmd.BookingID(), h.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrCancellationInProgress
	}
	defer func() {
		_ = h.lock.Release(context.WithoutCancel(ctx), cmd.BookingID(), token)
	}()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	target, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	if err = target.Cancel(cmd.Username()); err != nil {
		return nil, err
	}

	if err = bookingRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	customer, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		return nil, err
	}

	cancelled, err := notification.NewBookingCancelled(target, customer, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OutboxRepository().Add(ctx, cancelled); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
