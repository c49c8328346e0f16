package commands

import (
	"context"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/notification"
)

// CreateBookingCommandHandler persists a new ACTIVE booking for the
// authenticated customer and queues the confirmation e-mail in the same
// transaction.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	now        func() time.Time
}

// NewCreateBookingCommandHandler creates the handler. A nil clock means time.Now.
func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory, clock func() time.Time) CreateBookingCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		now:        clock,
	}
}

// Handle stores the booking with bookedBy = the command's username and
// bookedOn = now, then writes a booking_confirmed notification to the outbox.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		return nil, err
	}

	now := h.now()
	created, err := booking.NewBooking(cmd.BookingID(), cmd.Details(), cmd.Username(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.BookingRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	confirmation, err := notification.NewBookingConfirmed(created, customer, now)
	if err != nil {
		return nil, err
	}

	if err = uow.OutboxRepository().Add(ctx, confirmation); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
