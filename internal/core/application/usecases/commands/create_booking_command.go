package commands

import (
	"errors"
	"strings"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand stores a customer's booking exactly as submitted. Price
// and estimated delivery date were quoted by the client and are kept verbatim.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(kernel.NewUUID(), "mary", details)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	stored, err := handler.Handle(ctx, cmd)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	username  string
	details   booking.Details

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand validates the booking id, the authenticated username
// and the details.
func NewCreateBookingCommand(bookingID kernel.UUID, username string, details booking.Details) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setUsername(username),
		cmd.setDetails(details),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID   { return c.bookingID }
func (c CreateBookingCommand) Username() string         { return c.username }
func (c CreateBookingCommand) Details() booking.Details { return c.details }

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateBookingCommand) setDetails(details booking.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
