package commands

import (
	"errors"
	"strings"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand cancels one booking on behalf of the customer who made it.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	username  string

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand validates the booking id and the authenticated username.
func NewCancelBookingCommand(bookingID kernel.UUID, username string) (CancelBookingCommand, error) {
	cmd := CancelBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	var usernameErr error
	if username = strings.TrimSpace(username); username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}

	if err := errors.Join(bookingID.Validate(), usernameErr); err != nil {
		return CancelBookingCommand{}, err
	}

	cmd.bookingID = bookingID
	cmd.username = username
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

func (c CancelBookingCommand) BookingID() kernel.UUID { return c.bookingID }
func (c CancelBookingCommand) Username() string       { return c.username }
