package commands

import (
	"errors"
	"fmt"

	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

const (
	DefaultForwardBatchSize = 100
	maxForwardBatchSize     = 1000
)

var ErrForwardNotificationsCommandIsNotConstructed = errors.New(
	"ForwardNotificationsCommand must be created via NewForwardNotificationsCommand constructor",
)

// ForwardNotificationsCommand publishes one batch of pending outbox notifications.
//
// Example:
//
//	cmd, _ := NewForwardNotificationsCommand(DefaultForwardBatchSize)
//	handler := NewForwardNotificationsCommandHandler(uowFactory, publisher, nil)
//
//	// Run periodically from a scheduler
//	forwarded, err := handler.Handle(ctx, cmd)
type ForwardNotificationsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewForwardNotificationsCommand requires 1 ≤ batchSize ≤ 1000.
func NewForwardNotificationsCommand(batchSize int) (ForwardNotificationsCommand, error) {
	if batchSize < 1 || batchSize > maxForwardBatchSize {
		return ForwardNotificationsCommand{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"batchSize", batchSize, 1, maxForwardBatchSize,
			fmt.Errorf("batch size %d is not allowed", batchSize),
		)
	}

	return ForwardNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ForwardNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrForwardNotificationsCommandIsNotConstructed)
}

func (c ForwardNotificationsCommand) BatchSize() int { return c.batchSize }
