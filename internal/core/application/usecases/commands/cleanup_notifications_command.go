package commands

import (
	"errors"
	"fmt"
	"time"

	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

// DefaultNotificationRetention keeps published notifications for a week.
const DefaultNotificationRetention = 7 * 24 * time.Hour

var ErrCleanupNotificationsCommandIsNotConstructed = errors.New(
	"CleanupNotificationsCommand must be created via NewCleanupNotificationsCommand constructor",
)

// CleanupNotificationsCommand deletes published notifications older than the retention.
type CleanupNotificationsCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupNotificationsCommand requires a positive retention.
func NewCleanupNotificationsCommand(retention time.Duration) (CleanupNotificationsCommand, error) {
	if retention <= 0 {
		return CleanupNotificationsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention", fmt.Errorf("%s is not greater than 0", retention))
	}

	return CleanupNotificationsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupNotificationsCommandIsNotConstructed)
}

func (c CleanupNotificationsCommand) Retention() time.Duration { return c.retention }
