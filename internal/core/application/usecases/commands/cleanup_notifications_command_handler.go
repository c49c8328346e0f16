package commands

import (
	"context"
	"time"
)

// CleanupNotificationsCommandHandler removes forwarded notifications past retention.
type CleanupNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	now        func() time.Time
}

// NewCleanupNotificationsCommandHandler creates the handler. A nil clock means time.Now.
func NewCleanupNotificationsCommandHandler(uowFactory OutboxUoWFactory, clock func() time.Time) CleanupNotificationsCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return CleanupNotificationsCommandHandler{uowFactory: uowFactory, now: clock}
}

// Handle returns the number of deleted notifications.
func (h *CleanupNotificationsCommandHandler) Handle(ctx context.Context, cmd CleanupNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.OutboxRepository().DeletePublishedBefore(ctx, h.now().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
