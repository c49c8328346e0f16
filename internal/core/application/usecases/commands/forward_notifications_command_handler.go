package commands

import (
	"context"
	"errors"
	"time"

	"fastex/internal/core/ports"
)

// ForwardNotificationsCommandHandler drains the outbox into the message broker.
type ForwardNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.NotificationPublisher
	now        func() time.Time
}

// NewForwardNotificationsCommandHandler creates the handler. A nil clock means time.Now.
func NewForwardNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.NotificationPublisher,
	clock func() time.Time,
) ForwardNotificationsCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return ForwardNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clock,
	}
}

// Handle publishes pending notifications oldest first and marks each one
// published. It stops at the first publish failure so ordering is kept; the
// notifications published before the failure are still committed. Returns
// the number of notifications forwarded.
func (h *ForwardNotificationsCommandHandler) Handle(ctx context.Context, cmd ForwardNotificationsCommand) (int, error) {
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

	outbox := uow.OutboxRepository()
	pending, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	forwarded := 0
	var publishErr error
	for _, n := range pending {
		if publishErr = h.publisher.Publish(ctx, n); publishErr != nil {
			break
		}

		if err = n.MarkPublished(h.now()); err != nil {
			return 0, err
		}
		if err = outbox.Update(ctx, n); err != nil {
			return 0, err
		}
		forwarded++
	}

	if forwarded > 0 {
		if err = uow.Commit(ctx); err != nil {
			return 0, errors.Join(err, publishErr)
		}
	}

	return forwarded, publishErr
}
