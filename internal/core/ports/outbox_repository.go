package ports

import (
	"context"
	"time"

	"fastex/internal/core/domain/model/notification"
)

// OutboxRepository stores notifications until they are forwarded to the broker.
type OutboxRepository interface {
	// Add queues a notification. Called in the same transaction as the booking change.
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists the published marker.
	Update(ctx context.Context, n *notification.Notification) error

	// GetUnpublished returns up to limit pending notifications, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error)

	// DeletePublishedBefore removes forwarded notifications published before t
	// and returns how many were removed.
	DeletePublishedBefore(ctx context.Context, t time.Time) (int64, error)
}
