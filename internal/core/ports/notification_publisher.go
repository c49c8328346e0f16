package ports

import (
	"context"

	"fastex/internal/core/domain/model/notification"
)

// NotificationPublisher forwards outbox notifications to the message broker.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}
