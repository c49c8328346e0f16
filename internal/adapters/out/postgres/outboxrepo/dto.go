// Package outboxrepo stores customer notifications in the "outbox" table until
// the forwarding job hands them to the message broker.
package outboxrepo

import (
	"time"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents one outbox row. Pending rows have a NULL published_at.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"not null"`
	BookingID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Recipient   string     `gorm:"not null"`
	Subject     string     `gorm:"not null"`
	Body        string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox notifications.
func (NotificationDTO) TableName() string {
	return "outbox"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		Kind:        string(n.Kind()),
		BookingID:   n.BookingID().Bytes(),
		Recipient:   n.Recipient(),
		Subject:     n.Subject(),
		Body:        n.Body(),
		CreatedAt:   n.CreatedAt(),
		PublishedAt: n.PublishedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		notification.Kind(dto.Kind),
		bookingID,
		dto.Recipient,
		dto.Subject,
		dto.Body,
		dto.CreatedAt,
		dto.PublishedAt,
	)
}
