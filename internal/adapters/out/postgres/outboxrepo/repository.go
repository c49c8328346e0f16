package outboxrepo

import (
	"context"
	"time"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/notification"
	"fastex/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB, tracker aggregateTracker) *GormOutboxRepository {
	return &GormOutboxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add queues a notification.
func (r *GormOutboxRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

// Update persists the published marker of a notification.
func (r *GormOutboxRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", dto.ID).
		Update("published_at", dto.PublishedAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

// GetUnpublished returns up to limit pending notifications, oldest first. Rows
// are locked with SKIP LOCKED so concurrent forwarders never pick the same row.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*notification.Notification, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// DeletePublishedBefore removes notifications forwarded before t.
func (r *GormOutboxRepository) DeletePublishedBefore(ctx context.Context, t time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at < ?", t).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
