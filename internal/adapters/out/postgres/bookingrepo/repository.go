package bookingrepo

import (
	"context"
	"errors"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the status of an existing booking. Details are immutable once
// stored, so only the status column is written.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
