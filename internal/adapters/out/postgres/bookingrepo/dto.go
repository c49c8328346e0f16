// Package bookingrepo provides data transfer objects and mapping functions for booking persistence.
// It converts between the booking aggregate and its row in the "bookings" table.
package bookingrepo

import (
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO represents the database structure for persisting booking aggregates.
// The owner and status are indexed together for the "my bookings" listing.
type BookingDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FromLocation          string          `gorm:"not null"`
	ToLocation            string          `gorm:"not null"`
	ServiceClass          string          `gorm:"not null"`
	PickupAddress         string          `gorm:"not null"`
	DeliveryAddress       string          `gorm:"not null"`
	ReceiverName          string          `gorm:"not null"`
	Price                 decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EstimatedDeliveryDate string          `gorm:"not null"`
	Status                string          `gorm:"not null;index:idx_bookings_owner_status,priority:2"`
	BookedBy              string          `gorm:"not null;index:idx_bookings_owner_status,priority:1"`
	BookedOn              time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking aggregate to its database representation.
func fromDomain(b *booking.Booking) BookingDTO {
	d := b.Details()
	return BookingDTO{
		ID:                    b.ID().Bytes(),
		FromLocation:          d.FromLocation().Name(),
		ToLocation:            d.ToLocation().Name(),
		ServiceClass:          d.ServiceClass().String(),
		PickupAddress:         d.PickupAddress(),
		DeliveryAddress:       d.DeliveryAddress(),
		ReceiverName:          d.ReceiverName(),
		Price:                 d.Price(),
		EstimatedDeliveryDate: d.EstimatedDeliveryDate(),
		Status:                b.Status().String(),
		BookedBy:              b.BookedBy(),
		BookedOn:              b.BookedOn(),
	}
}

// toDomain rebuilds the aggregate with RestoreBooking. The stored delivery date
// string is passed through as is.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details, err := detailsFromRow(
		dto.FromLocation,
		dto.ToLocation,
		dto.ServiceClass,
		dto.PickupAddress,
		dto.DeliveryAddress,
		dto.ReceiverName,
		dto.Price,
		dto.EstimatedDeliveryDate,
	)
	if err != nil {
		return nil, err
	}

	status, err := booking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(id, details, status, dto.BookedBy, dto.BookedOn)
}

func detailsFromRow(
	from, to, class, pickupAddress, deliveryAddress, receiverName string,
	price decimal.Decimal,
	estimatedDeliveryDate string,
) (booking.Details, error) {
	fromLocation, err := kernel.NewLocation(from)
	if err != nil {
		return booking.Details{}, err
	}

	toLocation, err := kernel.NewLocation(to)
	if err != nil {
		return booking.Details{}, err
	}

	return booking.NewDetails(
		fromLocation,
		toLocation,
		booking.ParseServiceClass(class),
		pickupAddress,
		deliveryAddress,
		receiverName,
		price,
		estimatedDeliveryDate,
	)
}
