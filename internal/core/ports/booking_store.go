package ports

import (
	"context"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
)

// BookingStore is the remote system of record the client core submits to.
// Any transport failure or non-success response is returned as an error; the
// core does not distinguish between them.
type BookingStore interface {
	// CreateBooking submits details and returns the persisted booking.
	CreateBooking(ctx context.Context, token string, details booking.Details) (*booking.Booking, error)

	// ListBookings returns the caller's bookings in store order.
	ListBookings(ctx context.Context, token string) ([]*booking.Booking, error)

	// CancelBooking asks the store to cancel one booking.
	CancelBooking(ctx context.Context, token string, id kernel.UUID) error
}
