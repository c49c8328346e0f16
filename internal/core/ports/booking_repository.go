// Package ports defines the contracts between the booking core and the outside
// world: repositories and transaction boundaries used by the Booking Store,
// and the collaborators (store, auth gate, master data) the client core calls.
package ports

import (
	"context"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists a status change of an existing booking.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by identifier. Returns an errs.ObjectNotFoundError
	// when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)
}
