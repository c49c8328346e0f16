package booking

import (
	"errors"
	"strings"
	"time"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking was not created through
	// NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructor")

	// ErrNotOwner is returned when an identity other than the one that booked
	// tries to cancel.
	ErrNotOwner = errors.New("booking belongs to another user")
)

// Booking is a persisted parcel booking. It is the aggregate root owned by the
// Booking Store; clients hold restored read copies of it.
//
// Booking follows these invariants:
//   - Has a valid unique identifier and valid Details
//   - Records who booked it and when
//   - Its Details never change after creation
//   - Status moves only from Active to Cancelled, and only for the owner
type Booking struct {
	id       kernel.UUID
	details  Details
	status   Status
	bookedBy string
	bookedOn time.Time

	isConstructed bool
}

// NewBooking creates an accepted booking in Active status.
//
// Parameters:
//   - id: Unique identifier assigned by the store
//   - details: Validated booking details
//   - bookedBy: Identity (username) of the customer
//   - bookedOn: Acceptance time
//
// Example:
//
//	b, err := booking.NewBooking(kernel.NewUUID(), details, "mary", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewBooking(id kernel.UUID, details Details, bookedBy string, bookedOn time.Time) (*Booking, error) {
	return RestoreBooking(id, details, Active, bookedBy, bookedOn)
}

// RestoreBooking rebuilds a booking read from storage or the wire in any
// valid status.
func RestoreBooking(id kernel.UUID, details Details, status Status, bookedBy string, bookedOn time.Time) (*Booking, error) {
	b := &Booking{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setDetails(details),
		b.setStatus(status),
		b.setBookedBy(bookedBy),
		b.setBookedOn(bookedOn),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Booking was built by one of the constructors.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// IsEqual compares bookings by identifier.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Booking) ID() kernel.UUID     { return b.id }
func (b *Booking) Details() Details    { return b.details }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) BookedBy() string    { return b.bookedBy }
func (b *Booking) BookedOn() time.Time { return b.bookedOn }

// IsActive reports whether the booking can still be cancelled.
func (b *Booking) IsActive() bool {
	return b.status == Active
}

// IsOwnedBy reports whether identity booked this parcel.
func (b *Booking) IsOwnedBy(identity string) bool {
	return b.bookedBy == identity
}

// Cancel moves the booking to Cancelled on behalf of identity.
//
// Returns:
//   - nil on success
//   - ErrNotOwner if identity did not make the booking
//   - ErrAlreadyCancelled if the booking is no longer active
func (b *Booking) Cancel(identity string) error {
	if !b.IsOwnedBy(identity) {
		return ErrNotOwner
	}

	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	b.details = details
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}

func (b *Booking) setBookedBy(bookedBy string) error {
	bookedBy = strings.TrimSpace(bookedBy)
	if bookedBy == "" {
		return errs.NewValueIsRequiredError("bookedBy")
	}
	b.bookedBy = bookedBy
	return nil
}

func (b *Booking) setBookedOn(bookedOn time.Time) error {
	if bookedOn.IsZero() {
		return errs.NewValueIsRequiredError("bookedOn")
	}
	b.bookedOn = bookedOn
	return nil
}
