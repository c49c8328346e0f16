// Package queries contains read-only operations of the Booking Store. Query
// handlers read straight from the database and return flat response structs.
package queries

import (
	"errors"
	"strings"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

var (
	ErrGetMyBookingsQueryIsNotConstructed = errors.New(
		"GetMyBookingsQuery must be created via NewGetMyBookingsQuery constructor",
	)
)

// GetMyBookingsQuery lists the active bookings of one customer.
//
// Example:
//
//	query, err := NewGetMyBookingsQuery("mary")
//	if err != nil {
//	    return err
//	}
//
//	bookings, err := handler.Handle(ctx, query)
//	for _, b := range bookings {
//	    fmt.Printf("%s: %s -> %s\n", b.ID, b.Details.FromLocation(), b.Details.ToLocation())
//	}
type GetMyBookingsQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetMyBookingsQuery creates the query for the authenticated username.
func NewGetMyBookingsQuery(username string) (GetMyBookingsQuery, error) {
	if strings.TrimSpace(username) == "" {
		return GetMyBookingsQuery{}, errs.NewValueIsRequiredError("username")
	}

	return GetMyBookingsQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Username returns the owner whose bookings are listed.
func (q GetMyBookingsQuery) Username() string {
	return q.username
}

// Validate ensures the query was created through the constructor.
func (q GetMyBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyBookingsQueryIsNotConstructed)
}

// GetMyBookingsQueryResponse is one row of the customer's booking list.
type GetMyBookingsQueryResponse struct {
	ID       kernel.UUID
	Details  booking.Details
	Status   booking.Status
	BookedBy string
	BookedOn time.Time
}
