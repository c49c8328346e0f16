package queries

import (
	"context"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMyBookingsQueryHandler reads a customer's active bookings.
type GetMyBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyBookingsQueryHandler creates a handler over the bookings table.
func NewGetMyBookingsQueryHandler(db *gorm.DB) GetMyBookingsQueryHandler {
	return GetMyBookingsQueryHandler{db: db}
}

// Handle returns the ACTIVE bookings of the query's user ordered by booking time.
// Cancelled bookings are left out. The stored delivery date string is returned
// as it was submitted.
func (h GetMyBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetMyBookingsQuery,
) ([]GetMyBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookings := make([]GetMyBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_location,
			to_location,
			service_class,
			pickup_address,
			delivery_address,
			receiver_name,
			price,
			estimated_delivery_date,
			status,
			booked_by,
			booked_on
		FROM bookings
		WHERE booked_by = ? AND status = ?
		ORDER BY booked_on, id
	`, query.Username(), booking.Active.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMyBookingsQueryResponse
		var id uuid.UUID
		var from, to, class, pickup, delivery, receiver, date, status string
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&from,
			&to,
			&class,
			&pickup,
			&delivery,
			&receiver,
			&price,
			&date,
			&status,
			&resp.BookedBy,
			&resp.BookedOn,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bookingID

		details, detailsErr := scanDetails(from, to, class, pickup, delivery, receiver, price, date)
		if detailsErr != nil {
			return nil, detailsErr
		}
		resp.Details = details

		parsed, statusErr := booking.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = parsed

		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func scanDetails(
	from, to, class, pickup, delivery, receiver string,
	price decimal.Decimal,
	date string,
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
		pickup,
		delivery,
		receiver,
		price,
		date,
	)
}
