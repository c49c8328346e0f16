package http

import (
	"errors"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/generated/servers"

	"github.com/shopspring/decimal"
)

// detailsFromRequest builds booking details from the request body. The price
// arrives as a JSON number and is kept to two decimals; the delivery date is
// stored exactly as sent.
func detailsFromRequest(req servers.NewBooking) (booking.Details, error) {
	from, fromErr := kernel.NewLocation(req.FromLocation)
	to, toErr := kernel.NewLocation(req.ToLocation)
	if err := errors.Join(fromErr, toErr); err != nil {
		return booking.Details{}, err
	}

	return booking.NewDetails(
		from,
		to,
		booking.ParseServiceClass(req.ServiceClass),
		req.PickupAddress,
		req.DeliveryAddress,
		req.ReceiverName,
		decimal.NewFromFloat(req.Price).Round(2),
		req.EstimatedDeliveryDate,
	)
}

func bookingFromAggregate(b *booking.Booking) servers.Booking {
	return bookingResponse(b.ID(), b.Details(), b.Status(), b.BookedBy(), b.BookedOn())
}

func bookingResponse(
	id kernel.UUID,
	d booking.Details,
	status booking.Status,
	bookedBy string,
	bookedOn time.Time,
) servers.Booking {
	return servers.Booking{
		Id:                    id.Bytes(),
		FromLocation:          d.FromLocation().Name(),
		ToLocation:            d.ToLocation().Name(),
		Price:                 d.Price().InexactFloat64(),
		ServiceClass:          d.ServiceClass().String(),
		PickupAddress:         d.PickupAddress(),
		DeliveryAddress:       d.DeliveryAddress(),
		ReceiverName:          d.ReceiverName(),
		EstimatedDeliveryDate: d.EstimatedDeliveryDate(),
		Status:                status.String(),
		BookedBy:              bookedBy,
		BookedOn:              bookedOn,
	}
}
