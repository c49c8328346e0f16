package services

import (
	"time"

	"fastex/internal/core/domain/model/booking"

	"github.com/shopspring/decimal"
)

// DeliveryDateLayout renders estimated delivery dates in the long Irish
// English form, for example "Saturday 17 October 2026". The rendered string is
// what gets stored and shown, so it must never change for existing bookings.
const DeliveryDateLayout = "Monday 2 January 2006"

// BasePrice is the price of the cheapest tier, in euro.
var BasePrice = decimal.NewFromInt(10)

// Quote is the derived part of a booking.
type Quote struct {
	Price                 decimal.Decimal
	EstimatedDeliveryDate string
	DeliveryOn            time.Time
}

// Pricing computes quotes from the tariff table of booking.ServiceClass.
//
// Example usage:
//
//	pricing := services.NewPricing(nil)
//	q := pricing.Quote(booking.Express, time.Time{})
//	// q.Price == 20.00, q.EstimatedDeliveryDate == today + 2 days
type Pricing struct {
	base decimal.Decimal
	now  func() time.Time
}

// NewPricing returns a Pricing using BasePrice. A nil clock means time.Now.
func NewPricing(clock func() time.Time) Pricing {
	if clock == nil {
		clock = time.Now
	}
	return Pricing{base: BasePrice, now: clock}
}

// Quote returns price = round(base × multiplier, 2) and the reference date
// shifted by the class's lead time. A zero reference means "now" on the
// configured clock. Unrecognized or empty classes get the default tariff.
func (p Pricing) Quote(class booking.ServiceClass, reference time.Time) Quote {
	if reference.IsZero() {
		reference = p.clock()()
	}

	tariff := class.Tariff()
	deliveryOn := reference.AddDate(0, 0, tariff.LeadTimeDays)

	return Quote{
		Price:                 p.basePrice().Mul(tariff.Multiplier).Round(2),
		EstimatedDeliveryDate: deliveryOn.Format(DeliveryDateLayout),
		DeliveryOn:            deliveryOn,
	}
}

func (p Pricing) clock() func() time.Time {
	if p.now == nil {
		return time.Now
	}
	return p.now
}

func (p Pricing) basePrice() decimal.Decimal {
	if p.base.IsZero() {
		return BasePrice
	}
	return p.base
}
