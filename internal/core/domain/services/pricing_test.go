package services_test

import (
	"testing"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPricing_Quote_Table(t *testing.T) {
	reference := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC) // a Thursday
	pricing := services.NewPricing(nil)

	testCases := []struct {
		class    booking.ServiceClass
		price    string
		date     string
		leadDays int
	}{
		{booking.OneDay, "30.00", "Friday 16 October 2026", 1},
		{booking.Express, "20.00", "Saturday 17 October 2026", 2},
		{booking.Standard, "15.00", "Sunday 18 October 2026", 3},
		{booking.Cheaper, "10.00", "Tuesday 20 October 2026", 5},
		{booking.ServiceClass("OVERNIGHT"), "10.00", "Sunday 18 October 2026", 3},
		{booking.ServiceClass(""), "10.00", "Sunday 18 October 2026", 3},
	}

	for _, tc := range testCases {
		t.Run("class "+tc.class.String(), func(t *testing.T) {
			q := pricing.Quote(tc.class, reference)

			assert.Equal(t, tc.price, q.Price.StringFixed(2))
			assert.Equal(t, tc.date, q.EstimatedDeliveryDate)
			assert.Equal(t, reference.AddDate(0, 0, tc.leadDays), q.DeliveryOn)
		})
	}
}

func TestPricing_Quote_ExpressFromToday(t *testing.T) {
	today := time.Date(2026, 12, 30, 8, 0, 0, 0, time.UTC)
	pricing := services.NewPricing(func() time.Time { return today })

	q := pricing.Quote(booking.Express, time.Time{})

	assert.Equal(t, "20.00", q.Price.StringFixed(2))
	assert.Equal(t, "Friday 1 January 2027", q.EstimatedDeliveryDate)
}

func TestPricing_Quote_IsDeterministic(t *testing.T) {
	reference := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pricing := services.NewPricing(nil)

	assert.Equal(t, pricing.Quote(booking.Standard, reference), pricing.Quote(booking.Standard, reference))
}

func TestPricing_ZeroValueUsesDefaults(t *testing.T) {
	var pricing services.Pricing

	q := pricing.Quote(booking.Express, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "20.00", q.Price.StringFixed(2))
	assert.Equal(t, "Saturday 3 January 2026", q.EstimatedDeliveryDate)
}
