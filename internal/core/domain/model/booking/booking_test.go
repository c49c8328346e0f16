package booking_test

import (
	"testing"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) booking.Details {
	t.Helper()

	details, err := booking.NewDetails(
		kernel.MustNewLocation("Dublin"),
		kernel.MustNewLocation("Cork"),
		booking.Express,
		"1 O'Connell Street",
		"5 Patrick Street",
		"Sean Murphy",
		decimal.RequireFromString("20.00"),
		"Saturday 17 October 2026",
	)
	require.NoError(t, err)
	return details
}

func TestNewDetails(t *testing.T) {
	dublin := kernel.MustNewLocation("Dublin")
	cork := kernel.MustNewLocation("Cork")
	price := decimal.RequireFromString("15.00")

	t.Run("should keep values verbatim after trimming", func(t *testing.T) {
		d, err := booking.NewDetails(dublin, cork, booking.Standard,
			"  1 Main St ", "2 High St", "Aoife", price, "Sunday 18 October 2026")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.FromLocation().IsEqual(dublin))
		assert.True(t, d.ToLocation().IsEqual(cork))
		assert.Equal(t, booking.Standard, d.ServiceClass())
		assert.Equal(t, "1 Main St", d.PickupAddress())
		assert.Equal(t, "2 High St", d.DeliveryAddress())
		assert.Equal(t, "Aoife", d.ReceiverName())
		assert.True(t, price.Equal(d.Price()))
		assert.Equal(t, "Sunday 18 October 2026", d.EstimatedDeliveryDate())
	})

	t.Run("should reject equal locations on toLocation", func(t *testing.T) {
		_, err := booking.NewDetails(dublin, kernel.MustNewLocation(" Dublin "), booking.Standard,
			"a", "b", "c", price, "date")

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "toLocation", invalid.ParamName)
		assert.Equal(t, booking.ErrSameLocation, invalid.Cause)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := booking.NewDetails(dublin, cork, "", " ", "", "", price, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"serviceClass", "pickupAddress", "deliveryAddress", "receiverName", "estimatedDeliveryDate"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		_, err := booking.NewDetails(dublin, cork, booking.Cheaper, "a", "b", "c", decimal.Zero, "date")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should reject zero locations", func(t *testing.T) {
		_, err := booking.NewDetails(kernel.Location{}, cork, booking.Cheaper, "a", "b", "c", price, "date")

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var d booking.Details
		require.ErrorIs(t, d.Validate(), booking.ErrDetailsAreNotConstructed)
	})
}

func TestNewBooking(t *testing.T) {
	details := validDetails(t)
	id := kernel.NewUUID()
	bookedOn := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	t.Run("should create an active booking", func(t *testing.T) {
		b, err := booking.NewBooking(id, details, "mary", bookedOn)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.Equal(t, booking.Active, b.Status())
		assert.True(t, b.IsActive())
		assert.Equal(t, "mary", b.BookedBy())
		assert.Equal(t, bookedOn, b.BookedOn())
		assert.Equal(t, "Saturday 17 October 2026", b.Details().EstimatedDeliveryDate())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		b, err := booking.NewBooking(kernel.UUID{}, booking.Details{}, " ", time.Time{})

		require.Error(t, err)
		assert.Nil(t, b)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, booking.ErrDetailsAreNotConstructed)
		assert.Contains(t, err.Error(), "bookedBy")
		assert.Contains(t, err.Error(), "bookedOn")
	})

	t.Run("nil booking does not validate", func(t *testing.T) {
		var b *booking.Booking
		require.ErrorIs(t, b.Validate(), booking.ErrBookingIsNotConstructed)
	})
}

func TestRestoreBooking(t *testing.T) {
	details := validDetails(t)

	b, err := booking.RestoreBooking(kernel.NewUUID(), details, booking.Cancelled, "mary", time.Now())
	require.NoError(t, err)
	assert.False(t, b.IsActive())

	_, err = booking.RestoreBooking(kernel.NewUUID(), details, booking.Status("LOST"), "mary", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBooking_Cancel(t *testing.T) {
	details := validDetails(t)

	t.Run("owner cancels an active booking", func(t *testing.T) {
		b, _ := booking.NewBooking(kernel.NewUUID(), details, "mary", time.Now())

		require.NoError(t, b.Cancel("mary"))
		assert.Equal(t, booking.Cancelled, b.Status())
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		b, _ := booking.NewBooking(kernel.NewUUID(), details, "mary", time.Now())
		require.NoError(t, b.Cancel("mary"))

		require.ErrorIs(t, b.Cancel("mary"), booking.ErrAlreadyCancelled)
	})

	t.Run("another identity cannot cancel", func(t *testing.T) {
		b, _ := booking.NewBooking(kernel.NewUUID(), details, "mary", time.Now())

		require.ErrorIs(t, b.Cancel("john"), booking.ErrNotOwner)
		assert.Equal(t, booking.Active, b.Status())
	})
}

func TestBooking_IsEqual(t *testing.T) {
	details := validDetails(t)
	id := kernel.NewUUID()
	a, _ := booking.NewBooking(id, details, "mary", time.Now())
	b, _ := booking.RestoreBooking(id, details, booking.Cancelled, "mary", time.Now())
	c, _ := booking.NewBooking(kernel.NewUUID(), details, "mary", time.Now())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
