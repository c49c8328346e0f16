package commands_test

import (
	"testing"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/notification"
	"fastex/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newDetails(t *testing.T) booking.Details {
	t.Helper()
	d, err := booking.NewDetails(
		kernel.MustNewLocation("Dublin"),
		kernel.MustNewLocation("Kilkenny"),
		booking.Standard,
		"1 O'Connell Street",
		"12 High Street",
		"Aoife Walsh",
		decimal.RequireFromString("15.00"),
		"Sunday 18 October 2026",
	)
	require.NoError(t, err)
	return d
}

func newUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), username, "hash", "Mary", "Byrne", username+"@example.ie")
	require.NoError(t, err)
	return u
}

func newBooking(t *testing.T, owner string) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(kernel.NewUUID(), newDetails(t), owner, fixedNow)
	require.NoError(t, err)
	return b
}

func newNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewBookingConfirmed(newBooking(t, "mary"), newUser(t, "mary"), fixedNow)
	require.NoError(t, err)
	return n
}
