// Package booking contains the parcel booking aggregate and its value objects.
//
// The package includes:
//   - ServiceClass: The delivery tier and its tariff (price multiplier, lead time)
//   - Details: The customer-entered part of a booking plus its derived price and date
//   - Status: The persisted lifecycle (ACTIVE → CANCELLED)
//   - Booking: The aggregate root held by the Booking Store and cached by clients
//
// State transitions:
//
//	ACTIVE ──> CANCELLED
//
// Cancellation is the only mutation a stored booking supports and only the
// identity that booked it may perform it.
package booking
