// Package notification contains the outbox message queued whenever a booking
// changes. Messages are written in the same transaction as the booking and are
// forwarded to the broker later by a background job.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/core/domain/model/user"
	"fastex/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned for notifications not built by a constructor.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via a constructor")

	// ErrAlreadyPublished is returned when marking a forwarded notification again.
	ErrAlreadyPublished = errors.New("notification is already published")
)

// Kind identifies the booking event a notification announces. It doubles as
// the suffix of the broker topic.
type Kind string

const (
	BookingConfirmed Kind = "booking_confirmed"
	BookingCancelled Kind = "booking_cancelled"
)

// Validate checks the kind is one of the declared constants.
func (k Kind) Validate() error {
	switch k {
	case BookingConfirmed, BookingCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a notification kind", string(k)))
	}
}

// Notification is an e-mail addressed to the customer about one booking.
type Notification struct {
	id          kernel.UUID
	kind        Kind
	bookingID   kernel.UUID
	recipient   string
	subject     string
	body        string
	createdAt   time.Time
	publishedAt *time.Time

	isConstructed bool
}

// NewBookingConfirmed composes the confirmation e-mail for a freshly created booking.
func NewBookingConfirmed(b *booking.Booking, customer *user.User, now time.Time) (*Notification, error) {
	if err := errors.Join(b.Validate(), customer.Validate()); err != nil {
		return nil, err
	}

	d := b.Details()
	var body strings.Builder
	body.WriteString("Thank you for choosing Fastex for your courier needs! ")
	body.WriteString("We are excited to assist you in delivering your package swiftly and securely.\n\n")
	body.WriteString("Here are the details of your booking:\n\n")
	fmt.Fprintf(&body, "Booking ID: %s\n", b.ID())
	fmt.Fprintf(&body, "Pickup Address: %s\n", d.PickupAddress())
	fmt.Fprintf(&body, "Delivery Address: %s\n", d.DeliveryAddress())
	fmt.Fprintf(&body, "Receiver Details: %s\n", d.ReceiverName())
	fmt.Fprintf(&body, "Estimated Delivery Time: %s\n", d.EstimatedDeliveryDate())
	fmt.Fprintf(&body, "Delivery Charges: %s\n\n", d.Price().StringFixed(2))
	body.WriteString("Thank you for trusting Fastex. We look forward to serving you!\n\n")
	body.WriteString("Best regards,\nThe Fastex Team")

	return RestoreNotification(
		kernel.NewUUID(),
		BookingConfirmed,
		b.ID(),
		customer.Email(),
		fmt.Sprintf("Congratulations! %s, Your Delivery Has Been Booked...", customer.Firstname()),
		body.String(),
		now,
		nil,
	)
}

// NewBookingCancelled composes the e-mail sent after a booking is cancelled.
func NewBookingCancelled(b *booking.Booking, customer *user.User, now time.Time) (*Notification, error) {
	if err := errors.Join(b.Validate(), customer.Validate()); err != nil {
		return nil, err
	}

	d := b.Details()
	body := fmt.Sprintf(
		"Your booking %s from %s to %s has been cancelled.\n\nBest regards,\nThe Fastex Team",
		b.ID(), d.FromLocation(), d.ToLocation(),
	)

	return RestoreNotification(
		kernel.NewUUID(),
		BookingCancelled,
		b.ID(),
		customer.Email(),
		fmt.Sprintf("%s, Your Delivery Has Been Cancelled", customer.Firstname()),
		body,
		now,
		nil,
	)
}

// RestoreNotification rebuilds a notification read from the outbox.
func RestoreNotification(
	id kernel.UUID,
	kind Kind,
	bookingID kernel.UUID,
	recipient, subject, body string,
	createdAt time.Time,
	publishedAt *time.Time,
) (*Notification, error) {
	n := &Notification{
		recipient:     recipient,
		subject:       subject,
		body:          body,
		createdAt:     createdAt,
		publishedAt:   publishedAt,
		isConstructed: true,
	}

	var recipientErr, createdErr error
	if strings.TrimSpace(recipient) == "" {
		recipientErr = errs.NewValueIsRequiredError("recipient")
	}
	if createdAt.IsZero() {
		createdErr = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(id.Validate(), kind.Validate(), bookingID.Validate(), recipientErr, createdErr); err != nil {
		return nil, err
	}

	n.id = id
	n.kind = kind
	n.bookingID = bookingID
	return n, nil
}

// Validate ensures the Notification was built by a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID        { return n.id }
func (n *Notification) Kind() Kind             { return n.kind }
func (n *Notification) BookingID() kernel.UUID { return n.bookingID }
func (n *Notification) Recipient() string      { return n.recipient }
func (n *Notification) Subject() string        { return n.subject }
func (n *Notification) Body() string           { return n.body }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }

// PublishedAt returns nil while the notification is still pending.
func (n *Notification) PublishedAt() *time.Time { return n.publishedAt }

// IsPublished reports whether the notification was forwarded to the broker.
func (n *Notification) IsPublished() bool {
	return n.publishedAt != nil
}

// MarkPublished records the forwarding time.
func (n *Notification) MarkPublished(at time.Time) error {
	if n.IsPublished() {
		return ErrAlreadyPublished
	}
	n.publishedAt = &at
	return nil
}
