package booking

import (
	"errors"
	"fmt"
	"strings"

	"fastex/internal/core/domain/model/kernel"
	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDetailsAreNotConstructed is returned for a zero Details value.
	ErrDetailsAreNotConstructed = errs.NewValueIsRequiredError("booking details must be created via NewDetails constructor")

	// ErrSameLocation is the cause reported when origin and destination are equal.
	ErrSameLocation = errors.New("destination must differ from origin")
)

// Details is the customer-entered part of a booking together with the price and
// estimated delivery date derived from its service class. It is what a client
// submits to the Booking Store and what the store keeps verbatim.
type Details struct {
	fromLocation          kernel.Location
	toLocation            kernel.Location
	serviceClass          ServiceClass
	pickupAddress         string
	deliveryAddress       string
	receiverName          string
	price                 decimal.Decimal
	estimatedDeliveryDate string
	guard                 guard.ConstructorGuard
}

// NewDetails validates and assembles booking details. All validation failures
// are reported together.
//
// Rules:
//   - both locations must be constructed and must differ
//   - service class, addresses, receiver name and delivery date must not be blank
//   - price must be greater than 0
//
// The estimated delivery date is an already formatted display string and is
// stored as given.
func NewDetails(
	from, to kernel.Location,
	class ServiceClass,
	pickupAddress, deliveryAddress, receiverName string,
	price decimal.Decimal,
	estimatedDeliveryDate string,
) (Details, error) {
	d := Details{}
	if err := errors.Join(
		d.setLocations(from, to),
		d.setServiceClass(class),
		d.setText(&d.pickupAddress, "pickupAddress", pickupAddress),
		d.setText(&d.deliveryAddress, "deliveryAddress", deliveryAddress),
		d.setText(&d.receiverName, "receiverName", receiverName),
		d.setPrice(price),
		d.setText(&d.estimatedDeliveryDate, "estimatedDeliveryDate", estimatedDeliveryDate),
	); err != nil {
		return Details{}, err
	}

	d.guard = guard.NewConstructorGuard()
	return d, nil
}

func (d Details) FromLocation() kernel.Location { return d.fromLocation }
func (d Details) ToLocation() kernel.Location   { return d.toLocation }
func (d Details) ServiceClass() ServiceClass    { return d.serviceClass }
func (d Details) PickupAddress() string         { return d.pickupAddress }
func (d Details) DeliveryAddress() string       { return d.deliveryAddress }
func (d Details) ReceiverName() string          { return d.receiverName }
func (d Details) Price() decimal.Decimal        { return d.price }

// EstimatedDeliveryDate returns the formatted date string exactly as quoted.
func (d Details) EstimatedDeliveryDate() string { return d.estimatedDeliveryDate }

// Validate returns ErrDetailsAreNotConstructed for a zero Details value.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

func (d *Details) setLocations(from, to kernel.Location) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return errs.NewValueIsInvalidErrorWithCause("toLocation", ErrSameLocation)
	}
	d.fromLocation = from
	d.toLocation = to
	return nil
}

func (d *Details) setServiceClass(class ServiceClass) error {
	if class.IsEmpty() {
		return errs.NewValueIsRequiredError("serviceClass")
	}
	d.serviceClass = class
	return nil
}

func (d *Details) setText(dst *string, param, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}

func (d *Details) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price.String()))
	}
	d.price = price
	return nil
}
