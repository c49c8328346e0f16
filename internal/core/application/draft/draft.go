// Package draft holds the customer's booking under construction. The draft is
// a plain value mutated only through Manager, which keeps its derived price and
// delivery date in step with the selected service class.
package draft

import (
	"fmt"

	"fastex/internal/core/domain/model/booking"
	"fastex/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Field names a draft field. Values match the JSON keys used on the wire.
type Field string

const (
	FieldFromLocation          Field = "fromLocation"
	FieldToLocation            Field = "toLocation"
	FieldServiceClass          Field = "serviceClass"
	FieldPickupAddress         Field = "pickupAddress"
	FieldDeliveryAddress       Field = "deliveryAddress"
	FieldReceiverName          Field = "receiverName"
	FieldPrice                 Field = "price"
	FieldEstimatedDeliveryDate Field = "estimatedDeliveryDate"
)

// requiredFields is the order in which submission validation reports blanks.
var requiredFields = []Field{
	FieldFromLocation,
	FieldToLocation,
	FieldServiceClass,
	FieldPickupAddress,
	FieldDeliveryAddress,
	FieldReceiverName,
}

// Draft is an unsubmitted booking. Price and EstimatedDeliveryDate are derived.
type Draft struct {
	FromLocation          string
	ToLocation            string
	ServiceClass          booking.ServiceClass
	PickupAddress         string
	DeliveryAddress       string
	ReceiverName          string
	Price                 decimal.Decimal
	EstimatedDeliveryDate string
}

// Value returns the current value of a customer-editable field.
func (d Draft) Value(field Field) (string, error) {
	switch field {
	case FieldFromLocation:
		return d.FromLocation, nil
	case FieldToLocation:
		return d.ToLocation, nil
	case FieldServiceClass:
		return d.ServiceClass.String(), nil
	case FieldPickupAddress:
		return d.PickupAddress, nil
	case FieldDeliveryAddress:
		return d.DeliveryAddress, nil
	case FieldReceiverName:
		return d.ReceiverName, nil
	case FieldPrice:
		return d.Price.StringFixed(2), nil
	case FieldEstimatedDeliveryDate:
		return d.EstimatedDeliveryDate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
}

// Details converts the draft into booking details for submission.
func (d Draft) Details() (booking.Details, error) {
	from, err := kernel.NewLocation(d.FromLocation)
	if err != nil {
		return booking.Details{}, &ValidationError{Field: FieldFromLocation, Cause: err}
	}
	to, err := kernel.NewLocation(d.ToLocation)
	if err != nil {
		return booking.Details{}, &ValidationError{Field: FieldToLocation, Cause: err}
	}

	return booking.NewDetails(
		from,
		to,
		d.ServiceClass,
		d.PickupAddress,
		d.DeliveryAddress,
		d.ReceiverName,
		d.Price,
		d.EstimatedDeliveryDate,
	)
}

func (d *Draft) set(field Field, value string) error {
	switch field {
	case FieldFromLocation:
		d.FromLocation = value
	case FieldToLocation:
		d.ToLocation = value
	case FieldPickupAddress:
		d.PickupAddress = value
	case FieldDeliveryAddress:
		d.DeliveryAddress = value
	case FieldReceiverName:
		d.ReceiverName = value
	case FieldPrice, FieldEstimatedDeliveryDate:
		return fmt.Errorf("%w: %s", ErrDerivedField, field)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}
