package booking

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceClass is the delivery tier chosen for a booking. Values outside the
// declared constants are allowed and priced with the default tariff.
type ServiceClass string

const (
	OneDay   ServiceClass = "ONE_DAY"
	Express  ServiceClass = "EXPRESS"
	Standard ServiceClass = "STANDARD"
	Cheaper  ServiceClass = "CHEAPER"
)

// Tariff is the price multiplier and lead time of a service class.
type Tariff struct {
	Multiplier   decimal.Decimal
	LeadTimeDays int
}

// tariffs is the declarative price table. Adding a tier means adding a row here
// and to serviceClassOrder.
var tariffs = map[ServiceClass]Tariff{
	OneDay:   {Multiplier: decimal.NewFromInt(3), LeadTimeDays: 1},
	Express:  {Multiplier: decimal.NewFromInt(2), LeadTimeDays: 2},
	Standard: {Multiplier: decimal.RequireFromString("1.5"), LeadTimeDays: 3},
	Cheaper:  {Multiplier: decimal.NewFromInt(1), LeadTimeDays: 5},
}

// DefaultTariff applies to empty and unrecognized classes.
var DefaultTariff = Tariff{Multiplier: decimal.NewFromInt(1), LeadTimeDays: 3}

var serviceClassOrder = []ServiceClass{Standard, Express, OneDay, Cheaper}

// ParseServiceClass normalizes user or wire input. Case and surrounding
// whitespace are ignored and the legacy spelling "ONE-DAY" maps to OneDay.
// Unknown values are returned as-is (upper-cased) rather than rejected.
func ParseServiceClass(s string) ServiceClass {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	return ServiceClass(normalized)
}

// ServiceClasses lists the recognized classes in catalog order.
func ServiceClasses() []ServiceClass {
	out := make([]ServiceClass, len(serviceClassOrder))
	copy(out, serviceClassOrder)
	return out
}

// IsRecognized reports whether the class has its own row in the tariff table.
func (c ServiceClass) IsRecognized() bool {
	_, ok := tariffs[c]
	return ok
}

// IsEmpty reports whether no class was selected.
func (c ServiceClass) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Tariff returns the class's row of the price table, or DefaultTariff.
func (c ServiceClass) Tariff() Tariff {
	if t, ok := tariffs[c]; ok {
		return t
	}
	return DefaultTariff
}

func (c ServiceClass) String() string {
	return string(c)
}
