package kernel

import (
	"strings"

	"fastex/internal/pkg/errs"
	"fastex/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use a zero Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location names a town from the delivery catalog. It has no structure beyond
// its name and two locations are equal when their names are equal.
//
// Example:
//
//	from, err := kernel.NewLocation("Dublin")
//	if err != nil {
//	    // Handle validation error
//	}
//	to, _ := kernel.NewLocation("Cork")
//	from.IsEqual(to) // false
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from a catalog name. Surrounding whitespace is
// trimmed and the remaining name must not be empty.
func NewLocation(name string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}

	return Location{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewLocation is NewLocation for catalog constants and tests; it panics on
// an invalid name.
func MustNewLocation(name string) Location {
	loc, err := NewLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Name returns the catalog name.
func (l Location) Name() string {
	return l.name
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return l.name
}

// IsEqual reports whether both locations name the same town.
func (l Location) IsEqual(other Location) bool {
	return l.name == other.name
}

// Validate returns ErrLocationIsNotConstructed for a zero Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
