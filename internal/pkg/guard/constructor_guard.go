// Package guard holds the constructor guard shared by value objects, commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it in a
// type whose zero value is not a valid instance and check it from Validate:
//
//	var ErrQuoteNotConstructed = errors.New("Quote must be created via NewQuote")
//
//	type Quote struct {
//	    price decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
