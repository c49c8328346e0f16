// Package errs holds the typed validation and lookup errors shared by the
// domain, the use cases and the adapters.
//
// Every type wraps a sentinel, so callers branch with errors.Is and read the
// offending parameter with errors.As:
//
//	err := booking.NewDetails(dublin, dublin, ...)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    var invalid *errs.ValueIsInvalidError
//	    errors.As(err, &invalid) // invalid.ParamName == "toLocation"
//	}
//
// Types and their sentinels:
//   - ValueIsRequiredError (ErrValueIsRequired): blank field or zero value object
//   - ValueIsInvalidError (ErrValueIsInvalid): malformed or contradictory input
//   - ValueIsOutOfRangeError (ErrValueIsOutOfRange): number outside [Min, Max]
//   - ObjectNotFoundError (ErrObjectNotFound): unknown booking, user or notification
//
// The HTTP adapter maps the first three to 400 and the last to 404.
package errs
