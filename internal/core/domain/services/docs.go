// Package services provides domain services for the booking system: logic that
// does not belong to a single aggregate.
//
// The package includes:
//   - Pricing: Derives the price and estimated delivery date of a service class
//
// Pricing is pure. Given the same class and reference time it always produces
// the same quote.
package services
