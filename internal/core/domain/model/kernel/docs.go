// Package kernel provides core domain primitives shared by the booking model.
//
// The package includes:
//   - UUID: A value object for booking identifiers with validation and comparison
//   - Location: A value object naming a town from the delivery catalog
//
// Both primitives are immutable and their zero values are invalid; use the
// constructors so that validation always runs.
package kernel
