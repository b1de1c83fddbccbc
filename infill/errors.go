package infill

import "errors"

var (
	// ErrInvalidGridSize indicates a size or density that
	// leaves no room for a single stripe.
	ErrInvalidGridSize = errors.New("infill: density rounds the stripe count to zero")
	// ErrInvalidSlope indicates a zero slope for the grid
	// pattern, whose perpendicular would be infinite.
	ErrInvalidSlope = errors.New("infill: grid slope must be non-zero")
	// ErrUnknownKind indicates an unrecognized pattern name.
	ErrUnknownKind = errors.New("infill: unknown pattern kind")
)
