package strength

import "errors"

var (
	// ErrInvalidGridSize indicates an interior side that
	// cannot be partitioned into whole blocks on some pass.
	ErrInvalidGridSize = errors.New("strength: grid size not divisible by block size")
	// ErrInvalidEstimator indicates a non-positive block
	// size or pass count.
	ErrInvalidEstimator = errors.New("strength: block size and passes must be positive")
)
