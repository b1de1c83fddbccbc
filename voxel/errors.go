package voxel

import "errors"

var (
	// ErrInvalidSize indicates a grid side length below 1.
	ErrInvalidSize = errors.New("voxel: grid size must be at least 1")
	// ErrDimensions indicates a nested grid that is not a cube.
	ErrDimensions = errors.New("voxel: invalid dimensions")
)
