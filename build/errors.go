package build

import "errors"

// ErrNoRandSource indicates a Simulator without a random
// source.
var ErrNoRandSource = errors.New("build: simulator needs a random source")
