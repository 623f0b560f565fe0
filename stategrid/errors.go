package stategrid

import "errors"

// ErrInvalidDimensions indicates a non-positive width, height, or pattern count.
var ErrInvalidDimensions = errors.New("stategrid: width, height, and pattern count must be > 0")

// ErrIndexOutOfBounds indicates a cell coordinate outside the grid's extent.
var ErrIndexOutOfBounds = errors.New("stategrid: coordinate out of bounds")
