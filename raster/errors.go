package raster

import "errors"

// Sentinel errors for raster operations.
var (
	// ErrInvalidDimensions indicates non-positive width, height, or channel count.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")
	// ErrOutOfBounds indicates a pixel coordinate outside the raster's extent.
	ErrOutOfBounds = errors.New("raster: coordinate out of bounds")
	// ErrChannelMismatch indicates a pixel slice whose length does not equal C.
	ErrChannelMismatch = errors.New("raster: pixel length does not match channel count")
	// ErrUnsupportedChannels indicates a channel count other than 3 (RGB) or 4 (RGBA).
	ErrUnsupportedChannels = errors.New("raster: only 3 (RGB) or 4 (RGBA) channels are supported")
)
