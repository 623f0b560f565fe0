package pattern

import "errors"

// Sentinel errors for pattern analysis.
var (
	// ErrExemplarTooSmall indicates the exemplar is smaller than patternSize
	// in either dimension.
	ErrExemplarTooSmall = errors.New("pattern: exemplar smaller than pattern size")
	// ErrInvalidPatternSize indicates a non-positive patternSize.
	ErrInvalidPatternSize = errors.New("pattern: pattern size must be > 0")
)
