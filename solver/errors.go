package solver

import "errors"

// ErrInvalidOutputSize indicates a non-positive output width or height.
var ErrInvalidOutputSize = errors.New("solver: output width and height must be > 0")

// ErrEmptyCatalog indicates a RuleTable/Catalog pair with zero patterns.
var ErrEmptyCatalog = errors.New("solver: catalog has no patterns")
