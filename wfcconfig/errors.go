package wfcconfig

import "errors"

// ErrInvalidPatternSize indicates patternSize is non-positive.
var ErrInvalidPatternSize = errors.New("wfcconfig: pattern size must be > 0")

// ErrInvalidOutputSize indicates a non-positive output width or height.
var ErrInvalidOutputSize = errors.New("wfcconfig: output width and height must be > 0")

// ErrInvalidBacktrackConfig indicates a non-positive maxDepth or
// maxIterations while backtracking is enabled.
var ErrInvalidBacktrackConfig = errors.New("wfcconfig: maxDepth and maxIterations must be > 0 when backtracking is enabled")
