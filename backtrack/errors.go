package backtrack

import "errors"

// ErrExhausted indicates Draw was called with the stack empty, or the
// stack became empty while serving the draw — the "sentinel empty" result
// the Solver must treat as unrecoverable.
var ErrExhausted = errors.New("backtrack: stack is empty, no recovery possible")
