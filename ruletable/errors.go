package ruletable

import "errors"

// ErrEmptyCatalog indicates Build was called with a catalog containing no
// patterns.
var ErrEmptyCatalog = errors.New("ruletable: catalog has no patterns")
