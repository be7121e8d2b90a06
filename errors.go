package derivepy

import (
	"errors"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
)

// Classification helpers over the compiler's failure taxonomy. Callers
// that embed Generate can branch on the failure class without importing
// the compiler packages.

// IsDirectiveError returns true if the error stems from a malformed or
// conflicting directive on a declaration.
func IsDirectiveError(err error) bool {
	return load.IsDirectiveError(err)
}

// IsOrderingError returns true if the error reports a required
// constructor argument after a defaulted one.
func IsOrderingError(err error) bool {
	return gen.IsOrderingError(err)
}

// IsCollisionError returns true if the error reports two fields resolving
// to the same external name.
func IsCollisionError(err error) bool {
	return gen.IsCollisionError(err)
}

// IsAggregateError returns true if the error bundles failures from more
// than one type, and if so yields the individual errors.
func IsAggregateError(err error) ([]error, bool) {
	if err == nil {
		return nil, false
	}
	var e *gen.AggregateError
	if errors.As(err, &e) {
		return e.Errors, true
	}
	return nil, false
}
