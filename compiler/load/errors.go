package load

import (
	"errors"
	"fmt"
)

// ErrDirective is the sentinel matched by every DirectiveError.
var ErrDirective = errors.New("derivepy: invalid directive")

// DirectiveError reports a malformed or conflicting directive, identifying
// the type and field it was attached to.
type DirectiveError struct {
	Type      string // type being processed
	Field     string // field name, empty for type-level directives
	Directive string // offending directive or tag namespace
	Message   string
}

// Error returns the error string.
func (e *DirectiveError) Error() string {
	target := e.Type
	if e.Field != "" {
		target += "." + e.Field
	}
	if e.Directive != "" {
		return fmt.Sprintf("derivepy: invalid directive on %s: %s: %s", target, e.Directive, e.Message)
	}
	return fmt.Sprintf("derivepy: invalid directive on %s: %s", target, e.Message)
}

// Is reports whether the target matches the directive sentinel.
func (e *DirectiveError) Is(target error) bool {
	return target == ErrDirective
}

// NewDirectiveError returns a new DirectiveError.
func NewDirectiveError(typeName, fieldName, directive, format string, a ...any) *DirectiveError {
	return &DirectiveError{
		Type:      typeName,
		Field:     fieldName,
		Directive: directive,
		Message:   fmt.Sprintf(format, a...),
	}
}

// IsDirectiveError returns true if the error is a DirectiveError.
func IsDirectiveError(err error) bool {
	if err == nil {
		return false
	}
	var e *DirectiveError
	return errors.As(err, &e)
}
