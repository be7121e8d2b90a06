package runtime

import (
	"errors"
	"fmt"
)

// Sentinel errors for constructor-call failures. CallError values returned
// by Signature.Bind match these through errors.Is.
var (
	// ErrTooManyArgs is matched when more positional values are passed
	// than the signature's positional region accepts.
	ErrTooManyArgs = errors.New("derivepy: too many positional arguments")

	// ErrUnexpectedKeyword is matched when a keyword does not name any
	// parameter of the signature.
	ErrUnexpectedKeyword = errors.New("derivepy: unexpected keyword argument")

	// ErrDuplicateArg is matched when a parameter receives both a
	// positional and a keyword value.
	ErrDuplicateArg = errors.New("derivepy: multiple values for argument")

	// ErrMissingArg is matched when a required parameter is left unbound.
	ErrMissingArg = errors.New("derivepy: missing required argument")

	// ErrArgType is matched when a bound value cannot be converted to the
	// field's declared type.
	ErrArgType = errors.New("derivepy: argument type mismatch")
)

type callErrKind int

const (
	errTooManyArgs callErrKind = iota
	errUnexpectedKeyword
	errDuplicateArg
	errMissingArg
	errArgType
)

// CallError reports a constructor-call binding failure.
type CallError struct {
	// Func is the exposed type name of the constructor, if known.
	Func string
	// Arg is the offending argument name, if any.
	Arg string

	kind callErrKind
	msg  string
}

func newCallError(fn, arg string, kind callErrKind, format string, a ...any) *CallError {
	return &CallError{Func: fn, Arg: arg, kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Error returns the error string.
func (e *CallError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("derivepy: %s(): %s", e.Func, e.msg)
	}
	return "derivepy: " + e.msg
}

// Is reports whether the target matches the sentinel for this failure.
func (e *CallError) Is(target error) bool {
	switch e.kind {
	case errTooManyArgs:
		return target == ErrTooManyArgs
	case errUnexpectedKeyword:
		return target == ErrUnexpectedKeyword
	case errDuplicateArg:
		return target == ErrDuplicateArg
	case errMissingArg:
		return target == ErrMissingArg
	case errArgType:
		return target == ErrArgType
	}
	return false
}

// IsCallError returns true if the error is a CallError.
func IsCallError(err error) bool {
	if err == nil {
		return false
	}
	var e *CallError
	return errors.As(err, &e)
}
