// Package gen builds the per-type field catalogue from loaded schemas,
// resolves names, selections and defaults for every requested operation,
// and drives the slot emitters.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the generation-time failure taxonomy.
var (
	// ErrInvalidSchema indicates a schema that fails catalogue validation.
	ErrInvalidSchema = errors.New("derivepy: invalid schema")
	// ErrOrdering indicates a required constructor argument after a
	// defaulted one.
	ErrOrdering = errors.New("derivepy: argument ordering violation")
	// ErrNameCollision indicates two fields resolving to the same name in
	// one context.
	ErrNameCollision = errors.New("derivepy: name collision")
	// ErrMissingConfig indicates a generator configuration error.
	ErrMissingConfig = errors.New("derivepy: missing configuration")
)

// SchemaError represents a catalogue validation error.
type SchemaError struct {
	Type    string // type name
	Field   string // field name, if applicable
	Message string
	Cause   error
}

// Error returns the error string.
func (e *SchemaError) Error() string {
	msg := "derivepy: schema error on type " + e.Type
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the schema sentinel.
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, format string, a ...any) *SchemaError {
	return &SchemaError{Type: typeName, Field: fieldName, Message: fmt.Sprintf(format, a...)}
}

// OrderingError reports a required constructor argument that follows a
// defaulted one in the positional region.
type OrderingError struct {
	Type     string // type name
	Field    string // offending (required) field
	Position int    // declaration position of the offending field
	After    string // the defaulted field it follows
}

// Error returns the error string.
func (e *OrderingError) Error() string {
	return fmt.Sprintf("derivepy: type %s: required argument %q (position %d) follows defaulted argument %q",
		e.Type, e.Field, e.Position, e.After)
}

// Is reports whether the target matches the ordering sentinel.
func (e *OrderingError) Is(target error) bool { return target == ErrOrdering }

// IsOrderingError returns true if the error is an OrderingError.
func IsOrderingError(err error) bool {
	if err == nil {
		return false
	}
	var e *OrderingError
	return errors.As(err, &e)
}

// CollisionError reports two fields resolving to the same external name
// within the same context. Both field identities are carried.
type CollisionError struct {
	Type    string // type name
	Context string // resolution context
	Name    string // the colliding resolved name
	First   string // first field (by declaration order)
	Second  string // second field
}

// Error returns the error string.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("derivepy: type %s: fields %q and %q both resolve to %q in %s context",
		e.Type, e.First, e.Second, e.Name, e.Context)
}

// Is reports whether the target matches the collision sentinel.
func (e *CollisionError) Is(target error) bool { return target == ErrNameCollision }

// IsCollisionError returns true if the error is a CollisionError.
func IsCollisionError(err error) bool {
	if err == nil {
		return false
	}
	var e *CollisionError
	return errors.As(err, &e)
}

// ConfigError represents a generator configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("derivepy: config option %s=%v: %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("derivepy: config option %s: %s", e.Option, e.Message)
}

// Is reports whether the target matches the config sentinel.
func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// AggregateError represents multiple errors collected during a pass.
// Types validate independently, so one pass can surface every failing
// type at once instead of stopping at the first.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "derivepy: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("derivepy: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil. A single error is returned unwrapped.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
