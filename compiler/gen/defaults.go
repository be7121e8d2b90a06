package gen

import (
	"github.com/derivepy/derivepy/compiler/load"
)

// Default is a field's resolved constructor default.
type Default struct {
	// Expr is the Go expression producing the default value.
	Expr string
	// Implied reports an implied nil default of a nullable-by-construction
	// type rather than an author-supplied expression.
	Implied bool
}

// ResolveDefault computes the field's default: the author-supplied
// expression when present, an implied nil for nullable-by-construction
// declared types, else none (the argument is required).
func (f *Field) ResolveDefault() (Default, bool) {
	if f.def.HasDefault {
		return Default{Expr: f.def.Default}, true
	}
	if f.Nullable {
		return Default{Expr: "nil", Implied: true}, true
	}
	return Default{}, false
}

// Optional reports whether the field resolves any default.
func (f *Field) Optional() bool {
	_, ok := f.ResolveDefault()
	return ok
}

// DefaultExpr returns the resolved default expression, or the empty string
// for required fields.
func (f *Field) DefaultExpr() string {
	d, ok := f.ResolveDefault()
	if !ok {
		return ""
	}
	return d.Expr
}

// validateDefaultOrder walks the constructor selection in declaration
// order and verifies that no required argument follows a defaulted one
// within the positional region. Keyword-only arguments are exempt: they
// are bound by name, so their defaults impose no ordering. A violation is
// reported at generation time with the offending field's position, never
// deferred to first use.
func (t *Type) validateDefaultOrder() error {
	var defaulted *Field
	for _, f := range t.Selection(load.OpNew) {
		if f.KwOnly() {
			break
		}
		if f.Optional() {
			defaulted = f
			continue
		}
		if defaulted != nil {
			return &OrderingError{
				Type:     t.Name,
				Field:    f.Name,
				Position: f.Position,
				After:    defaulted.Name,
			}
		}
	}
	return nil
}
