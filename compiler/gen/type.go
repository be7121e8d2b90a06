package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"

	"github.com/derivepy/derivepy/compiler/load"
)

// The following types and their exported methods are consumed by the slot
// emitters to produce the generated assets.
type (
	// Config holds generation settings shared by all types of one run.
	Config struct {
		// Package is the output package name. Empty means the schema
		// package's own name, resolved by the generator.
		Package string
		// Header is an extra comment placed at the top of generated files.
		Header string
	}

	// Type is the field catalogue of one processed schema: the ordered
	// field descriptors plus the resolved alias and operation sets.
	// It is built once per generation pass and never mutated afterwards.
	Type struct {
		*Config
		schema *load.Schema
		// Name holds the declared Go type name.
		Name string
		// Aliases holds the ordered exposed-name/convention pairs.
		Aliases []load.Alias
		// Fields holds the field descriptors in declaration order.
		Fields []*Field
		fields map[string]*Field
	}

	// Field holds the information of a type field used by the emitters.
	Field struct {
		def *load.Field
		typ *Type
		// Name is the field identifier (or numeric fallback).
		Name string
		// Type is the declared type's display string.
		Type string
		// Nullable reports a nullable-by-construction declared type.
		Nullable bool
		// Position is the zero-based declaration position.
		Position int
		// Embedded marks a synthesized-name embedded field.
		Embedded bool

		kwOnly bool
	}
)

// NewType creates a new type catalogue from the loaded schema and runs
// every generation-time validation: duplicate fields, resolved-name
// collisions per context, and constructor argument ordering when the
// constructor operation is requested. Errors here abort generation for
// this type only.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if schema.Name == "" {
		return nil, NewSchemaError("", "", "missing type name")
	}
	typ := &Type{
		Config:  c,
		schema:  schema,
		Name:    schema.Name,
		Aliases: schema.Aliases,
		fields:  make(map[string]*Field, len(schema.Fields)),
	}
	kwOnly := false
	for _, fd := range schema.Fields {
		if _, ok := typ.fields[fd.Name]; ok {
			return nil, NewSchemaError(schema.Name, fd.Name, "field redeclared")
		}
		// kw_only marks its field and everything after it.
		kwOnly = kwOnly || fd.KwOnly
		f := &Field{
			def:      fd,
			typ:      typ,
			Name:     fd.Name,
			Type:     fd.Type,
			Nullable: fd.Nullable,
			Position: fd.Position,
			Embedded: fd.Embedded,
			kwOnly:   kwOnly,
		}
		typ.Fields = append(typ.Fields, f)
		typ.fields[fd.Name] = f
	}
	if err := typ.checkCollisions(); err != nil {
		return nil, err
	}
	if typ.Derived(load.OpNew) {
		if err := typ.validateDefaultOrder(); err != nil {
			return nil, err
		}
	}
	return typ, nil
}

// Derives returns the requested operations in directive order.
func (t *Type) Derives() []load.Op { return t.schema.Derives }

// Derived reports whether the operation was requested for this type.
func (t *Type) Derived(op load.Op) bool { return t.schema.Derived(op) }

// Frozen reports whether the type was declared immutable.
func (t *Type) Frozen() bool { return t.schema.Frozen }

// ExposedName returns the externally visible type name: the first alias
// pair's name when declared, else the Go type name.
func (t *Type) ExposedName() string {
	for _, a := range t.Aliases {
		if a.Name != "" {
			return a.Name
		}
		break
	}
	return t.Name
}

// attrConvention is the casing applied to attribute and pattern-match
// names: the first alias pair governs external identity.
func (t *Type) attrConvention() load.Convention {
	if len(t.Aliases) == 0 {
		return load.ConventionNone
	}
	return t.Aliases[0].Convention
}

// argConvention is the casing applied to constructor-argument names: the
// last alias pair governs argument casing. With a single pair the two
// conventions coincide.
func (t *Type) argConvention() load.Convention {
	if len(t.Aliases) == 0 {
		return load.ConventionNone
	}
	return t.Aliases[len(t.Aliases)-1].Convention
}

// Package returns the output package name: the configured override when
// set, else the package of the schema's declaration.
func (t *Type) Package() string {
	if t.Config != nil && t.Config.Package != "" {
		return t.Config.Package
	}
	return t.schema.Package
}

// Receiver returns the receiver name used by generated methods.
func (t *Type) Receiver() string {
	for _, r := range t.Name {
		return string(unicode.ToLower(r))
	}
	return "_x"
}

// Label returns the snake_case label of the type.
func (t *Type) Label() string { return snake(t.Name) }

// FileName returns the generated file name for this type.
func (t *Type) FileName() string { return t.Label() + "_derive.go" }

// Pos returns the source position of the declaration.
func (t *Type) Pos() string { return t.schema.Pos }

// snake converts an identifier to snake_case.
func snake(s string) string {
	return strings.ToLower(inflect.Underscore(s))
}

// StructField returns the Go selector used to access the field's value.
// Embedded fields are addressed by their base type name.
func (f *Field) StructField() string {
	if !f.Embedded {
		return f.Name
	}
	name := strings.TrimPrefix(f.Type, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// KwOnly reports whether the field sits in the keyword-only region of the
// constructor: either it carries the kw_only directive itself or an
// earlier field does.
func (f *Field) KwOnly() bool { return f.kwOnly }

// Readable reports whether the field is exposed for reading.
func (f *Field) Readable() bool { return f.def.Readable() }

// Writable reports whether the field is exposed for writing.
func (f *Field) Writable() bool { return f.def.Writable() }

// Visible reports whether the field is exposed at all.
func (f *Field) Visible() bool { return f.Readable() || f.Writable() }

// Annotation returns the declared external type annotation.
func (f *Field) Annotation() string { return f.def.Annotation }

// DefaultFactory reports whether the field metadata exposes the default
// through a factory.
func (f *Field) DefaultFactory() bool { return f.def.DefaultFactory }

// Pos returns the source position of the field.
func (f *Field) Pos() string { return f.def.Pos }

// orElse resolves a tri-state participation flag against its visibility
// default: an explicit directive always wins.
func orElse(flag *bool, fallback bool) bool {
	if flag != nil {
		return *flag
	}
	return fallback
}
