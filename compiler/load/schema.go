package load

import (
	"fmt"
	"strings"
)

// Schema is the validated, serializable form of one annotated struct
// declaration. It is the attribute parser's output and the only input the
// generator consumes; nothing here refers back to the AST.
type Schema struct {
	// Name is the declared Go type name.
	Name string `json:"name,omitempty"`
	// Package is the Go package the declaration lives in.
	Package string `json:"package,omitempty"`
	// Pos is the file:line of the declaration, for diagnostics.
	Pos string `json:"-"`
	// Aliases holds the ordered (exposed name, convention) pairs declared
	// by class directives. The first pair governs the external type and
	// attribute naming, the last governs constructor-argument casing.
	Aliases []Alias `json:"aliases,omitempty"`
	// Derives lists the requested operations in directive order.
	Derives []Op `json:"derives,omitempty"`
	// GetAll marks every field readable, SetAll writable.
	GetAll bool `json:"get_all,omitempty"`
	SetAll bool `json:"set_all,omitempty"`
	// Frozen marks the type immutable after construction.
	Frozen bool `json:"frozen,omitempty"`
	// Fields holds the field descriptors in declaration order.
	Fields []*Field `json:"fields,omitempty"`
}

// Alias is one exposed-name/convention pair from a class directive. Either
// part may be empty: a bare rename_all contributes a pair with the declared
// Go name, a bare name a pair with the identity convention.
type Alias struct {
	Name       string     `json:"name,omitempty"`
	Convention Convention `json:"convention,omitempty"`
}

// Field is the merged, validated descriptor of one struct field.
type Field struct {
	// Name is the Go identifier, or the synthesized numeric fallback for
	// embedded fields.
	Name string `json:"name,omitempty"`
	// Type is the declared type's display string.
	Type string `json:"type,omitempty"`
	// Nullable reports a nullable-by-construction declared type (pointer,
	// slice, map, interface, chan or func); such fields resolve an implied
	// nil default.
	Nullable bool `json:"nullable,omitempty"`
	// Position is the zero-based declaration position.
	Position int `json:"position"`
	// Embedded marks a field declared without an identifier.
	Embedded bool `json:"embedded,omitempty"`
	// Pos is the file:line of the field, for diagnostics.
	Pos string `json:"-"`

	// Get and Set are the merged visibility flags.
	Get bool `json:"get,omitempty"`
	Set bool `json:"set,omitempty"`

	// Renames maps context to explicit rename. The empty context applies
	// to all contexts that have no entry of their own.
	Renames map[Context]string `json:"renames,omitempty"`

	// Participation overrides, nil when the directive was not given.
	Repr           *bool `json:"repr,omitempty"`
	Str            *bool `json:"str,omitempty"`
	New            *bool `json:"new,omitempty"`
	Iter           *bool `json:"iter,omitempty"`
	Len            *bool `json:"len,omitempty"`
	MatchArgs      *bool `json:"match_args,omitempty"`
	DataclassField *bool `json:"dataclass_field,omitempty"`

	// Default is the author-supplied default expression.
	Default    string `json:"default,omitempty"`
	HasDefault bool   `json:"has_default,omitempty"`
	// DefaultFactory reports that the default is exposed through the
	// field metadata as a factory rather than a fixed value.
	DefaultFactory bool `json:"default_factory,omitempty"`
	// KwOnly marks this and all following fields keyword-only in the
	// constructor.
	KwOnly bool `json:"kw_only,omitempty"`
	// Annotation is the declared external type annotation, if any.
	Annotation string `json:"annotation,omitempty"`
}

// Readable reports whether the field is exposed for reading.
func (f *Field) Readable() bool { return f.Get }

// Writable reports whether the field is exposed for writing.
func (f *Field) Writable() bool { return f.Set }

// Rename returns the explicit rename for the context: a per-context entry
// wins, else the all-context entry applies. ok is false when neither is
// present.
func (f *Field) Rename(ctx Context) (string, bool) {
	if name, ok := f.Renames[ctx]; ok {
		return name, true
	}
	name, ok := f.Renames[""]
	return name, ok
}

// directivePrefix introduces type-level directives in doc comments.
const directivePrefix = "derivepy:"

// parseClassDirectives reads the derivepy: lines of a type's doc comment
// into the schema. Lines without the prefix are ordinary documentation and
// ignored. found reports whether any directive line was present.
func parseClassDirectives(s *Schema, doc []string) (found bool, err error) {
	for _, line := range doc {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "//"))
		if !strings.HasPrefix(line, directivePrefix) {
			continue
		}
		found = true
		rest := strings.TrimPrefix(line, directivePrefix)
		verb, args, _ := strings.Cut(rest, " ")
		switch verb {
		case "class":
			if err := parseClassLine(s, args); err != nil {
				return true, NewDirectiveError(s.Name, "", "derivepy:class", "%v", err)
			}
		case "derive":
			if err := parseDeriveLine(s, args); err != nil {
				return true, NewDirectiveError(s.Name, "", "derivepy:derive", "%v", err)
			}
		default:
			return true, NewDirectiveError(s.Name, "", line, "unknown directive verb %q; known verbs are class, derive", verb)
		}
	}
	if len(s.Aliases) > 2 {
		return true, NewDirectiveError(s.Name, "", "derivepy:class",
			"%d exposed-name pairs declared; at most two are supported (first names the type, last names the arguments)", len(s.Aliases))
	}
	return found, err
}

// parseClassLine parses one `derivepy:class` directive. Each line with a
// name or rename_all token contributes one alias pair, in order.
func parseClassLine(s *Schema, args string) error {
	var (
		alias    Alias
		hasAlias bool
	)
	for _, tok := range strings.Fields(args) {
		key, value, hasValue := cutKey(tok)
		switch key {
		case "name":
			if !hasValue || value == "" {
				return fmt.Errorf("name requires a value")
			}
			if alias.Name != "" {
				return fmt.Errorf("name may only be specified once per class directive")
			}
			alias.Name, hasAlias = value, true
		case "rename_all":
			if !hasValue {
				return fmt.Errorf("rename_all requires a value")
			}
			conv, err := ParseConvention(value)
			if err != nil {
				return err
			}
			if alias.Convention != ConventionNone {
				return fmt.Errorf("rename_all may only be specified once per class directive")
			}
			alias.Convention, hasAlias = conv, true
		case "get_all":
			s.GetAll = true
		case "set_all":
			s.SetAll = true
		case "frozen":
			s.Frozen = true
		default:
			return fmt.Errorf("unknown class directive %q; known directives are name, rename_all, get_all, set_all, frozen", key)
		}
	}
	if hasAlias {
		s.Aliases = append(s.Aliases, alias)
	}
	return nil
}

// parseDeriveLine parses one `derivepy:derive` directive listing requested
// operations, separated by commas or spaces.
func parseDeriveLine(s *Schema, args string) error {
	seen := make(map[Op]bool, len(s.Derives))
	for _, op := range s.Derives {
		seen[op] = true
	}
	for _, tok := range strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		op, err := ParseOp(tok)
		if err != nil {
			return err
		}
		if seen[op] {
			return fmt.Errorf("operation %q requested more than once", op)
		}
		seen[op] = true
		s.Derives = append(s.Derives, op)
	}
	return nil
}

// Derived reports whether the schema requests the operation.
func (s *Schema) Derived(op Op) bool {
	for _, d := range s.Derives {
		if d == op {
			return true
		}
	}
	return false
}

// mergeField combines the two tag namespaces and the type-level visibility
// defaults into one validated field descriptor. A shared directive present
// in both namespaces with different values is a conflict, never a silent
// override.
func mergeField(s *Schema, f *Field, vis *visOptions, custom *customOptions) error {
	f.Get = s.GetAll || vis.get
	f.Set = s.SetAll || vis.set

	f.Renames = make(map[Context]string)
	if vis.name != "" {
		f.Renames[""] = vis.name
	}
	if custom.hasAllRename {
		if vis.name != "" && vis.name != custom.allRename {
			return NewDirectiveError(s.Name, f.Name, "name",
				"conflicting renames %q (%s tag) and %q (%s tag)", vis.name, VisibilityTag, custom.allRename, CustomTag)
		}
		f.Renames[""] = custom.allRename
	}
	for ctx, name := range custom.renames {
		f.Renames[ctx] = name
	}
	if len(f.Renames) == 0 {
		f.Renames = nil
	}

	f.Repr = custom.repr
	f.Str = custom.str
	f.New = custom.initArg
	f.Iter = custom.iter
	f.Len = custom.length
	f.MatchArgs = custom.matchArgs
	f.DataclassField = custom.dataclassField
	f.KwOnly = custom.kwOnly
	f.Default, f.HasDefault = custom.defaultExpr, custom.hasDefault
	f.DefaultFactory = custom.defaultFactory
	f.Annotation = custom.annotation

	if f.DefaultFactory && !f.HasDefault {
		return NewDirectiveError(s.Name, f.Name, "default_factory", "default_factory requires a default expression")
	}
	return nil
}
