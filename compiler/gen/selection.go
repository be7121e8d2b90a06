package gen

import (
	"github.com/derivepy/derivepy/compiler/load"
)

// Participation predicates, one per operation family. Each resolves the
// field's explicit directive against the operation's visibility default,
// mirroring the directive semantics of the customization namespace: a bare
// readable field feeds the readable-only operations, a readable-or-writable
// field feeds the representation operations, and every field feeds the
// constructor unless opted out.

// InNew reports whether the field is a constructor argument.
func (f *Field) InNew() bool { return orElse(f.def.New, true) }

// InRepr reports whether the field appears in PyRepr output.
func (f *Field) InRepr() bool { return orElse(f.def.Repr, f.Visible()) }

// InStr reports whether the field appears in PyStr output.
func (f *Field) InStr() bool { return orElse(f.def.Str, f.Visible()) }

// InIter reports whether the field's value is yielded by PyIter and
// PyReversed.
func (f *Field) InIter() bool { return orElse(f.def.Iter, f.Readable()) }

// InLen reports whether the field is counted by PyLen.
func (f *Field) InLen() bool { return orElse(f.def.Len, f.Readable()) }

// InMatchArgs reports whether the field's label appears in PyMatchArgs.
func (f *Field) InMatchArgs() bool { return orElse(f.def.MatchArgs, f.Readable()) }

// InFields reports whether the field appears in the PyFields metadata.
func (f *Field) InFields() bool { return orElse(f.def.DataclassField, f.Readable()) }

// InAnnotations reports whether the field appears in the PyAnnotations
// mapping: it must carry an annotation directive and be visible.
func (f *Field) InAnnotations() bool { return f.def.Annotation != "" && f.Visible() }

// Selection returns the ordered subset of fields that participate in the
// operation: declaration order filtered by the operation's visibility
// requirement and the field's skip directives. Relative order within the
// subset always follows declaration order. An empty selection is valid.
// Whole-record operations (eq, ord, richcmp, hash) delegate to a
// capability on the record and select no fields.
func (t *Type) Selection(op load.Op) []*Field {
	var in func(*Field) bool
	switch op {
	case load.OpNew:
		in = (*Field).InNew
	case load.OpRepr:
		in = (*Field).InRepr
	case load.OpStr:
		in = (*Field).InStr
	case load.OpIter, load.OpReversed:
		in = (*Field).InIter
	case load.OpLen:
		in = (*Field).InLen
	case load.OpMatchArgs:
		in = (*Field).InMatchArgs
	case load.OpFields:
		in = (*Field).InFields
	case load.OpAnnotations:
		in = (*Field).InAnnotations
	default:
		return nil
	}
	var sel []*Field
	for _, f := range t.Fields {
		if in(f) {
			sel = append(sel, f)
		}
	}
	return sel
}
