package runtime

import (
	"fmt"
	"strings"
)

// Slot names under which the host binding layer dispatches generated
// methods. One slot per protocol operation; the constructor slot is a
// package-level function ("New<Type>") rather than a method.
const (
	SlotNew         = "New"
	SlotRepr        = "PyRepr"
	SlotStr         = "PyStr"
	SlotEq          = "PyEq"
	SlotNe          = "PyNe"
	SlotLt          = "PyLt"
	SlotLe          = "PyLe"
	SlotGt          = "PyGt"
	SlotGe          = "PyGe"
	SlotRichCmp     = "PyRichCmp"
	SlotHash        = "PyHash"
	SlotIter        = "PyIter"
	SlotReversed    = "PyReversed"
	SlotLen         = "PyLen"
	SlotMatchArgs   = "PyMatchArgs"
	SlotFields      = "PyFields"
	SlotAnnotations = "PyAnnotations"
)

// Equaler is the structural-equality capability a record type must provide
// when the eq or richcmp operation is derived. Generated PyEq/PyNe bodies
// are thin adapters over it.
type Equaler interface {
	Equal(other any) bool
}

// Orderer is the partial-order capability required by the ord and richcmp
// operations. Cmp reports a three-way comparison; ok is false when the two
// values are incomparable, in which case every generated comparison adapter
// returns false.
type Orderer interface {
	Cmp(other any) (c int, ok bool)
}

// Hasher is the structural-hash capability required by the hash operation.
type Hasher interface {
	Hash() uint64
}

// Representer customizes the textual form of a value inside generated
// PyRepr/PyStr output. Values that do not implement it are rendered by Repr.
type Representer interface {
	Repr() string
}

// HashValue is the hash width the host runtime expects. The value -1 is
// reserved by the host for error signaling and is never produced.
type HashValue int64

// AsHashValue maps a structural hash into the host's hash-value range.
func AsHashValue(h uint64) HashValue {
	v := HashValue(h)
	if v == -1 {
		v = -2
	}
	return v
}

// CompareOp identifies one of the six rich-comparison operations dispatched
// through the PyRichCmp slot.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// String returns the Python operator symbol for the comparison.
func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// RichCmp evaluates op against an Equaler that may also be an Orderer.
// Generated PyRichCmp bodies delegate here so the dispatch logic lives in
// one place.
func RichCmp(x Equaler, other any, op CompareOp) bool {
	switch op {
	case OpEq:
		return x.Equal(other)
	case OpNe:
		return !x.Equal(other)
	}
	o, ok := x.(Orderer)
	if !ok {
		return false
	}
	c, ok := o.Cmp(other)
	if !ok {
		return false
	}
	switch op {
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGe:
		return c >= 0
	}
	return false
}

// Repr renders a value the way generated PyRepr bodies expect: nil becomes
// None, booleans become True/False, strings are single-quoted, and values
// implementing Representer render themselves. Everything else falls back to
// the %v form.
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return quote(v)
	case Representer:
		return v.Repr()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// quote renders s as a single-quoted literal, escaping embedded quotes and
// backslashes.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
