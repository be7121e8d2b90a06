package runtime

// FieldKind distinguishes regular constructor-backed fields from class-var
// fields, which are present on the type but excluded from construction.
type FieldKind int

const (
	// KindField is a regular field: constructed, represented, iterated.
	KindField FieldKind = iota
	// KindClassVar marks a field excluded from the constructor arguments.
	KindClassVar
)

// String returns the kind name.
func (k FieldKind) String() string {
	if k == KindClassVar {
		return "ClassVar"
	}
	return "Field"
}

// Field is one entry of the reflective field metadata returned by the
// PyFields slot. It mirrors the information the host's dataclass-style
// helpers read: name, type display string, default, and participation
// flags. Entries appear in field declaration order.
type Field struct {
	// Name is the resolved external attribute name.
	Name string
	// Type is the declared-type display string: the annotation when one
	// was supplied, the native type otherwise.
	Type string
	// Default is the resolved default value. Meaningful only when
	// HasDefault is set and DefaultFactory is nil.
	Default any
	// HasDefault reports whether the field resolves a default at all.
	HasDefault bool
	// DefaultFactory, when non-nil, produces the default on each call
	// instead of Default holding a fixed value.
	DefaultFactory func() any
	// Init reports whether the field is an argument of the constructor.
	Init bool
	// Repr reports whether the field participates in PyRepr output.
	Repr bool
	// KwOnly reports whether the constructor accepts the field by keyword
	// only.
	KwOnly bool
	// Kind is KindClassVar for fields excluded from construction.
	Kind FieldKind
}
