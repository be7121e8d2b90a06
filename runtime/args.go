package runtime

// Param describes one constructor parameter after name and default
// resolution. Params appear in the generated Signature in declaration
// order of the underlying fields.
type Param struct {
	// Name is the resolved constructor-argument name.
	Name string
	// Default holds the resolved default value.
	Default any
	// Factory, when set, produces a fresh default value per call and takes
	// precedence over Default.
	Factory func() any
	// HasDefault reports whether the parameter is optional.
	HasDefault bool
	// KwOnly marks the parameter as keyword-only; keyword-only parameters
	// can never be bound positionally.
	KwOnly bool
}

// Signature is the callable shape of a generated constructor.
type Signature struct {
	// Func is the exposed type name, used in binding diagnostics.
	Func string
	// Params are the constructor parameters in declaration order.
	Params []Param
}

// Args carries the call arguments of a generated constructor: positional
// values followed by keyword values.
type Args struct {
	positional []any
	keywords   map[string]any
	order      []string
}

// NewArgs returns Args holding the given positional values.
func NewArgs(positional ...any) *Args {
	return &Args{positional: positional}
}

// Kwarg adds a keyword argument and returns the receiver for chaining.
// Passing the same name twice is reported at bind time.
func (a *Args) Kwarg(name string, v any) *Args {
	if a.keywords == nil {
		a.keywords = make(map[string]any)
	}
	if _, dup := a.keywords[name]; !dup {
		a.order = append(a.order, name)
	}
	a.keywords[name] = v
	return a
}

// Bind matches args against the signature and returns one value per
// parameter, in parameter order. Binding follows keyword-call rules: the
// positional values fill non-keyword-only parameters left to right, then
// keywords fill by name, then defaults fill what remains. Arity overflow,
// unknown keywords, double bindings and missing required parameters are
// all *CallError values.
func (s *Signature) Bind(args *Args) ([]any, error) {
	if args == nil {
		args = NewArgs()
	}
	values := make([]any, len(s.Params))
	bound := make([]bool, len(s.Params))

	maxPositional := len(s.Params)
	for i, p := range s.Params {
		if p.KwOnly {
			maxPositional = i
			break
		}
	}
	if len(args.positional) > maxPositional {
		return nil, newCallError(s.Func, "", errTooManyArgs,
			"takes %d positional arguments but %d were given", maxPositional, len(args.positional))
	}
	for i, v := range args.positional {
		values[i] = v
		bound[i] = true
	}

	index := make(map[string]int, len(s.Params))
	for i, p := range s.Params {
		index[p.Name] = i
	}
	for _, name := range args.order {
		i, ok := index[name]
		if !ok {
			return nil, newCallError(s.Func, name, errUnexpectedKeyword,
				"got an unexpected keyword argument %q", name)
		}
		if bound[i] {
			return nil, newCallError(s.Func, name, errDuplicateArg,
				"got multiple values for argument %q", name)
		}
		values[i] = args.keywords[name]
		bound[i] = true
	}

	for i, p := range s.Params {
		if bound[i] {
			continue
		}
		if !p.HasDefault {
			return nil, newCallError(s.Func, p.Name, errMissingArg,
				"missing required argument %q", p.Name)
		}
		if p.Factory != nil {
			values[i] = p.Factory()
		} else {
			values[i] = p.Default
		}
	}
	return values, nil
}

// As converts a bound argument value to the field's declared type. A nil
// value yields the zero value, so implied nil defaults of pointer, slice
// and map fields bind cleanly.
func As[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, newCallError("", "", errArgType, "argument has type %T, want %T", v, zero)
	}
	return t, nil
}
