package load

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-openapi/inflect"
)

// Op identifies one protocol operation the generator can derive.
type Op string

// The full catalogue of derivable operations.
const (
	OpNew         Op = "new"
	OpRepr        Op = "repr"
	OpStr         Op = "str"
	OpEq          Op = "eq"
	OpOrd         Op = "ord"
	OpRichCmp     Op = "richcmp"
	OpHash        Op = "hash"
	OpIter        Op = "iter"
	OpReversed    Op = "reversed"
	OpLen         Op = "len"
	OpMatchArgs   Op = "match_args"
	OpFields      Op = "fields"
	OpAnnotations Op = "annotations"
)

// Ops lists every operation in a stable order.
var Ops = []Op{
	OpNew, OpRepr, OpStr, OpEq, OpOrd, OpRichCmp, OpHash,
	OpIter, OpReversed, OpLen, OpMatchArgs, OpFields, OpAnnotations,
}

// ParseOp validates an operation name from a derive directive.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	for _, known := range Ops {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q; known operations are %s", s, opList())
}

func opList() string {
	names := make([]string, len(Ops))
	for i, op := range Ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// Convention is a casing transform applied to field identifiers when
// resolving external names. The zero value is the identity transform.
type Convention string

// Recognized naming conventions, spelled the way they appear in the
// rename_all directive.
const (
	ConventionNone          Convention = ""
	CamelCase               Convention = "camelCase"
	PascalCase              Convention = "PascalCase"
	SnakeCase               Convention = "snake_case"
	KebabCase               Convention = "kebab-case"
	ScreamingSnakeCase      Convention = "SCREAMING_SNAKE_CASE"
	ScreamingKebabCase      Convention = "SCREAMING-KEBAB-CASE"
	LowerCase               Convention = "lowercase"
	UpperCase               Convention = "UPPERCASE"
)

var conventions = map[Convention]struct{}{
	CamelCase: {}, PascalCase: {}, SnakeCase: {}, KebabCase: {},
	ScreamingSnakeCase: {}, ScreamingKebabCase: {}, LowerCase: {}, UpperCase: {},
}

// ParseConvention validates a rename_all value.
func ParseConvention(s string) (Convention, error) {
	c := Convention(s)
	if _, ok := conventions[c]; !ok {
		keys := make([]string, 0, len(conventions))
		for k := range conventions {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		return "", fmt.Errorf("unknown naming convention %q; possible values are %s", s, strings.Join(keys, ", "))
	}
	return c, nil
}

// Apply transforms an identifier under the convention.
func (c Convention) Apply(name string) string {
	switch c {
	case CamelCase:
		return inflect.CamelizeDownFirst(name)
	case PascalCase:
		return inflect.Camelize(name)
	case SnakeCase:
		return inflect.Underscore(name)
	case KebabCase:
		return inflect.Dasherize(name)
	case ScreamingSnakeCase:
		return strings.ToUpper(inflect.Underscore(name))
	case ScreamingKebabCase:
		return strings.ToUpper(strings.ReplaceAll(inflect.Dasherize(name), " ", "-"))
	case LowerCase:
		return strings.ToLower(name)
	case UpperCase:
		return strings.ToUpper(name)
	default:
		return name
	}
}

// Context identifies the usage site of a resolved field name. The empty
// context in a rename table applies to every context.
type Context string

const (
	// ContextAttr is the externally visible attribute name.
	ContextAttr Context = "attr"
	// ContextArg is the constructor-argument name.
	ContextArg Context = "arg"
	// ContextMatch is the positional pattern-match label.
	ContextMatch Context = "match"
)

// Struct-tag namespaces read by the parser. Visibility comes from one
// namespace, customization from the other; the two are merged with explicit
// conflict detection, never silent override.
const (
	// VisibilityTag carries get/set visibility and the shared rename.
	VisibilityTag = "py"
	// CustomTag carries per-operation flags, defaults and renames.
	CustomTag = "derive"
)

// visOptions is the parsed form of the visibility namespace.
type visOptions struct {
	get, set bool
	name     string
}

// customOptions is the parsed form of the customization namespace.
// Tri-state flags distinguish "not mentioned" from an explicit override.
type customOptions struct {
	repr, str, iter, length *bool
	initArg, matchArgs      *bool
	dataclassField          *bool
	kwOnly, defaultFactory  bool
	defaultExpr             string
	hasDefault              bool
	annotation              string
	renames                 map[Context]string
	allRename               string
	hasAllRename            bool
}

// splitDirectives splits a tag value on top-level commas. Commas nested in
// quotes, parentheses, brackets or braces belong to the item, so default
// expressions like `default=map[string]int{"a": 1}` survive intact.
func splitDirectives(s string) []string {
	var (
		items []string
		depth int
		quote rune
		start int
	)
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote && (i == 0 || s[i-1] != '\\') {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
		case r == ',' && depth == 0:
			items = append(items, s[start:i])
			start = i + 1
		}
	}
	items = append(items, s[start:])
	out := items[:0]
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// cutKey splits an item into key and value. ok reports whether a value was
// present at all, so a bare flag is distinguishable from key="".
func cutKey(item string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(item, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value), ok
}

func parseBool(key, value string, present bool) (bool, error) {
	if !present || value == "" || value == "true" {
		return true, nil
	}
	if value == "false" {
		return false, nil
	}
	return false, fmt.Errorf("%s: expected true or false, got %q", key, value)
}

// parseVisibility parses the py:"..." tag value.
func parseVisibility(tag string) (*visOptions, error) {
	opts := &visOptions{}
	seen := map[string]bool{}
	for _, item := range splitDirectives(tag) {
		key, value, hasValue := cutKey(item)
		if seen[key] {
			return nil, fmt.Errorf("%s may only be specified once", key)
		}
		seen[key] = true
		switch key {
		case "get":
			if hasValue {
				return nil, fmt.Errorf("get does not take a value")
			}
			opts.get = true
		case "set":
			if hasValue {
				return nil, fmt.Errorf("set does not take a value")
			}
			opts.set = true
		case "name":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("name requires a value")
			}
			opts.name = value
		default:
			return nil, fmt.Errorf("unknown directive %q in %s tag; known directives are get, set, name", key, VisibilityTag)
		}
	}
	return opts, nil
}

// parseCustom parses the derive:"..." tag value.
func parseCustom(tag string) (*customOptions, error) {
	opts := &customOptions{renames: map[Context]string{}}
	seen := map[string]bool{}
	setFlag := func(dst **bool, key, value string, hasValue bool) error {
		b, err := parseBool(key, value, hasValue)
		if err != nil {
			return err
		}
		*dst = &b
		return nil
	}
	for _, item := range splitDirectives(tag) {
		key, value, hasValue := cutKey(item)
		if seen[key] {
			return nil, fmt.Errorf("%s may only be specified once", key)
		}
		seen[key] = true
		var err error
		switch key {
		case "repr":
			err = setFlag(&opts.repr, key, value, hasValue)
		case "str":
			err = setFlag(&opts.str, key, value, hasValue)
		case "new":
			err = setFlag(&opts.initArg, key, value, hasValue)
		case "iter":
			err = setFlag(&opts.iter, key, value, hasValue)
		case "len":
			err = setFlag(&opts.length, key, value, hasValue)
		case "match_args":
			err = setFlag(&opts.matchArgs, key, value, hasValue)
		case "field":
			err = setFlag(&opts.dataclassField, key, value, hasValue)
		case "kw_only":
			opts.kwOnly, err = parseBool(key, value, hasValue)
		case "default_factory":
			opts.defaultFactory, err = parseBool(key, value, hasValue)
		case "default":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("default requires an expression")
			}
			opts.defaultExpr, opts.hasDefault = value, true
		case "annotation":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("annotation requires a value")
			}
			opts.annotation = value
		case "name":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("name requires a value")
			}
			opts.allRename, opts.hasAllRename = value, true
		case "name:attr", "name:arg", "name:match":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("%s requires a value", key)
			}
			opts.renames[Context(strings.TrimPrefix(key, "name:"))] = value
		default:
			return nil, fmt.Errorf("unknown directive %q in %s tag", key, CustomTag)
		}
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}
