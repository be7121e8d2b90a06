package gen

import (
	"github.com/derivepy/derivepy/compiler/load"
)

// ResolvedName computes the external identifier of the field in the given
// context. Resolution order: an explicit per-context rename wins; else a
// context-free rename applies; else the type-level convention transform is
// applied to the identifier; else the identifier is used verbatim.
//
// Attribute and pattern-match contexts transform under the first declared
// alias pair's convention, the constructor-argument context under the
// last one's.
func (f *Field) ResolvedName(ctx load.Context) string {
	if name, ok := f.def.Rename(ctx); ok {
		return name
	}
	conv := f.typ.attrConvention()
	if ctx == load.ContextArg {
		conv = f.typ.argConvention()
	}
	return conv.Apply(f.Name)
}

// AttrName is the resolved external attribute name.
func (f *Field) AttrName() string { return f.ResolvedName(load.ContextAttr) }

// ArgName is the resolved constructor-argument name.
func (f *Field) ArgName() string { return f.ResolvedName(load.ContextArg) }

// MatchName is the resolved pattern-match label.
func (f *Field) MatchName() string { return f.ResolvedName(load.ContextMatch) }

// namingContexts are the contexts checked for resolved-name collisions.
var namingContexts = []load.Context{load.ContextAttr, load.ContextArg, load.ContextMatch}

// checkCollisions verifies that no two fields resolve to the same name
// within one context. A collision is a generation-time error carrying both
// field identities, never last-write-wins.
func (t *Type) checkCollisions() error {
	for _, ctx := range namingContexts {
		resolved := make(map[string]*Field, len(t.Fields))
		for _, f := range t.Fields {
			name := f.ResolvedName(ctx)
			if prev, ok := resolved[name]; ok {
				return &CollisionError{
					Type:    t.Name,
					Context: string(ctx),
					Name:    name,
					First:   prev.Name,
					Second:  f.Name,
				}
			}
			resolved[name] = f
		}
	}
	return nil
}
