package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassDirectives(t *testing.T) {
	s := &Schema{Name: "Thing"}
	found, err := parseClassDirectives(s, []string{
		"// Thing is documented.",
		"//derivepy:class name=Exposed rename_all=snake_case get_all frozen",
		"//derivepy:derive new, repr eq",
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []Alias{{Name: "Exposed", Convention: SnakeCase}}, s.Aliases)
	assert.Equal(t, []Op{OpNew, OpRepr, OpEq}, s.Derives)
	assert.True(t, s.GetAll)
	assert.False(t, s.SetAll)
	assert.True(t, s.Frozen)
}

func TestParseClassDirectivesAbsent(t *testing.T) {
	s := &Schema{Name: "Thing"}
	found, err := parseClassDirectives(s, []string{"// just documentation"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestParseClassTwoAliases(t *testing.T) {
	s := &Schema{Name: "Thing"}
	_, err := parseClassDirectives(s, []string{
		"//derivepy:class name=Thing rename_all=snake_case",
		"//derivepy:class rename_all=camelCase",
		"//derivepy:derive new",
	})
	require.NoError(t, err)
	require.Len(t, s.Aliases, 2)
	assert.Equal(t, SnakeCase, s.Aliases[0].Convention)
	assert.Equal(t, CamelCase, s.Aliases[1].Convention)
	assert.Empty(t, s.Aliases[1].Name)
}

func TestParseClassTooManyAliases(t *testing.T) {
	s := &Schema{Name: "Thing"}
	_, err := parseClassDirectives(s, []string{
		"//derivepy:class name=A",
		"//derivepy:class name=B",
		"//derivepy:class name=C",
	})
	require.Error(t, err)
	assert.True(t, IsDirectiveError(err))
	assert.ErrorContains(t, err, "at most two")
}

func TestParseClassErrors(t *testing.T) {
	s := &Schema{Name: "Thing"}
	_, err := parseClassDirectives(s, []string{"//derivepy:class shiny"})
	assert.ErrorContains(t, err, "unknown class directive")

	s = &Schema{Name: "Thing"}
	_, err = parseClassDirectives(s, []string{"//derivepy:freeze"})
	assert.ErrorContains(t, err, "unknown directive verb")

	s = &Schema{Name: "Thing"}
	_, err = parseClassDirectives(s, []string{"//derivepy:class rename_all=bogus"})
	assert.ErrorContains(t, err, "unknown naming convention")
}

func TestParseDeriveDuplicate(t *testing.T) {
	s := &Schema{Name: "Thing"}
	_, err := parseClassDirectives(s, []string{
		"//derivepy:derive new repr",
		"//derivepy:derive repr",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "more than once")
}

func TestMergeFieldVisibilityDefaults(t *testing.T) {
	s := &Schema{Name: "Thing", GetAll: true}
	f := &Field{Name: "A"}
	require.NoError(t, mergeField(s, f, &visOptions{}, &customOptions{}))
	assert.True(t, f.Readable())
	assert.False(t, f.Writable())

	f = &Field{Name: "B"}
	require.NoError(t, mergeField(s, f, &visOptions{set: true}, &customOptions{}))
	assert.True(t, f.Readable())
	assert.True(t, f.Writable())
}

func TestMergeFieldRenameConflict(t *testing.T) {
	s := &Schema{Name: "Thing"}
	f := &Field{Name: "A"}
	err := mergeField(s, f, &visOptions{name: "x"}, &customOptions{allRename: "y", hasAllRename: true})
	require.Error(t, err)
	assert.True(t, IsDirectiveError(err))
	assert.ErrorContains(t, err, "conflicting renames")
}

func TestMergeFieldRenameAgreement(t *testing.T) {
	s := &Schema{Name: "Thing"}
	f := &Field{Name: "A"}
	custom := &customOptions{
		allRename: "x", hasAllRename: true,
		renames: map[Context]string{ContextArg: "y"},
	}
	require.NoError(t, mergeField(s, f, &visOptions{name: "x"}, custom))

	name, ok := f.Rename(ContextArg)
	require.True(t, ok)
	assert.Equal(t, "y", name)
	name, ok = f.Rename(ContextAttr)
	require.True(t, ok)
	assert.Equal(t, "x", name)
}

func TestMergeFieldFactoryRequiresDefault(t *testing.T) {
	s := &Schema{Name: "Thing"}
	f := &Field{Name: "A"}
	err := mergeField(s, f, &visOptions{}, &customOptions{defaultFactory: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, "requires a default expression")
}

func TestDerived(t *testing.T) {
	s := &Schema{Derives: []Op{OpNew, OpHash}}
	assert.True(t, s.Derived(OpNew))
	assert.True(t, s.Derived(OpHash))
	assert.False(t, s.Derived(OpRepr))
}
