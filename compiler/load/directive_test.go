package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDirectives(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"get,set", []string{"get", "set"}},
		{" get , set ", []string{"get", "set"}},
		{"default=f(1,2),kw_only", []string{"default=f(1,2)", "kw_only"}},
		{`default=map[string]int{"a": 1, "b": 2},repr=false`, []string{`default=map[string]int{"a": 1, "b": 2}`, "repr=false"}},
		{`default="a,b"`, []string{`default="a,b"`}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitDirectives(tt.in), tt.in)
	}
	assert.Empty(t, splitDirectives(""))
	assert.Empty(t, splitDirectives(",,"))
}

func TestParseVisibility(t *testing.T) {
	opts, err := parseVisibility("get,set,name=renamed")
	require.NoError(t, err)
	assert.True(t, opts.get)
	assert.True(t, opts.set)
	assert.Equal(t, "renamed", opts.name)

	_, err = parseVisibility("get,get")
	assert.ErrorContains(t, err, "only be specified once")

	_, err = parseVisibility("get=true")
	assert.ErrorContains(t, err, "does not take a value")

	_, err = parseVisibility("gte")
	assert.ErrorContains(t, err, "unknown directive")

	_, err = parseVisibility("name")
	assert.ErrorContains(t, err, "requires a value")
}

func TestParseCustomFlags(t *testing.T) {
	opts, err := parseCustom("repr=false,str,iter=true,len=false,new=false,match_args,field=false")
	require.NoError(t, err)
	require.NotNil(t, opts.repr)
	assert.False(t, *opts.repr)
	require.NotNil(t, opts.str)
	assert.True(t, *opts.str)
	require.NotNil(t, opts.iter)
	assert.True(t, *opts.iter)
	require.NotNil(t, opts.length)
	assert.False(t, *opts.length)
	require.NotNil(t, opts.initArg)
	assert.False(t, *opts.initArg)
	require.NotNil(t, opts.matchArgs)
	assert.True(t, *opts.matchArgs)
	require.NotNil(t, opts.dataclassField)
	assert.False(t, *opts.dataclassField)
}

func TestParseCustomUnmentionedFlagsAreNil(t *testing.T) {
	opts, err := parseCustom("default=1")
	require.NoError(t, err)
	assert.Nil(t, opts.repr)
	assert.Nil(t, opts.str)
	assert.Nil(t, opts.iter)
	assert.True(t, opts.hasDefault)
	assert.Equal(t, "1", opts.defaultExpr)
}

func TestParseCustomRenames(t *testing.T) {
	opts, err := parseCustom("name=all,name:arg=arg_name,name:match=match_name")
	require.NoError(t, err)
	assert.Equal(t, "all", opts.allRename)
	assert.Equal(t, "arg_name", opts.renames[ContextArg])
	assert.Equal(t, "match_name", opts.renames[ContextMatch])
	_, ok := opts.renames[ContextAttr]
	assert.False(t, ok)
}

func TestParseCustomErrors(t *testing.T) {
	_, err := parseCustom("repr=maybe")
	assert.ErrorContains(t, err, "expected true or false")

	_, err = parseCustom("default")
	assert.ErrorContains(t, err, "requires an expression")

	_, err = parseCustom("annotation=")
	assert.ErrorContains(t, err, "requires a value")

	_, err = parseCustom("bogus=1")
	assert.ErrorContains(t, err, "unknown directive")

	_, err = parseCustom("repr,repr=false")
	assert.ErrorContains(t, err, "only be specified once")
}

func TestParseOp(t *testing.T) {
	op, err := ParseOp("match_args")
	require.NoError(t, err)
	assert.Equal(t, OpMatchArgs, op)

	_, err = ParseOp("matchargs")
	assert.ErrorContains(t, err, "unknown operation")
}

func TestConventionApply(t *testing.T) {
	tests := []struct {
		conv Convention
		in   string
		want string
	}{
		{SnakeCase, "CreatedAt", "created_at"},
		{CamelCase, "created_at", "createdAt"},
		{PascalCase, "created_at", "CreatedAt"},
		{KebabCase, "CreatedAt", "created-at"},
		{ScreamingSnakeCase, "CreatedAt", "CREATED_AT"},
		{LowerCase, "CreatedAt", "createdat"},
		{UpperCase, "CreatedAt", "CREATEDAT"},
		{ConventionNone, "CreatedAt", "CreatedAt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.conv.Apply(tt.in), "%s(%s)", tt.conv, tt.in)
	}
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("snake_case")
	require.NoError(t, err)
	assert.Equal(t, SnakeCase, c)

	_, err = ParseConvention("sarcastiCase")
	assert.ErrorContains(t, err, "unknown naming convention")
}
