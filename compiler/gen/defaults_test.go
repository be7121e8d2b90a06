package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derivepy/derivepy/compiler/load"
)

func TestResolveDefault(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name: "Thing",
		Fields: []*load.Field{
			{Name: "Required", Type: "int"},
			{Name: "Explicit", Type: "int", Position: 1, Default: "7", HasDefault: true},
			{Name: "Ptr", Type: "*int", Position: 2, Nullable: true},
			// An explicit default beats the implied nil.
			{Name: "Both", Type: "[]int", Position: 3, Nullable: true, Default: "[]int{1}", HasDefault: true},
		},
	})

	_, ok := typ.Fields[0].ResolveDefault()
	assert.False(t, ok)
	assert.False(t, typ.Fields[0].Optional())
	assert.Empty(t, typ.Fields[0].DefaultExpr())

	d, ok := typ.Fields[1].ResolveDefault()
	require.True(t, ok)
	assert.Equal(t, "7", d.Expr)
	assert.False(t, d.Implied)

	d, ok = typ.Fields[2].ResolveDefault()
	require.True(t, ok)
	assert.Equal(t, "nil", d.Expr)
	assert.True(t, d.Implied)

	d, ok = typ.Fields[3].ResolveDefault()
	require.True(t, ok)
	assert.Equal(t, "[]int{1}", d.Expr)
	assert.False(t, d.Implied)
}

func TestDefaultOrdering(t *testing.T) {
	_, err := NewType(&Config{}, &load.Schema{
		Name:    "Thing",
		Derives: []load.Op{load.OpNew},
		Fields: []*load.Field{
			{Name: "A", Type: "int"},
			{Name: "B", Type: "int", Position: 1, Default: "0", HasDefault: true},
			{Name: "C", Type: "int", Position: 2},
		},
	})
	require.Error(t, err)
	require.True(t, IsOrderingError(err))
	var oe *OrderingError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "C", oe.Field)
	assert.Equal(t, 2, oe.Position)
	assert.Equal(t, "B", oe.After)
	assert.ErrorIs(t, err, ErrOrdering)
}

func TestDefaultOrderingNullableCountsAsDefaulted(t *testing.T) {
	_, err := NewType(&Config{}, &load.Schema{
		Name:    "Thing",
		Derives: []load.Op{load.OpNew},
		Fields: []*load.Field{
			{Name: "A", Type: "*int", Nullable: true},
			{Name: "B", Type: "int", Position: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, IsOrderingError(err))
}

func TestDefaultOrderingKwOnlyExempt(t *testing.T) {
	// A required keyword-only argument after a defaulted one is legal:
	// keyword binding carries the name.
	_, err := NewType(&Config{}, &load.Schema{
		Name:    "Thing",
		Derives: []load.Op{load.OpNew},
		Fields: []*load.Field{
			{Name: "A", Type: "int", Default: "0", HasDefault: true},
			{Name: "B", Type: "int", Position: 1, KwOnly: true},
		},
	})
	assert.NoError(t, err)
}

func TestDefaultOrderingIgnoresNonInitFields(t *testing.T) {
	// A required field excluded from the constructor imposes no ordering.
	_, err := NewType(&Config{}, &load.Schema{
		Name:    "Thing",
		Derives: []load.Op{load.OpNew},
		Fields: []*load.Field{
			{Name: "A", Type: "int", Default: "0", HasDefault: true},
			{Name: "B", Type: "int", Position: 1, New: boolp(false)},
		},
	})
	assert.NoError(t, err)
}

func TestOrderingNotCheckedWithoutConstructor(t *testing.T) {
	_, err := NewType(&Config{}, &load.Schema{
		Name:    "Thing",
		Derives: []load.Op{load.OpRepr},
		Fields: []*load.Field{
			{Name: "A", Type: "int", Default: "0", HasDefault: true},
			{Name: "B", Type: "int", Position: 1},
		},
	})
	assert.NoError(t, err)
}
