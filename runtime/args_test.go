package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signature(params ...Param) *Signature {
	return &Signature{Func: "Thing", Params: params}
}

func TestBindPositional(t *testing.T) {
	s := signature(Param{Name: "a"}, Param{Name: "b"})
	got, err := s.Bind(NewArgs(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}

func TestBindKeywords(t *testing.T) {
	s := signature(Param{Name: "a"}, Param{Name: "b"})
	got, err := s.Bind(NewArgs(1).Kwarg("b", 2))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	got, err = s.Bind(NewArgs().Kwarg("b", 2).Kwarg("a", 1))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}

func TestBindDefaults(t *testing.T) {
	s := signature(
		Param{Name: "a"},
		Param{Name: "b", Default: 9, HasDefault: true},
	)
	got, err := s.Bind(NewArgs(1))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 9}, got)
}

func TestBindFactoryDefault(t *testing.T) {
	calls := 0
	s := signature(Param{
		Name:       "tags",
		HasDefault: true,
		Factory: func() any {
			calls++
			return []string{}
		},
	})
	first, err := s.Bind(NewArgs())
	require.NoError(t, err)
	second, err := s.Bind(NewArgs())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, first, second)
}

func TestBindKwOnly(t *testing.T) {
	s := signature(
		Param{Name: "a"},
		Param{Name: "b", KwOnly: true, Default: 0, HasDefault: true},
	)
	_, err := s.Bind(NewArgs(1, 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyArgs)

	got, err := s.Bind(NewArgs(1).Kwarg("b", 2))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}

func TestBindErrors(t *testing.T) {
	s := signature(Param{Name: "a"}, Param{Name: "b"})

	_, err := s.Bind(NewArgs(1, 2, 3))
	assert.ErrorIs(t, err, ErrTooManyArgs)

	_, err = s.Bind(NewArgs(1).Kwarg("c", 2))
	assert.ErrorIs(t, err, ErrUnexpectedKeyword)

	_, err = s.Bind(NewArgs(1, 2).Kwarg("a", 3))
	assert.ErrorIs(t, err, ErrDuplicateArg)

	_, err = s.Bind(NewArgs(1))
	assert.ErrorIs(t, err, ErrMissingArg)

	var ce *CallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Thing", ce.Func)
	assert.Equal(t, "b", ce.Arg)
	assert.True(t, IsCallError(err))
}

func TestBindNilArgs(t *testing.T) {
	s := signature(Param{Name: "a", Default: "x", HasDefault: true})
	got, err := s.Bind(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, got)
}

func TestAs(t *testing.T) {
	v, err := As[int](3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	p, err := As[*int](nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = As[int]("nope")
	assert.ErrorIs(t, err, ErrArgType)
}

func BenchmarkBind(b *testing.B) {
	s := signature(
		Param{Name: "a"},
		Param{Name: "b", Default: 0, HasDefault: true},
		Param{Name: "c", KwOnly: true, Default: "", HasDefault: true},
	)
	args := NewArgs(1).Kwarg("c", "x")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.Bind(args); err != nil {
			b.Fatal(err)
		}
	}
}
