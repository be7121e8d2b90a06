package derivepy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derivepy/derivepy"
	"github.com/derivepy/derivepy/compiler/gen"
)

const schemaSource = `package model

//derivepy:class name=User rename_all=snake_case
//derivepy:derive new repr eq hash len
type User struct {
	ID    int    ` + "`py:\"get\"`" + `
	Email string ` + "`py:\"get,set\" derive:\"default=\\\"\\\"\"`" + `
}

//derivepy:class get_all
//derivepy:derive repr match_args
type Tag struct {
	Label string
}
`

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "derived")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.go"), []byte(schemaSource), 0o644))

	require.NoError(t, derivepy.Generate(dir, out, gen.WithHeader("example build")))

	user, err := os.ReadFile(filepath.Join(out, "user_derive.go"))
	require.NoError(t, err)
	assert.Contains(t, string(user), "Code generated by derivepy. DO NOT EDIT.")
	assert.Contains(t, string(user), "example build")
	assert.Contains(t, string(user), "func NewUser(args *runtime.Args) (*User, error)")
	assert.Contains(t, string(user), `"User(id=%s, email=%s)"`)

	tag, err := os.ReadFile(filepath.Join(out, "tag_derive.go"))
	require.NoError(t, err)
	assert.Contains(t, string(tag), "func (t *Tag) PyMatchArgs() []string")
	assert.Contains(t, string(tag), `[]string{"Label"}`)
}

func TestGenerateReportsEveryFailingType(t *testing.T) {
	dir := t.TempDir()
	src := `package model

//derivepy:derive new
type A struct {
	X int ` + "`derive:\"default=1\"`" + `
	Y int
}

//derivepy:derive new
type B struct {
	X int ` + "`derive:\"default=1\"`" + `
	Y int
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.go"), []byte(src), 0o644))

	err := derivepy.Generate(dir, filepath.Join(dir, "out"))
	require.Error(t, err)
	errs, ok := derivepy.IsAggregateError(err)
	require.True(t, ok)
	assert.Len(t, errs, 2)
	for _, e := range errs {
		assert.True(t, derivepy.IsOrderingError(e))
	}
}

func TestGenerateDirectiveError(t *testing.T) {
	dir := t.TempDir()
	src := `package model

//derivepy:derive shine
type A struct{}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.go"), []byte(src), 0o644))

	err := derivepy.Generate(dir, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.True(t, derivepy.IsDirectiveError(err))
}
