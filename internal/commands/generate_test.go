package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelSource = `package model

//derivepy:class name=Item rename_all=snake_case
//derivepy:derive new repr
type Item struct {
	SKU   string ` + "`py:\"get\"`" + `
	Count int    ` + "`py:\"get\" derive:\"default=0\"`" + `
}
`

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "item.go"), []byte(modelSource), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--schema", dir, "--out", out, "--workers", "1"})
	require.NoError(t, root.Execute())

	src, err := os.ReadFile(filepath.Join(out, "item_derive.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "func NewItem(args *runtime.Args) (*Item, error)")
	assert.Contains(t, string(src), `"Item(sku=%s, count=%s)"`)
}

func TestGenerateCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "item.go"), []byte(modelSource), 0o644))

	cfgPath := filepath.Join(dir, "derivepy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("schema: "+dir+"\nout: "+out+"\n"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--config", cfgPath})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(out, "item_derive.go"))
	assert.NoError(t, err)
}

func TestGenerateCommandMissingSchema(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"generate", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	err := root.Execute()
	require.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "item.go"), []byte(modelSource), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"describe", "--schema", dir})
	require.NoError(t, root.Execute())
}
