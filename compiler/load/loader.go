// Package load parses annotated struct declarations into serializable
// schema records: doc-comment class directives plus the two struct-tag
// namespaces, merged and validated per field.
package load

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// LoadDir parses every non-test Go file in dir and returns a schema for
// each struct whose doc comment carries derivepy directives, in source
// order. Types without directives are skipped. The loader works directly on
// the syntax tree; it never type-checks, so a field type's fitness for a
// delegated capability surfaces when the generated file is compiled, not
// here.
func LoadDir(dir string) ([]*Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("derivepy: read schema dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fset := token.NewFileSet()
	var schemas []*Schema
	for _, name := range names {
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("derivepy: parse %s: %w", name, err)
		}
		fileSchemas, err := loadFile(fset, file)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, fileSchemas...)
	}
	return schemas, nil
}

// LoadSource parses a single in-memory file. Used by tests and by hosts
// that hold sources themselves.
func LoadSource(filename, src string) ([]*Schema, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("derivepy: parse %s: %w", filename, err)
	}
	return loadFile(fset, file)
}

func loadFile(fset *token.FileSet, file *ast.File) ([]*Schema, error) {
	var schemas []*Schema
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := directiveLines(ts.Doc)
			if len(doc) == 0 {
				doc = directiveLines(gd.Doc)
			}
			st, isStruct := ts.Type.(*ast.StructType)
			s := &Schema{
				Name:    ts.Name.Name,
				Package: file.Name.Name,
				Pos:     fset.Position(ts.Pos()).String(),
			}
			found, err := parseClassDirectives(s, doc)
			if err != nil {
				return nil, err
			}
			if !found {
				continue
			}
			if !isStruct {
				return nil, NewDirectiveError(s.Name, "", "", "derivepy directives require a struct type")
			}
			if err := loadFields(fset, s, st); err != nil {
				return nil, err
			}
			schemas = append(schemas, s)
		}
	}
	return schemas, nil
}

// directiveLines returns the raw comment lines of a doc group.
// ast.CommentGroup.Text strips directive-shaped lines, so the raw list is
// scanned instead.
func directiveLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	lines := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		lines = append(lines, c.Text)
	}
	return lines
}

func loadFields(fset *token.FileSet, s *Schema, st *ast.StructType) error {
	pos := 0
	for _, af := range st.Fields.List {
		tag, err := fieldTag(s, af)
		if err != nil {
			return err
		}
		typeName := types.ExprString(af.Type)
		nullable := nullableType(af.Type)
		if len(af.Names) == 0 {
			// Embedded field: tuple-positional analogue. A synthesized
			// numeric name stands in unless a rename directive names it.
			f, err := newField(s, strconv.Itoa(pos), typeName, pos, fset.Position(af.Pos()).String(), nullable, true, tag)
			if err != nil {
				return err
			}
			s.Fields = append(s.Fields, f)
			pos++
			continue
		}
		for _, ident := range af.Names {
			f, err := newField(s, ident.Name, typeName, pos, fset.Position(ident.Pos()).String(), nullable, false, tag)
			if err != nil {
				return err
			}
			s.Fields = append(s.Fields, f)
			pos++
		}
	}
	return nil
}

func newField(s *Schema, name, typeName string, pos int, posStr string, nullable, embedded bool, tag reflect.StructTag) (*Field, error) {
	f := &Field{
		Name:     name,
		Type:     typeName,
		Nullable: nullable,
		Position: pos,
		Embedded: embedded,
		Pos:      posStr,
	}
	vis := &visOptions{}
	if value, ok := tag.Lookup(VisibilityTag); ok {
		parsed, err := parseVisibility(value)
		if err != nil {
			return nil, NewDirectiveError(s.Name, name, VisibilityTag+" tag", "%v", err)
		}
		vis = parsed
	}
	custom := &customOptions{}
	if value, ok := tag.Lookup(CustomTag); ok {
		parsed, err := parseCustom(value)
		if err != nil {
			return nil, NewDirectiveError(s.Name, name, CustomTag+" tag", "%v", err)
		}
		custom = parsed
	}
	if err := mergeField(s, f, vis, custom); err != nil {
		return nil, err
	}
	return f, nil
}

func fieldTag(s *Schema, af *ast.Field) (reflect.StructTag, error) {
	if af.Tag == nil {
		return "", nil
	}
	raw, err := strconv.Unquote(af.Tag.Value)
	if err != nil {
		name := ""
		if len(af.Names) > 0 {
			name = af.Names[0].Name
		}
		return "", NewDirectiveError(s.Name, name, "struct tag", "malformed tag literal %s", af.Tag.Value)
	}
	return reflect.StructTag(raw), nil
}

// nullableType reports whether an expression declares a type whose zero
// value is nil.
func nullableType(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.StarExpr, *ast.MapType, *ast.InterfaceType, *ast.ChanType, *ast.FuncType:
		return true
	case *ast.ArrayType:
		return e.Len == nil // slice, not array
	case *ast.Ident:
		return e.Name == "any"
	default:
		return false
	}
}
