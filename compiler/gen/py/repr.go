package py

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
)

// genRepr emits PyRepr: the exposed type name followed by the
// participating fields as attr=value pairs in declaration order.
func genRepr(f *jen.File, t *gen.Type) {
	f.Commentf("PyRepr renders %s in constructor form.", t.Name)
	f.Func().Params(recv(t)).Id("PyRepr").Params().String().
		Block(reprBody(t, t.Selection(load.OpRepr)))
}

// genStr emits PyStr. It follows the repr shape but honors the str
// field selection, so the two may expose different subsets.
func genStr(f *jen.File, t *gen.Type) {
	f.Commentf("PyStr renders the display form of %s.", t.Name)
	f.Func().Params(recv(t)).Id("PyStr").Params().String().
		Block(reprBody(t, t.Selection(load.OpStr)))
}

func reprBody(t *gen.Type, fields []*gen.Field) *jen.Statement {
	if len(fields) == 0 {
		return jen.Return(jen.Lit(t.ExposedName() + "()"))
	}
	var parts []string
	args := []jen.Code{nil} // format string placeholder
	for _, fd := range fields {
		parts = append(parts, fd.AttrName()+"=%s")
		args = append(args, jen.Qual(runtimePkg, "Repr").Call(jen.Id(t.Receiver()).Dot(fd.StructField())))
	}
	args[0] = jen.Lit(fmt.Sprintf("%s(%s)", t.ExposedName(), strings.Join(parts, ", ")))
	return jen.Return(jen.Qual("fmt", "Sprintf").Call(args...))
}
