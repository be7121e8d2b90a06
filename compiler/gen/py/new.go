package py

import (
	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
)

// genNew emits the constructor signature and the New<T> function. The
// signature is package-level state so that binding diagnostics and the
// dataclass-field metadata share one source of parameter truth.
func genNew(f *jen.File, t *gen.Type) {
	fields := t.Selection(load.OpNew)

	f.Commentf("%s is the constructor signature of %s.", sigName(t), t.Name)
	f.Var().Id(sigName(t)).Op("=").Op("&").Qual(runtimePkg, "Signature").Values(jen.Dict{
		jen.Id("Func"):   jen.Lit(t.ExposedName()),
		jen.Id("Params"): jen.Index().Qual(runtimePkg, "Param").ValuesFunc(func(g *jen.Group) {
			for _, fd := range fields {
				g.Add(paramLiteral(fd))
			}
		}),
	})

	f.Commentf("New%s builds a %s from call arguments, applying declared defaults.", t.Name, t.Name)
	f.Func().Id("New" + t.Name).Params(jen.Id("args").Op("*").Qual(runtimePkg, "Args")).
		Params(jen.Op("*").Id(t.Name), jen.Error()).
		BlockFunc(func(g *jen.Group) {
			g.List(jen.Id("bound"), jen.Err()).Op(":=").Id(sigName(t)).Dot("Bind").Call(jen.Id("args"))
			g.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))
			g.Id("v").Op(":=").Op("&").Id(t.Name).Values()
			// Fields opted out of the constructor still receive their
			// declared default; without one they stay zero-valued.
			for _, fd := range skippedDefaults(t, fields) {
				g.Id("v").Dot(fd.StructField()).Op("=").Add(defaultValue(fd))
			}
			for i, fd := range fields {
				g.If(
					jen.List(jen.Id("v").Dot(fd.StructField()), jen.Err()).Op("=").
						Qual(runtimePkg, "As").Index(expr(fd.Type)).Call(jen.Id("bound").Index(jen.Lit(i))),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(jen.Nil(), jen.Err()))
			}
			g.Return(jen.Id("v"), jen.Nil())
		})
}

// sigName is the package-level name of the generated signature var.
func sigName(t *gen.Type) string {
	return "new" + t.Name + "Signature"
}

// skippedDefaults returns the fields excluded from the constructor that
// carry an explicit default expression, in declaration order.
func skippedDefaults(t *gen.Type, selected []*gen.Field) []*gen.Field {
	in := make(map[*gen.Field]bool, len(selected))
	for _, fd := range selected {
		in[fd] = true
	}
	var out []*gen.Field
	for _, fd := range t.Fields {
		if !in[fd] && fd.DefaultExpr() != "" && !isImplied(fd) {
			out = append(out, fd)
		}
	}
	return out
}

func isImplied(fd *gen.Field) bool {
	d, ok := fd.ResolveDefault()
	return ok && d.Implied
}

// defaultValue renders the field's default expression, calling it when it
// is declared as a factory.
func defaultValue(fd *gen.Field) *jen.Statement {
	if fd.DefaultFactory() {
		return expr(fd.DefaultExpr()).Call()
	}
	return expr(fd.DefaultExpr())
}

// paramLiteral renders one runtime.Param literal, including the resolved
// default of optional parameters.
func paramLiteral(fd *gen.Field) *jen.Statement {
	d := jen.Dict{jen.Id("Name"): jen.Lit(fd.ArgName())}
	if fd.KwOnly() {
		d[jen.Id("KwOnly")] = jen.True()
	}
	if def, ok := fd.ResolveDefault(); ok {
		d[jen.Id("HasDefault")] = jen.True()
		switch {
		case fd.DefaultFactory():
			d[jen.Id("Factory")] = jen.Func().Params().Any().Block(
				jen.Return(expr(def.Expr).Call()),
			)
		case def.Implied:
			d[jen.Id("Default")] = jen.Nil()
		default:
			d[jen.Id("Default")] = expr(def.Expr)
		}
	}
	return jen.Values(d)
}
