package py

import (
	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
)

// genMatchArgs emits PyMatchArgs: the positional pattern-match names in
// declaration order.
func genMatchArgs(f *jen.File, t *gen.Type) {
	fields := t.Selection(load.OpMatchArgs)
	f.Commentf("PyMatchArgs lists the positional pattern-match names of %s.", t.Name)
	f.Func().Params(recv(t)).Id("PyMatchArgs").Params().Index().String().BlockFunc(func(g *jen.Group) {
		if len(fields) == 0 {
			g.Return(jen.Nil())
			return
		}
		g.Return(jen.Index().String().ValuesFunc(func(vg *jen.Group) {
			for _, fd := range fields {
				vg.Lit(fd.MatchName())
			}
		}))
	})
}

// genFields emits PyFields: per-field dataclass metadata in declaration
// order. Fields opted out of the constructor are reported as class-level
// values.
func genFields(f *jen.File, t *gen.Type) {
	fields := t.Selection(load.OpFields)
	f.Commentf("PyFields describes the dataclass fields of %s.", t.Name)
	f.Func().Params(recv(t)).Id("PyFields").Params().Index().Qual(runtimePkg, "Field").
		BlockFunc(func(g *jen.Group) {
			if len(fields) == 0 {
				g.Return(jen.Nil())
				return
			}
			g.Return(jen.Index().Qual(runtimePkg, "Field").ValuesFunc(func(vg *jen.Group) {
				for _, fd := range fields {
					vg.Add(fieldLiteral(fd))
				}
			}))
		})
}

func fieldLiteral(fd *gen.Field) *jen.Statement {
	d := jen.Dict{
		jen.Id("Name"): jen.Lit(fd.AttrName()),
		jen.Id("Type"): jen.Lit(annotationOf(fd)),
	}
	if fd.InNew() {
		d[jen.Id("Init")] = jen.True()
	} else {
		d[jen.Id("Kind")] = jen.Qual(runtimePkg, "KindClassVar")
	}
	if fd.InRepr() {
		d[jen.Id("Repr")] = jen.True()
	}
	if fd.KwOnly() {
		d[jen.Id("KwOnly")] = jen.True()
	}
	if def, ok := fd.ResolveDefault(); ok {
		d[jen.Id("HasDefault")] = jen.True()
		switch {
		case fd.DefaultFactory():
			d[jen.Id("DefaultFactory")] = jen.Func().Params().Any().Block(
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

// genAnnotations emits PyAnnotations: the exposed attribute names mapped
// to their declared annotations.
func genAnnotations(f *jen.File, t *gen.Type) {
	fields := t.Selection(load.OpAnnotations)
	f.Commentf("PyAnnotations maps exposed attribute names of %s to their annotations.", t.Name)
	f.Func().Params(recv(t)).Id("PyAnnotations").Params().Map(jen.String()).String().
		BlockFunc(func(g *jen.Group) {
			if len(fields) == 0 {
				g.Return(jen.Nil())
				return
			}
			g.Return(jen.Map(jen.String()).String().Values(jen.DictFunc(func(d jen.Dict) {
				for _, fd := range fields {
					d[jen.Lit(fd.AttrName())] = jen.Lit(fd.Annotation())
				}
			})))
		})
}

// annotationOf resolves the reported type of a field: the explicit
// annotation when declared, the Go type otherwise.
func annotationOf(fd *gen.Field) string {
	if a := fd.Annotation(); a != "" {
		return a
	}
	return fd.Type
}
