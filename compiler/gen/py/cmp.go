package py

import (
	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
)

// genEq emits PyEq and PyNe, delegating to the type's Equal capability.
// A type without Equal fails to compile, which surfaces the missing
// capability at the definition site.
func genEq(f *jen.File, t *gen.Type) {
	f.Commentf("PyEq reports whether %s equals other.", t.Receiver())
	f.Func().Params(recv(t)).Id("PyEq").Params(jen.Id("other").Any()).Bool().Block(
		jen.Return(jen.Id(t.Receiver()).Dot("Equal").Call(jen.Id("other"))),
	)
	f.Commentf("PyNe is the negation of PyEq.")
	f.Func().Params(recv(t)).Id("PyNe").Params(jen.Id("other").Any()).Bool().Block(
		jen.Return(jen.Op("!").Id(t.Receiver()).Dot("Equal").Call(jen.Id("other"))),
	)
}

// genOrd emits the four ordering slots on top of the type's Cmp
// capability. Incomparable operands yield false, never a panic.
func genOrd(f *jen.File, t *gen.Type) {
	ops := []struct {
		slot string
		op   string
	}{
		{"PyLt", "<"},
		{"PyLe", "<="},
		{"PyGt", ">"},
		{"PyGe", ">="},
	}
	for _, o := range ops {
		f.Commentf("%s reports %s %s other.", o.slot, t.Receiver(), o.op)
		f.Func().Params(recv(t)).Id(o.slot).Params(jen.Id("other").Any()).Bool().Block(
			jen.List(jen.Id("c"), jen.Id("ok")).Op(":=").Id(t.Receiver()).Dot("Cmp").Call(jen.Id("other")),
			jen.Return(jen.Id("ok").Op("&&").Id("c").Op(o.op).Lit(0)),
		)
	}
}

// genRichCmp emits the single-entry comparison slot.
func genRichCmp(f *jen.File, t *gen.Type) {
	f.Commentf("PyRichCmp evaluates one comparison of %s against other.", t.Receiver())
	f.Func().Params(recv(t)).Id("PyRichCmp").
		Params(jen.Id("other").Any(), jen.Id("op").Qual(runtimePkg, "CompareOp")).Bool().
		Block(
			jen.Return(jen.Qual(runtimePkg, "RichCmp").Call(jen.Id(t.Receiver()), jen.Id("other"), jen.Id("op"))),
		)
}
