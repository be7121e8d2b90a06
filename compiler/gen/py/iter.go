package py

import (
	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
)

// genIter emits PyIter over the participating field values in
// declaration order.
func genIter(f *jen.File, t *gen.Type) {
	f.Commentf("PyIter iterates the exposed field values of %s.", t.Receiver())
	f.Func().Params(recv(t)).Id("PyIter").Params().Op("*").Qual(runtimePkg, "FieldIter").Block(
		jen.Return(jen.Qual(runtimePkg, "NewFieldIter").Call(fieldValues(t, load.OpIter)...)),
	)
}

// genReversed emits PyReversed, mirroring PyIter in reverse order.
func genReversed(f *jen.File, t *gen.Type) {
	f.Commentf("PyReversed iterates the exposed field values of %s in reverse.", t.Receiver())
	f.Func().Params(recv(t)).Id("PyReversed").Params().Op("*").Qual(runtimePkg, "FieldIter").Block(
		jen.Return(jen.Qual(runtimePkg, "NewReversedIter").Call(fieldValues(t, load.OpReversed)...)),
	)
}

// genLen emits PyLen as the compile-time count of participating fields.
func genLen(f *jen.File, t *gen.Type) {
	f.Commentf("PyLen reports the number of exposed fields of %s.", t.Name)
	f.Func().Params(recv(t)).Id("PyLen").Params().Int().Block(
		jen.Return(jen.Lit(len(t.Selection(load.OpLen)))),
	)
}

func fieldValues(t *gen.Type, op load.Op) []jen.Code {
	var vals []jen.Code
	for _, fd := range t.Selection(op) {
		vals = append(vals, jen.Id(t.Receiver()).Dot(fd.StructField()))
	}
	return vals
}
