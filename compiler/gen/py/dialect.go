// Package py emits the object-protocol slots. Each emitter is a pure
// function from a resolved type catalogue to generated method code; the
// emitters are independent of each other, so a type may request any
// subset of operations.
package py

import (
	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
)

// runtimePkg is the import path of the binding-layer contract package that
// generated code compiles against.
const runtimePkg = "github.com/derivepy/derivepy/runtime"

// Dialect generates Go method bodies for the protocol slots.
type Dialect struct{}

// New returns the slot dialect.
func New() *Dialect { return &Dialect{} }

// GenDerive generates the derive file of one type: one logically separate
// block per requested operation, in directive order.
func (d *Dialect) GenDerive(t *gen.Type) (*jen.File, error) {
	f := jen.NewFile(t.Package())
	f.HeaderComment("Code generated by derivepy. DO NOT EDIT.")
	if t.Header != "" {
		f.HeaderComment(t.Header)
	}
	f.ImportName(runtimePkg, "runtime")

	for _, op := range t.Derives() {
		switch op {
		case load.OpNew:
			genNew(f, t)
		case load.OpRepr:
			genRepr(f, t)
		case load.OpStr:
			genStr(f, t)
		case load.OpEq:
			genEq(f, t)
		case load.OpOrd:
			genOrd(f, t)
		case load.OpRichCmp:
			genRichCmp(f, t)
		case load.OpHash:
			genHash(f, t)
		case load.OpIter:
			genIter(f, t)
		case load.OpReversed:
			genReversed(f, t)
		case load.OpLen:
			genLen(f, t)
		case load.OpMatchArgs:
			genMatchArgs(f, t)
		case load.OpFields:
			genFields(f, t)
		case load.OpAnnotations:
			genAnnotations(f, t)
		}
	}
	return f, nil
}

// recv builds the method receiver parameter of the type.
func recv(t *gen.Type) *jen.Statement {
	return jen.Id(t.Receiver()).Op("*").Id(t.Name)
}

// expr renders an author-supplied Go expression verbatim.
func expr(s string) *jen.Statement {
	return jen.Id(s)
}
