package py

import (
	"github.com/dave/jennifer/jen"

	"github.com/derivepy/derivepy/compiler/gen"
)

// genHash emits PyHash on top of the type's Hash capability, folding the
// raw digest into the reserved-value-free hash domain.
func genHash(f *jen.File, t *gen.Type) {
	f.Commentf("PyHash returns the hash of %s.", t.Receiver())
	f.Func().Params(recv(t)).Id("PyHash").Params().Qual(runtimePkg, "HashValue").Block(
		jen.Return(jen.Qual(runtimePkg, "AsHashValue").Call(jen.Id(t.Receiver()).Dot("Hash").Call())),
	)
}
