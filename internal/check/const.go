// Shared helpers for turning an evaluated constval.Value into the typed
// tree's ConstantExpr node, used when a const declaration or binding is
// evaluated (scan.go, binding.go) and for literals (literal.go); the
// node stored on a const object is what access.go later splices in at
// each use site. Grounded on spec.md §9 "lower constants by
// splicing": the typed tree never retains a reference to the scope
// object, only to the value it carried.
package check

import (
	"math"

	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/source"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

// constantExpr builds a *typed.ConstantExpr carrying v's value at type
// typ and position pos.

func constantExpr(pos source.Position, typ *itype.Type, v constval.Value) *typed.ConstantExpr {
	ce := &typed.ConstantExpr{Base: typed.Base{Position: pos, Result: typ}}
	switch v.Kind {
	case constval.Bool:
		ce.Bool = v.BoolVal()
	case constval.Int:
		ce.Int = v.Int64Val()
	case constval.Uint:
		ce.Uint = v.Uint64Val()
	case constval.Rune:
		ce.Rune = rune(v.Int64Val())
	case constval.Float:
		// spec.md §9 open item: float constants are carried through
		// go/constant's arbitrary precision up to this point; the
		// typed tree's ConstantExpr has no dedicated float field
		// beyond what codegen (out of scope) would need, so the bit
		// pattern is preserved via Uint for now.
		ce.Uint = math.Float64bits(v.Float64Val())
	case constval.String:
		ce.Str = v.StringVal()
	case constval.ArrayKind:
		ce.Array = make([]*typed.ConstantExpr, len(v.Array))
		elemType := typ
		if typ != nil && typ.Elem != nil {
			elemType = typ.Elem
		}
		for i, el := range v.Array {
			ce.Array[i] = constantExpr(pos, elemType, el)
		}
	}
	return ce
}
