// len/size/offset (spec.md §4.4.n). Grounded on
// pannous-goo/src/go/types/expr.go's builtin-call handling for len()
// and unsafe.Sizeof()/unsafe.Offsetof(), the closest analogues in the
// teacher's own stack. offset() is validated here (the named field must
// exist) but its byte value is left for codegen, out of scope per
// spec.md §1.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkMeasure(e *ast.MeasureExpr) typed.Expr {
	sizeType := c.Store.Builtin(itype.Size, false)

	switch e.Op {
	case ast.MeasureLen:
		value := c.checkExpr(e.Value, nil)
		container := itype.Dealias(value.ResultType())
		switch container.Storage {
		case itype.Slice, itype.Array, itype.String:
		default:
			c.fatal(e.Pos(), "len() requires a slice, array, or string, got %s", value.ResultType())
		}
		return &typed.MeasureExpr{
			Base:  typed.Base{Position: e.Pos(), Result: sizeType},
			Op:    ast.MeasureLen,
			Value: value,
		}

	case ast.MeasureSize:
		typ := c.resolveType(e.Type)
		return &typed.MeasureExpr{
			Base: typed.Base{Position: e.Pos(), Result: sizeType},
			Op:   ast.MeasureSize,
			Type: typ,
		}

	case ast.MeasureOffset:
		typ := c.resolveType(e.Type)
		d := itype.Dealias(typ)
		if d.Storage != itype.Struct && d.Storage != itype.Union {
			c.fatal(e.Pos(), "offset() requires a struct or union type, got %s", typ)
		}
		if itype.GetField(d, e.Field) == nil {
			c.fatal(e.Pos(), "%s has no field %s", typ, e.Field)
		}
		return &typed.MeasureExpr{
			Base:  typed.Base{Position: e.Pos(), Result: sizeType},
			Op:    ast.MeasureOffset,
			Type:  typ,
			Field: e.Field,
		}

	default:
		c.fatal(e.Pos(), "unsupported measurement %v", e.Op)
		return nil
	}
}
