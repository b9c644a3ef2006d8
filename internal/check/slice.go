// Slice expressions (spec.md §4.4.p). Grounded on
// pannous-goo/src/go/types/expr.go's SliceExpr handling, narrowed to
// this language's element types: a slice of an array/slice is a slice
// of the same element type; a slice of a string is a string.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkSlice(e *ast.SliceExpr) typed.Expr {
	object := c.checkExpr(e.Object, nil)
	container := itype.Dealias(object.ResultType())

	var result *itype.Type
	switch container.Storage {
	case itype.String:
		result = container
	case itype.Slice, itype.Array:
		result = c.Store.LookupSlice(container.Elem)
	default:
		c.fatal(e.Pos(), "cannot slice %s", object.ResultType())
	}

	sizeType := c.Store.Builtin(itype.Size, false)
	var start, end typed.Expr
	if e.Start != nil {
		start = c.require(sizeType, c.checkExpr(e.Start, sizeType))
	}
	if e.End != nil {
		end = c.require(sizeType, c.checkExpr(e.End, sizeType))
	}

	return &typed.SliceExpr{
		Base:   typed.Base{Position: e.Pos(), Result: result},
		Object: object,
		Start:  start,
		End:    end,
	}
}
