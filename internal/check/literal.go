// Constant literals and array-literal elaboration (spec.md §4.4.h).
// Grounded on pannous-goo/src/go/types/expr.go's Checker.basicLit /
// compositeLit handling; the constant-folding work itself is delegated
// to internal/constval (spec.md §6 "the checker treats ERR as a fatal
// diagnostic").
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkLiteral(e ast.Expr, hint *itype.Type) typed.Expr {
	v, err := constval.Eval(e, c.constLookup())
	if err != nil {
		c.fatal(e.Pos(), "%s", err)
	}
	typ := hint
	if typ == nil {
		typ = inferredConstType(c.Store, v)
	}
	return constantExpr(e.Pos(), typ, v)
}

// checkArrayLit elaborates an array literal against hint (spec.md
// §4.4.h "array literal elaboration"): hint must dealias to an array or
// slice type; with no hint, the element type is inferred from the
// first element and the literal elaborates to a sized array of its own
// length. Each element must be assignable to the element type. At most
// one element may set Expand, and it must be last (spec.md §4.4.h edge
// case); Expand is only legal against a sized array hint at least as
// long as the literal, and the elaborated array keeps the hinted
// length rather than the literal's own element count.
func (c *Checker) checkArrayLit(e *ast.ArrayLit, hint *itype.Type) typed.Expr {
	if hint == nil && len(e.Elems) == 0 {
		c.fatal(e.Pos(), "array literal requires a known element type from context")
	}

	values := make([]constval.Value, len(e.Elems))
	for i, el := range e.Elems {
		v, err := constval.Eval(el.Value, c.constLookup())
		if err != nil {
			c.fatal(el.Value.Pos(), "%s", err)
		}
		values[i] = v
	}

	var container *itype.Type
	if hint != nil {
		container = itype.Dealias(hint)
		if container.Storage != itype.Array && container.Storage != itype.Slice {
			c.fatal(e.Pos(), "array literal cannot be used as %s", hint)
		}
	} else {
		elemType := inferredConstType(c.Store, values[0])
		container = c.Store.LookupArray(elemType, int64(len(e.Elems)))
		hint = container
	}
	elemType := container.Elem

	array := &typed.ConstantExpr{Base: typed.Base{Position: e.Pos(), Result: hint}}
	hasExpand := false
	for i, el := range e.Elems {
		if el.Expand {
			if i != len(e.Elems)-1 {
				c.fatal(e.Pos(), "...expand element must be last")
			}
			if container.Storage != itype.Array || container.ArrayLen == itype.UndefinedSize ||
				container.ArrayLen < int64(len(e.Elems)) {
				c.fatal(e.Pos(), "...expand requires a sized array hint at least as long as the literal")
			}
			hasExpand = true
		}

		natural := inferredConstType(c.Store, values[i])
		if !itype.IsAssignable(elemType, natural) {
			c.fatal(el.Value.Pos(), "cannot use %s as %s in array literal", natural, elemType)
		}
		// the element is folded straight into elemType: ConstantExpr.Array
		// holds concrete *ConstantExpr payloads, not a general Expr a
		// CastExpr could wrap, so retagging the constant is the cast.
		array.Array = append(array.Array, constantExpr(el.Value.Pos(), elemType, values[i]))
	}
	if container.Storage == itype.Array && container.ArrayLen != itype.UndefinedSize && !hasExpand &&
		int64(len(array.Array)) != container.ArrayLen {
		c.fatal(e.Pos(), "array literal has %d elements, want %d", len(array.Array), container.ArrayLen)
	}
	return array
}
