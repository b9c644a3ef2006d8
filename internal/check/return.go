// Return (spec.md §4.4.o). Grounded on
// pannous-goo/src/go/types/stmt.go's Checker.stmt ReturnStmt case:
// check the value (if any) against the enclosing function's declared
// result type.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkReturn(e *ast.ReturnExpr) typed.Expr {
	if c.curFunc == nil {
		c.fatal(e.Pos(), "return outside a function")
	}
	result := c.curFunc.Result

	var value typed.Expr
	switch {
	case e.Value == nil && result != nil:
		c.fatal(e.Pos(), "missing return value, want %s", result)
	case e.Value != nil && result == nil:
		c.fatal(e.Pos(), "void function cannot return a value")
	case e.Value != nil:
		value = c.require(result, c.checkExpr(e.Value, result))
	}

	return &typed.ReturnExpr{
		Base:  typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false), Terminated: true},
		Value: value,
	}
}
