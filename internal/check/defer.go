// Defer (spec.md §4.4.j). Grounded on pannous-goo/src/go/types/stmt.go's
// DeferStmt handling, narrowed to this language's requirement that the
// deferred value be a call.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkDefer(e *ast.DeferExpr) typed.Expr {
	if _, ok := e.Value.(*ast.CallExpr); !ok {
		c.fatal(e.Pos(), "defer requires a call expression")
	}
	// spec.md §4.4.j: defer does not nest.
	if c.deferring {
		c.fatal(e.Pos(), "defer cannot appear inside another defer")
	}
	wasDeferring := c.deferring
	c.deferring = true
	value := c.checkExpr(e.Value, nil)
	c.deferring = wasDeferring

	return &typed.DeferExpr{
		Base:  typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false)},
		Value: value,
	}
}
