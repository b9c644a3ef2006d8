// Assertions (spec.md §4.4.b). Grounded on pannous-goo's general
// condition-checking pattern in stmt.go's IfStmt handling, narrowed to
// the language's dedicated assert form: a conditional or unconditional
// abort with an optional message.
package check

import (
	"fmt"

	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkAssert(e *ast.AssertExpr) typed.Expr {
	boolType := c.Store.Builtin(itype.Bool, false)
	strType := c.Store.Builtin(itype.String, false)

	var cond typed.Expr
	terminates := e.Cond == nil
	if e.Cond != nil {
		cond = c.require(boolType, c.checkExpr(e.Cond, boolType))
	}

	var msg typed.Expr
	if e.Message != nil {
		msg = c.require(strType, c.checkExpr(e.Message, strType))
	} else {
		msg = &typed.ConstantExpr{
			Base: typed.Base{Position: e.Pos(), Result: strType},
			Str:  fmt.Sprintf("Assertion failed: %s", e.Pos()),
		}
	}

	return &typed.AssertExpr{
		Base:    typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false), Terminated: terminates},
		Cond:    cond,
		Message: msg,
	}
}
