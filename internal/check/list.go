// Block expressions (spec.md §4.4.m). Grounded on
// pannous-goo/src/go/types/stmt.go's Checker.stmtList, which pushes a
// block scope and checks statements in order; here the list's own
// result type is its last sub-expression's (spec.md §4.4.m "a list's
// result is its last expression's").
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkList(e *ast.ListExpr, hint *itype.Type) typed.Expr {
	listScope := c.pushScope(scope.KindList, "")
	defer c.popScope()

	exprs := make([]typed.Expr, len(e.Exprs))
	terminates := false
	for i, sub := range e.Exprs {
		var subHint *itype.Type
		if i == len(e.Exprs)-1 {
			subHint = hint
		}
		exprs[i] = c.checkExpr(sub, subHint)
		if exprs[i].Terminates() {
			terminates = true
		}
	}

	result := c.Store.Builtin(itype.Void, false)
	if n := len(exprs); n > 0 {
		result = exprs[n-1].ResultType()
	}

	return &typed.ListExpr{
		Base:  typed.Base{Position: e.Pos(), Result: result, Terminated: terminates},
		Exprs: exprs,
		Scope: listScope,
	}
}
