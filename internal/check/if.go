// If expressions (spec.md §4.4.l). Grounded on
// pannous-goo/src/go/types/stmt.go's IfStmt handling, adapted to an
// expression-position if: when both branches are present, their result
// types must agree exactly (spec.md §9 notes tagged-union formation
// across if/switch arms as an unimplemented open item — this checker
// requires identity instead of building a union).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkIf(e *ast.IfExpr, hint *itype.Type) typed.Expr {
	boolType := c.Store.Builtin(itype.Bool, false)
	cond := c.require(boolType, c.checkExpr(e.Cond, boolType))

	trueBranch := c.checkExpr(e.True, hint)
	if e.False == nil {
		return &typed.IfExpr{
			Base:  typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false)},
			Cond:  cond,
			True:  trueBranch,
			False: nil,
		}
	}

	falseBranch := c.checkExpr(e.False, hint)
	// TODO: form a tagged union of the two branch result types instead of
	// requiring identity.
	if !itype.IsIdentical(trueBranch.ResultType(), falseBranch.ResultType()) {
		c.fatal(e.Pos(), "if branches disagree: %s vs %s", trueBranch.ResultType(), falseBranch.ResultType())
	}

	return &typed.IfExpr{
		Base: typed.Base{
			Position:   e.Pos(),
			Result:     trueBranch.ResultType(),
			Terminated: trueBranch.Terminates() && falseBranch.Terminates(),
		},
		Cond:  cond,
		True:  trueBranch,
		False: falseBranch,
	}
}
