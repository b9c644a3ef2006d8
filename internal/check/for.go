// For loops (spec.md §4.4.k). Grounded on
// pannous-goo/src/go/types/stmt.go's Checker.stmt ForStmt case, which
// pushes a block scope around the loop's init/cond/post/body; this
// language additionally tags the pushed scope with its optional label
// so break/continue can resolve against it (spec.md §4.1).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkFor(e *ast.ForExpr) typed.Expr {
	if e.Label != "" && c.curScope.HasAncestorLabel(e.Label) {
		c.fatal(e.Pos(), "label %q is already in use by an enclosing for", e.Label)
	}

	forScope := c.pushScope(scope.KindFor, e.Label)
	defer c.popScope()

	bindings := make([]*typed.Binding, len(e.Bindings))
	for i, b := range e.Bindings {
		bindings[i] = c.checkBinder(b)
	}

	var cond typed.Expr
	if e.Cond != nil {
		boolType := c.Store.Builtin(itype.Bool, false)
		cond = c.require(boolType, c.checkExpr(e.Cond, boolType))
	}

	var after typed.Expr
	if e.After != nil {
		after = c.checkExpr(e.After, nil)
	}

	body := c.checkExpr(e.Body, nil)

	return &typed.ForExpr{
		Base:     typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false)},
		Bindings: bindings,
		Cond:     cond,
		After:    after,
		Body:     body,
		Scope:    forScope,
		Label:    e.Label,
	}
}
