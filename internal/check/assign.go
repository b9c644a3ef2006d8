// Assignment (spec.md §4.4.c). Grounded on
// pannous-goo/src/go/types/stmt.go's Checker.assignVar, narrowed to this
// language's direct-lvalue and through-pointer-indirect forms (no
// tuple assignment, no map index targets).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkAssign(e *ast.AssignExpr) typed.Expr {
	object := c.checkExpr(e.Object, nil)
	target := object.ResultType()

	if e.Indirect {
		deref, nullable := itype.Dereference(target)
		if nullable {
			c.fatal(e.Pos(), "cannot assign through a nullable pointer without a cast")
		}
		target = deref
	}
	if target.IsConst() {
		c.fatal(e.Pos(), "cannot assign to a const binding")
	}

	value := c.checkExpr(e.Value, target)
	if e.Op != ast.AssignPlain && !itype.IsNumeric(target) {
		c.fatal(e.Pos(), "compound assignment operator %s requires a numeric target", e.Op)
	}
	value = c.require(target, value)

	return &typed.AssignExpr{
		Base:     typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false)},
		Object:   object,
		Value:    value,
		Op:       e.Op,
		Indirect: e.Indirect,
	}
}
