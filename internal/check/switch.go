// Switch expressions (spec.md §4.4.r). Grounded on
// pannous-goo/src/go/types/stmt.go's Checker.caseValues, which checks
// each case option against the switched value's type; case options here
// must additionally be compile-time constants (spec.md §4.4.r "required
// equal to T"), and exhaustiveness over an enum's members is not
// enforced (spec.md §9 open item).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkSwitch(e *ast.SwitchExpr, hint *itype.Type) typed.Expr {
	value := c.checkExpr(e.Value, nil)
	valueType := value.ResultType()

	cases := make([]*typed.SwitchCase, len(e.Cases))
	var resultType *itype.Type
	terminates := len(e.Cases) > 0

	for i, cs := range e.Cases {
		options := make([]typed.Expr, len(cs.Options))
		for j, opt := range cs.Options {
			checked := c.require(valueType, c.checkExpr(opt, valueType))
			if _, ok := checked.(*typed.ConstantExpr); !ok {
				c.fatal(opt.Pos(), "case option must be a compile-time constant")
			}
			options[j] = checked
		}

		body := c.checkExpr(cs.Body, hint)
		// TODO: form a tagged union across case result types instead of
		// requiring identity.
		if resultType == nil {
			resultType = body.ResultType()
		} else if !itype.IsIdentical(resultType, body.ResultType()) {
			c.fatal(cs.Body.Pos(), "switch case results disagree: %s vs %s", resultType, body.ResultType())
		}
		if !body.Terminates() {
			terminates = false
		}

		cases[i] = &typed.SwitchCase{Options: options, Body: body}
	}

	if resultType == nil {
		resultType = c.Store.Builtin(itype.Void, false)
	}

	return &typed.SwitchExpr{
		Base:  typed.Base{Position: e.Pos(), Result: resultType, Terminated: terminates},
		Value: value,
		Cases: cases,
	}
}
