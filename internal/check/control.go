// Break/continue (spec.md §4.4.i), resolved by label search rather than
// by general goto (spec.md §4.1). Grounded on
// pannous-goo/src/go/types/labels.go's Checker.labels, narrowed to the
// single for-scope match spec.md describes.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkControl(e *ast.ControlExpr) typed.Expr {
	target, ok := c.curScope.LookupLabel(e.Label)
	if !ok {
		c.fatal(e.Pos(), "unknown label %q", e.Label)
	}
	return &typed.ControlExpr{
		Base:   typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false), Terminated: true},
		Kind:   e.Kind,
		Target: target.Label,
	}
}
