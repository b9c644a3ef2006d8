// Casts (spec.md §4.4.g): `Value : Type` (plain conversion), `Value as
// Type` (tagged-union assertion, fatal at check time if Type can never
// be a member), and `Value is Type` (tagged-union membership test,
// result bool). Grounded on pannous-goo/src/go/types/expr.go's
// conversion checking plus labels.go's style of narrow, single-purpose
// helpers — there is no type-switch statement here, so "is"/"as" are
// expression-level instead.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkCast(e *ast.CastExpr) typed.Expr {
	value := c.checkExpr(e.Value, nil)
	target := c.resolveType(e.Type)

	switch e.Kind {
	case ast.CastPlain:
		if !itype.IsCastable(target, value.ResultType()) {
			c.fatal(e.Pos(), "cannot cast %s to %s", value.ResultType(), target)
		}
		return &typed.CastExpr{
			Base:      typed.Base{Position: e.Pos(), Result: target, Terminated: value.Terminates()},
			Kind:      ast.CastPlain,
			Value:     value,
			Secondary: target,
		}

	case ast.CastAssertion:
		if _, ok := itype.TaggedUnionVariant(value.ResultType(), target); !ok {
			c.fatal(e.Pos(), "%s is never a %s", value.ResultType(), target)
		}
		return &typed.CastExpr{
			Base:      typed.Base{Position: e.Pos(), Result: target, Terminated: value.Terminates()},
			Kind:      ast.CastAssertion,
			Value:     value,
			Secondary: target,
		}

	case ast.CastTest:
		if _, ok := itype.TaggedUnionVariant(value.ResultType(), target); !ok {
			c.fatal(e.Pos(), "%s is never a %s", value.ResultType(), target)
		}
		return &typed.CastExpr{
			Base:      typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Bool, false), Terminated: value.Terminates()},
			Kind:      ast.CastTest,
			Value:     value,
			Secondary: target,
		}

	default:
		c.fatal(e.Pos(), "unsupported cast kind %v", e.Kind)
		return nil
	}
}
