// checkExpr is the central dispatch of the expression check pass
// (spec.md §4.4): it type-switches over every untyped ast.Expr kind and
// calls the matching check<Kind> method, threading the contextual type
// hint spec.md §4.4 describes ("hint: optionally a Type, used by
// literals and composite expressions to resolve ambiguity"). Grounded
// on pannous-goo/src/go/types/expr.go's Checker.rawExpr / exprInternal,
// which is the same kind of single big type switch over ast.Expr.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkExpr(e ast.Expr, hint *itype.Type) typed.Expr {
	switch e := e.(type) {
	case *ast.Ident:
		return c.checkIdent(e, hint)
	case *ast.IndexExpr:
		return c.checkIndex(e)
	case *ast.FieldExpr:
		return c.checkField(e)
	case *ast.AssertExpr:
		return c.checkAssert(e)
	case *ast.AssignExpr:
		return c.checkAssign(e)
	case *ast.BinArithmExpr:
		return c.checkBinArithm(e, hint)
	case *ast.UnArithmExpr:
		return c.checkUnArithm(e, hint)
	case *ast.BindingExpr:
		return c.checkBinding(e)
	case *ast.CallExpr:
		return c.checkCall(e)
	case *ast.CastExpr:
		return c.checkCast(e)
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.RuneLit, *ast.StringLit, *ast.NullLit:
		return c.checkLiteral(e, hint)
	case *ast.ArrayLit:
		return c.checkArrayLit(e, hint)
	case *ast.ControlExpr:
		return c.checkControl(e)
	case *ast.DeferExpr:
		return c.checkDefer(e)
	case *ast.ForExpr:
		return c.checkFor(e)
	case *ast.IfExpr:
		return c.checkIf(e, hint)
	case *ast.ListExpr:
		return c.checkList(e, hint)
	case *ast.MeasureExpr:
		return c.checkMeasure(e)
	case *ast.ReturnExpr:
		return c.checkReturn(e)
	case *ast.SliceExpr:
		return c.checkSlice(e)
	case *ast.StructLit:
		return c.checkStructLit(e, hint)
	case *ast.SwitchExpr:
		return c.checkSwitch(e, hint)
	default:
		c.fatal(e.Pos(), "unsupported expression %T", e)
		return nil
	}
}

// require aborts with a type-mismatch diagnostic unless value's result
// is assignable to dst, otherwise returns value unchanged or wrapped in
// an implicit CastExpr when the result type differs from dst (spec.md
// §8 property 2 "insert an implicit cast ... whenever the checked
// value's result type differs from the target type").
func (c *Checker) require(dst *itype.Type, value typed.Expr) typed.Expr {
	src := value.ResultType()
	if !itype.IsAssignable(dst, src) {
		c.fatal(value.Pos(), "cannot assign %s to %s", src, dst)
	}
	if itype.IsIdentical(dst, src) {
		return value
	}
	return &typed.CastExpr{
		Base:      typed.Base{Position: value.Pos(), Result: dst, Terminated: value.Terminates()},
		Kind:      ast.CastPlain,
		Value:     value,
		Secondary: dst,
	}
}
