// Binary and unary arithmetic/relational expressions (spec.md §4.4.d,
// §4.4.s). Grounded on pannous-goo/src/go/types/expr.go's binary/unary
// op checking, simplified to this language's fixed numeric-width model
// (spec.md §9 "no numeric promotion": both operands of a binary
// arithmetic op must already share the same type).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

var comparisonOps = map[ast.ArithOp]bool{
	ast.OpLt: true, ast.OpLe: true, ast.OpGt: true, ast.OpGe: true,
	ast.OpEq: true, ast.OpNe: true,
}

var logicalOps = map[ast.ArithOp]bool{
	ast.OpLAnd: true, ast.OpLOr: true, ast.OpLXor: true,
}

func (c *Checker) checkBinArithm(e *ast.BinArithmExpr, hint *itype.Type) typed.Expr {
	lv := c.checkExpr(e.LValue, hint)
	rv := c.checkExpr(e.RValue, lv.ResultType())

	switch {
	case logicalOps[e.Op]:
		boolType := c.Store.Builtin(itype.Bool, false)
		lv = c.require(boolType, lv)
		rv = c.require(boolType, rv)
	default:
		if !itype.IsNumeric(lv.ResultType()) {
			c.fatal(e.LValue.Pos(), "%s is not numeric", lv.ResultType())
		}
		// TODO: widen the narrower operand instead of requiring an
		// identical type once numeric promotion rules are settled.
		if !itype.IsIdentical(lv.ResultType(), rv.ResultType()) {
			c.fatal(e.RValue.Pos(), "mismatched operand types %s and %s", lv.ResultType(), rv.ResultType())
		}
	}

	result := lv.ResultType()
	if comparisonOps[e.Op] || logicalOps[e.Op] {
		result = c.Store.Builtin(itype.Bool, false)
	}

	return &typed.BinArithmExpr{
		Base:   typed.Base{Position: e.Pos(), Result: result, Terminated: lv.Terminates() || rv.Terminates()},
		Op:     e.Op,
		LValue: lv,
		RValue: rv,
	}
}

func (c *Checker) checkUnArithm(e *ast.UnArithmExpr, hint *itype.Type) typed.Expr {
	switch e.Op {
	case ast.OpAddr:
		operand := c.checkExpr(e.Operand, nil)
		ptr := c.Store.LookupPointer(operand.ResultType(), false)
		return &typed.UnArithmExpr{
			Base:    typed.Base{Position: e.Pos(), Result: ptr, Terminated: operand.Terminates()},
			Op:      e.Op,
			Operand: operand,
		}
	case ast.OpDeref:
		operand := c.checkExpr(e.Operand, nil)
		target, nullable := itype.Dereference(operand.ResultType())
		if nullable {
			c.fatal(e.Pos(), "cannot dereference a nullable pointer without a cast")
		}
		return &typed.UnArithmExpr{
			Base:    typed.Base{Position: e.Pos(), Result: target, Terminated: operand.Terminates()},
			Op:      e.Op,
			Operand: operand,
		}
	case ast.OpNot:
		boolType := c.Store.Builtin(itype.Bool, false)
		operand := c.require(boolType, c.checkExpr(e.Operand, boolType))
		return &typed.UnArithmExpr{
			Base:    typed.Base{Position: e.Pos(), Result: boolType, Terminated: operand.Terminates()},
			Op:      e.Op,
			Operand: operand,
		}
	default: // OpNeg, OpPos, OpBNot
		operand := c.checkExpr(e.Operand, hint)
		result := operand.ResultType()
		// spec.md §4.4.s: ~ only makes sense bit-wise on an unsigned
		// integer; unary -/+ require a signed numeric operand.
		switch e.Op {
		case ast.OpBNot:
			if !itype.IsInteger(result) || itype.IsSigned(result) {
				c.fatal(e.Operand.Pos(), "~ requires an unsigned integer, got %s", result)
			}
		default:
			if !itype.IsNumeric(result) || (itype.IsInteger(result) && !itype.IsSigned(result)) {
				c.fatal(e.Operand.Pos(), "unary sign operator requires a signed numeric operand, got %s", result)
			}
		}
		return &typed.UnArithmExpr{
			Base:    typed.Base{Position: e.Pos(), Result: result, Terminated: operand.Terminates()},
			Op:      e.Op,
			Operand: operand,
		}
	}
}
