package constval

import (
	"go/constant"
	gotoken "go/token"

	"github.com/pkg/errors"

	"github.com/Sovenok-Hacker/harec/internal/ast"
)

// Lookup resolves a named constant already bound in the current scope;
// the checker supplies this so constval never needs to know about scope
// or the unit (spec.md §6 treats the evaluator as a narrow collaborator).
type Lookup func(name string) (Value, bool)

// Eval folds a constant expression to a Value, or returns an error the
// checker treats as a fatal diagnostic (spec.md §6 "the checker treats
// ERR as a fatal diagnostic"). It covers exactly the constant forms
// spec.md's scan and check passes feed it: literals, identifier
// references to other constants, unary and binary arithmetic over
// those, and array literals (spec.md §9 lists struct and float constant
// folding as an open item beyond float literals themselves).
func Eval(e ast.Expr, lookup Lookup) (Value, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		if e.Signed {
			return FromInt(e.Value), nil
		}
		return FromUint(uint64(e.Value)), nil
	case *ast.FloatLit:
		return FromFloat(e.Value), nil
	case *ast.BoolLit:
		return FromBool(e.Value), nil
	case *ast.RuneLit:
		return FromRune(e.Value), nil
	case *ast.StringLit:
		return FromString(e.Value), nil
	case *ast.NullLit:
		return Value{}, errors.New("null has no compile-time representation")

	case *ast.Ident:
		if v, ok := lookup(e.Name); ok {
			return v, nil
		}
		return Value{}, errors.Errorf("%s is not a compile-time constant", e.Name)

	case *ast.UnArithmExpr:
		operand, err := Eval(e.Operand, lookup)
		if err != nil {
			return Value{}, errors.Wrapf(err, "evaluating operand of %s", e.Op)
		}
		return evalUnary(e.Op, operand)

	case *ast.BinArithmExpr:
		lv, err := Eval(e.LValue, lookup)
		if err != nil {
			return Value{}, errors.Wrap(err, "evaluating left operand")
		}
		rv, err := Eval(e.RValue, lookup)
		if err != nil {
			return Value{}, errors.Wrap(err, "evaluating right operand")
		}
		return evalBinary(e.Op, lv, rv)

	case *ast.ArrayLit:
		elems := make([]Value, 0, len(e.Elems))
		for _, el := range e.Elems {
			v, err := Eval(el.Value, lookup)
			if err != nil {
				return Value{}, errors.Wrap(err, "evaluating array element")
			}
			elems = append(elems, v)
		}
		return FromArray(elems), nil

	default:
		return Value{}, errors.Errorf("%T is not a compile-time constant expression", e)
	}
}

func evalUnary(op ast.ArithOp, v Value) (Value, error) {
	switch op {
	case ast.OpNot:
		return FromBool(!v.BoolVal()), nil
	case ast.OpNeg:
		return Value{Kind: v.Kind, raw: constant.UnaryOp(gotoken.SUB, v.raw, 0)}, nil
	case ast.OpPos:
		return v, nil
	case ast.OpBNot:
		return Value{Kind: v.Kind, raw: constant.UnaryOp(gotoken.XOR, v.raw, 0)}, nil
	default:
		return Value{}, errors.Errorf("%s is not a constant-foldable unary operator", op)
	}
}

var binTok = map[ast.ArithOp]gotoken.Token{
	ast.OpAdd: gotoken.ADD,
	ast.OpSub: gotoken.SUB,
	ast.OpMul: gotoken.MUL,
	ast.OpDiv: gotoken.QUO,
	ast.OpMod: gotoken.REM,
	ast.OpAnd: gotoken.AND,
	ast.OpOr:  gotoken.OR,
	ast.OpXor: gotoken.XOR,
	ast.OpShl: gotoken.SHL,
	ast.OpShr: gotoken.SHR,
}

var cmpTok = map[ast.ArithOp]gotoken.Token{
	ast.OpLt: gotoken.LSS,
	ast.OpLe: gotoken.LEQ,
	ast.OpGt: gotoken.GTR,
	ast.OpGe: gotoken.GEQ,
	ast.OpEq: gotoken.EQL,
	ast.OpNe: gotoken.NEQ,
}

func evalBinary(op ast.ArithOp, lv, rv Value) (Value, error) {
	if tok, ok := cmpTok[op]; ok {
		return FromBool(constant.Compare(lv.raw, tok, rv.raw)), nil
	}
	switch op {
	case ast.OpLAnd:
		return FromBool(lv.BoolVal() && rv.BoolVal()), nil
	case ast.OpLOr:
		return FromBool(lv.BoolVal() || rv.BoolVal()), nil
	case ast.OpLXor:
		return FromBool(lv.BoolVal() != rv.BoolVal()), nil
	}
	tok, ok := binTok[op]
	if !ok {
		return Value{}, errors.Errorf("%s is not a constant-foldable binary operator", op)
	}
	if tok == gotoken.SHL || tok == gotoken.SHR {
		n, _ := constant.Uint64Val(rv.raw)
		return Value{Kind: lv.Kind, raw: constant.Shift(lv.raw, tok, uint(n))}, nil
	}
	return Value{Kind: lv.Kind, raw: constant.BinaryOp(lv.raw, tok, rv.raw)}, nil
}
