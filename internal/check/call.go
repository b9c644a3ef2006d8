// Calls (spec.md §4.4.f), including native-variadic spreading
// (GLOSSARY "Native variadism"). Grounded on
// pannous-goo/src/go/types/call.go's Checker.arguments, simplified to
// this language's fixed-arity-plus-optional-tail-slice calling
// convention (no named/optional parameters, no generics instantiation).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkCall(e *ast.CallExpr) typed.Expr {
	callee := c.checkExpr(e.Callee, nil)
	fn := itype.Dealias(callee.ResultType())
	if fn.Storage != itype.Function {
		c.fatal(e.Pos(), "cannot call %s", callee.ResultType())
	}

	fixed := fn.Params
	variadic := fn.Variadic == itype.VariadicNative
	if variadic {
		fixed = fn.Params[:len(fn.Params)-1]
	}
	if len(e.Args) < len(fixed) || (!variadic && len(e.Args) != len(fn.Params)) {
		c.fatal(e.Pos(), "wrong number of arguments: got %d, want %d", len(e.Args), len(fn.Params))
	}

	args := make([]typed.Expr, 0, len(e.Args))
	for i, p := range fixed {
		args = append(args, c.require(p.Type, c.checkExpr(e.Args[i], p.Type)))
	}
	if variadic {
		// spec.md §4.4.f / scenario S5: the trailing arguments spread into
		// a single synthetic array literal, checked as one unit against
		// the tail parameter's slice type, not cast one by one.
		tailSlice := fn.Params[len(fn.Params)-1].Type
		rest := e.Args[len(fixed):]
		elems := make([]*ast.ArrayLitElem, len(rest))
		for i, a := range rest {
			elems[i] = &ast.ArrayLitElem{Value: a}
		}
		spread := ast.NewArrayLit(e.Pos(), elems)
		args = append(args, c.require(tailSlice, c.checkExpr(spread, tailSlice)))
	}

	result := c.Store.Builtin(itype.Void, false)
	if fn.Result != nil {
		result = fn.Result
	}
	return &typed.CallExpr{
		Base:   typed.Base{Position: e.Pos(), Result: result},
		Callee: callee,
		Args:   args,
	}
}
