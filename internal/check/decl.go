// Pass 2: elaborating each top-level declaration's body against the
// shape scan.go already installed in the unit scope (spec.md §4.5).
// Grounded on pannous-goo/src/go/types/resolver.go's second pass over
// objMap, which checks function bodies and variable initializers after
// every top-level name is already resolvable.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkDecl(d ast.Decl) typed.Decl {
	switch d := d.(type) {
	case *ast.FuncDecl:
		return c.checkFuncDecl(d)
	case *ast.GlobalDecl:
		return c.checkGlobalDecl(d)
	case *ast.TypeDecl:
		return c.checkTypeDecl(d)
	case *ast.ConstDecl:
		// already fully resolved during the scan pass (spec.md §4.3
		// "const"); pass 2 has nothing further to check, so no
		// declaration is re-emitted here for it.
		return nil
	default:
		c.fatal(d.Pos(), "unsupported declaration %T", d)
		return nil
	}
}

// checkFuncDecl type-checks a function body against the prototype
// scan.go already interned (spec.md §4.5 "function"): a fresh param
// scope is pushed, c.curFunc is set so return statements can validate
// against the result type, and the @init/@fini/@test attributes are
// constrained to niladic, void, unexported functions (spec.md §4.5
// "attribute misuse").
func (c *Checker) checkFuncDecl(d *ast.FuncDecl) typed.Decl {
	obj, ok := c.unitScope.Lookup(d.Name)
	if !ok {
		c.fatal(d.Pos(), "internal: %s missing from unit scope", d.Name)
	}
	fnType := obj.Type

	for _, attr := range d.Attrs {
		switch attr {
		case ast.AttrInit, ast.AttrFini, ast.AttrTest:
			if len(fnType.Params) != 0 || fnType.Result != nil {
				c.fatal(d.Pos(), "@%s function must be niladic and void", attr)
			}
			if d.Exported {
				c.fatal(d.Pos(), "@%s function cannot be exported", attr)
			}
		}
	}

	funcScope := c.pushScope(scope.KindFunc, "")
	params := make([]*scope.Object, len(fnType.Params))
	for i, p := range fnType.Params {
		paramObj := &scope.Object{Kind: scope.KindBind, Ident: scope.NewIdent(p.Name), Mangled: p.Name, Type: p.Type}
		funcScope.Insert(p.Name, paramObj)
		params[i] = paramObj
	}

	wasFunc := c.curFunc
	c.curFunc = fnType
	var body *typed.ListExpr
	if d.Body != nil {
		checked := c.checkExpr(d.Body, fnType.Result)
		lb, ok := checked.(*typed.ListExpr)
		if !ok {
			c.fatal(d.Pos(), "internal: function body did not elaborate to a list")
		}
		// spec.md §1/§4.5 "function-result compatibility": a body that
		// falls off the end must yield a value assignable to the
		// function's result, unless every path already terminates.
		if fnType.Result != nil && !lb.Terminates() {
			if !itype.IsAssignable(fnType.Result, lb.ResultType()) {
				c.fatal(d.Pos(), "function body has type %s, want %s", lb.ResultType(), fnType.Result)
			}
			if !itype.IsIdentical(fnType.Result, lb.ResultType()) {
				lb.Result = fnType.Result
			}
		}
		body = lb
	}
	c.curFunc = wasFunc
	c.popScope()

	return typed.NewFuncDecl(d.Pos(), obj.Mangled, d.Exported, fnType, params, body)
}

// checkGlobalDecl checks the initializer (if any) against the type
// scan.go already interned (spec.md §4.5 "global").
func (c *Checker) checkGlobalDecl(d *ast.GlobalDecl) typed.Decl {
	obj, ok := c.unitScope.Lookup(d.Name)
	if !ok {
		c.fatal(d.Pos(), "internal: %s missing from unit scope", d.Name)
	}

	var init typed.Expr
	if d.Init != nil {
		init = c.require(obj.Type, c.checkExpr(d.Init, obj.Type))
	}

	return typed.NewGlobalDecl(d.Pos(), obj.Mangled, d.Exported, obj.Type, init)
}

// checkTypeDecl re-emits the type scan.go already interned (spec.md
// §4.5 "type"); there is nothing left to elaborate.
func (c *Checker) checkTypeDecl(d *ast.TypeDecl) typed.Decl {
	obj, ok := c.unitScope.Lookup(d.Name)
	if !ok {
		c.fatal(d.Pos(), "internal: %s missing from unit scope", d.Name)
	}
	return typed.NewTypeDecl(d.Pos(), c.mangle(d.Name), d.Exported, obj.Type)
}
