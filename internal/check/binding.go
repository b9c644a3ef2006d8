// Let/const/static binding lists (spec.md §4.4.e). Grounded on
// pannous-goo/src/go/types/stmt.go's Checker.assignVar /
// shortVarDecl local-declaration handling, adapted to this language's
// single unified binding-list form instead of Go's `:=`/`var`.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkBinding(e *ast.BindingExpr) typed.Expr {
	bindings := make([]*typed.Binding, len(e.Bindings))
	for i, b := range e.Bindings {
		bindings[i] = c.checkBinder(b)
	}
	return &typed.BindingExpr{
		Base:     typed.Base{Position: e.Pos(), Result: c.Store.Builtin(itype.Void, false)},
		Bindings: bindings,
	}
}

func (c *Checker) checkBinder(b *ast.Binder) *typed.Binding {
	var hint *itype.Type
	if b.Type != nil {
		hint = c.resolveType(b.Type)
	}

	init := c.checkExpr(b.Init, hint)
	typ := hint
	if typ == nil {
		typ = init.ResultType()
	}
	if b.Flags&ast.BindConst != 0 {
		typ = c.Store.LookupWithFlags(typ, itype.FlagConst)
	}
	init = c.require(typ, init)

	// spec.md §4.4.e step 3 / §7 "Zero-size binding": a binding of an
	// unsized or zero-size type can never be stored anywhere.
	if typ.Size == 0 || typ.Size == itype.UndefinedSize {
		c.fatal(b.Position, "cannot bind %s: type has no storage size", typ)
	}

	name := b.Name
	mangled := name
	if b.Static {
		// spec.md §4.4.e "static": a static local keeps its value across
		// calls and is given a unit-unique link name (spec.md §9
		// "Synthetic names").
		mangled = c.nextStaticName()
	}

	kind := scope.KindBind
	var constExpr scope.ConstExprer
	var constValue constval.Value
	switch {
	case b.Flags&ast.BindConst != 0:
		kind = scope.KindConst
		v, err := constval.Eval(b.Init, c.constLookup())
		if err != nil {
			c.fatal(b.Position, "const binding %s: %s", name, err)
		}
		constValue = v
		constExpr = constantExpr(b.Position, typ, v)
	case b.Static:
		// spec.md §4.4.e step 6 "static": a non-const static local still
		// only runs its initializer once, at link time, so it links as a
		// unit-global (scope.KindDecl) rather than a runtime KindBind, and
		// its initializer is folded to a constant value up front.
		kind = scope.KindDecl
		v, err := constval.Eval(b.Init, c.constLookup())
		if err != nil {
			c.fatal(b.Position, "static binding %s: initializer must be a constant expression: %s", name, err)
		}
		init = constantExpr(b.Position, typ, v)
	}

	obj := &scope.Object{Kind: kind, Ident: scope.NewIdent(name), Mangled: mangled, Type: typ, Const: constExpr}
	if kind == scope.KindConst {
		c.rememberConst(obj, constValue)
	}
	c.curScope.Insert(name, obj)

	return &typed.Binding{Object: obj, Init: init}
}
