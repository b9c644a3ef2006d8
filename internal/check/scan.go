// This file implements the declaration scan pass (spec.md §4.3): the
// first of the checker's two passes, which populates the unit scope
// from every subunit's declarations in source order before any
// expression body is checked. Grounded on
// pannous-goo/src/go/types/resolver.go's Checker.resolveFiles, which
// performs the same two-pass split (collect objects, then type-check
// function bodies) for the same reason: a function may reference a
// sibling declared later in the same unit.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
)

func (c *Checker) scanSubunit(su *ast.Subunit) {
	for _, d := range su.Decls {
		switch d := d.(type) {
		case *ast.ConstDecl:
			c.scanConst(d)
		case *ast.FuncDecl:
			c.scanFunc(d)
		case *ast.GlobalDecl:
			c.scanGlobal(d)
		case *ast.TypeDecl:
			c.scanType(d)
		default:
			c.fatal(d.Pos(), "unsupported declaration %T", d)
		}
	}
}

// scanConst interns the declared (or inferred) type, checks the
// initializer against it as a hint, requires assignability, and folds
// the result to a compile-time Value (spec.md §4.3 "const").
func (c *Checker) scanConst(d *ast.ConstDecl) {
	var hint *itype.Type
	if d.Type != nil {
		hint = c.resolveType(d.Type)
	}

	// TODO: tolerate forward references between top-level const/global
	// initializers by deferring unresolved ones to a fixed-point pass
	// instead of evaluating strictly in declaration order.
	v, err := constval.Eval(d.Init, c.constLookup())
	if err != nil {
		c.fatal(d.Pos(), "const %s: %s", d.Name, err)
	}

	natural := inferredConstType(c.Store, v)
	if hint != nil && !itype.IsAssignable(hint, natural) {
		c.fatal(d.Pos(), "const %s: cannot use %s as %s", d.Name, natural, hint)
	}

	typ := hint
	if typ == nil {
		typ = natural
	}
	typ = c.Store.LookupWithFlags(typ, itype.FlagConst)

	ident := c.qualify(d.Name)
	obj := &scope.Object{Kind: scope.KindConst, Ident: ident, Type: typ, Const: constantExpr(d.Pos(), typ, v)}
	c.rememberConst(obj, v)
	c.insertDual(d.Name, obj, d.Exported)
}

// scanFunc builds the function type from the prototype and inserts the
// declaration object; the body is left for pass 2 (spec.md §4.3
// "function").
func (c *Checker) scanFunc(d *ast.FuncDecl) {
	typ := c.resolveFuncType(&ast.FuncType{Params: d.Params, Result: d.Result, Variadic: d.Variadic})
	mangled := d.Symbol
	if mangled == "" {
		mangled = c.mangle(d.Name)
	}
	obj := &scope.Object{Kind: scope.KindDecl, Ident: c.qualify(d.Name), Type: typ, Mangled: mangled}
	c.insertDual(d.Name, obj, d.Exported)
}

// scanGlobal interns the declared type and inserts the declaration
// object; the initializer is checked in pass 2 (spec.md §4.3 "global").
func (c *Checker) scanGlobal(d *ast.GlobalDecl) {
	typ := c.resolveType(d.Type)
	obj := &scope.Object{Kind: scope.KindDecl, Ident: c.qualify(d.Name), Type: typ, Mangled: c.mangle(d.Name)}
	c.insertDual(d.Name, obj, d.Exported)
}

// scanType interns the declared type and inserts it as O_TYPE; for an
// enum, every member is additionally inserted as O_CONST under its
// EnumName::Value form and, when no unit-scope name already uses it,
// its bare member name (spec.md §4.3 "type: if the type is an enum",
// spec.md §8 property 6). Neither key carries the unit namespace.
func (c *Checker) scanType(d *ast.TypeDecl) {
	var typ *itype.Type
	if et, ok := d.Type.(*ast.EnumType); ok {
		typ = c.resolveEnumType(d.Name, et)
	} else {
		typ = c.resolveType(d.Type)
	}

	obj := &scope.Object{Kind: scope.KindType, Ident: c.qualify(d.Name), Type: typ}
	c.insertDual(d.Name, obj, d.Exported)

	if typ.Storage == itype.Enum {
		for _, ev := range typ.EnumValues {
			v := constval.FromInt(ev.Value)
			bare := ev.Name
			qualified := d.Name + "::" + ev.Name
			constType := c.Store.LookupWithFlags(typ, itype.FlagConst)
			constObj := &scope.Object{
				Kind:  scope.KindConst,
				Ident: c.qualify(qualified),
				Type:  constType,
				Const: constantExpr(d.Pos(), constType, v),
			}
			c.rememberConst(constObj, v)
			// spec.md §8 property 6: both the EnumName::Value
			// form and, when unambiguous, the bare
			// member name resolve to the same constant.
			c.unitScope.Insert(qualified, constObj)
			if _, exists := c.unitScope.Lookup(bare); !exists {
				c.unitScope.Insert(bare, constObj)
			}
		}
	}
}

// qualify builds the full ns::name identifier for a top-level name
// under the unit's current namespace.
func (c *Checker) qualify(name string) *scope.Ident {
	if c.namespace == nil {
		return scope.NewIdent(name)
	}
	return scope.Qualify(c.namespace, name)
}

// mangle produces the default link name for a declaration lacking an
// explicit @symbol attribute (spec.md §4.3 "function... use @symbol
// verbatim or mangle as namespace::name").
func (c *Checker) mangle(name string) string {
	return c.qualify(name).String()
}

// insertDual inserts obj into the unit scope under its bare name.
// Exported is currently recorded for declaration-checking in pass 2
// (spec.md §4.5 "export" attribute) but does not otherwise change scope
// visibility — spec.md has no cross-unit import resolution (Non-goals).
func (c *Checker) insertDual(name string, obj *scope.Object, exported bool) {
	c.unitScope.Insert(name, obj)
}

// inferredConstType picks the default storage class for an untyped
// const declaration with no explicit type (spec.md §4.3 "const...
// inferred from Init" and spec.md §9's numeric-promotion open item: a
// simple fixed default rather than untyped-constant promotion).
func inferredConstType(store *itype.Store, v constval.Value) *itype.Type {
	switch v.Kind {
	case constval.Bool:
		return store.Builtin(itype.Bool, false)
	case constval.Int:
		return store.Builtin(itype.Int, false)
	case constval.Uint:
		return store.Builtin(itype.Uint, false)
	case constval.Rune:
		return store.Builtin(itype.Rune, false)
	case constval.Float:
		return store.Builtin(itype.F64, false)
	case constval.String:
		return store.Builtin(itype.String, false)
	default:
		return store.Builtin(itype.Void, false)
	}
}
