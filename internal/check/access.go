// Identifier, index, and field access (spec.md §4.4.a). Grounded on
// pannous-goo/src/go/types/expr.go's handling of *ast.Ident/*ast.IndexExpr
// / *ast.SelectorExpr, simplified: there is no package-qualified
// selector here, only struct field access.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/source"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

// checkIdent resolves e against the current scope. A KindConst object
// is spliced in directly rather than wrapped in an AccessExpr (spec.md
// §9 "lower constants by splicing"); everything else becomes an
// AccessExpr over the resolved object.
func (c *Checker) checkIdent(e *ast.Ident, hint *itype.Type) typed.Expr {
	obj, ok := c.curScope.Lookup(e.Name)
	if !ok {
		c.fatal(e.Pos(), "undefined: %s", e.Name)
	}
	if obj.Kind == scope.KindType {
		c.fatal(e.Pos(), "%s is a type, not a value", e.Name)
	}
	return c.accessObject(e.Pos(), obj)
}

// accessObject builds the typed-tree reference for an already-resolved
// scope object, splicing a KindConst object's own checked expression
// (spec.md §9 "lower constants by splicing") instead of wrapping it in
// an AccessExpr. Shared by checkIdent and the struct-literal autofill
// supplement (struct.go), which both resolve a name to an Object before
// turning it into an expression.
func (c *Checker) accessObject(pos source.Position, obj *scope.Object) typed.Expr {
	if obj.Kind == scope.KindConst {
		ce, ok := obj.Const.(typed.Expr)
		if !ok {
			c.fatal(pos, "internal: %s has no spliceable constant value", obj.Ident)
		}
		return ce
	}
	return &typed.AccessExpr{Base: typed.Base{Position: pos, Result: obj.Type}, Object: obj}
}

// checkIndex checks `Array[Index]` (spec.md §4.4.a "index"): Array must
// dereference (through at most one pointer) and dealias to a slice or a
// (sized or unsized) array; Index must be an integer; the result is the
// element type, carrying the array's const flag (spec.md §4.4.a /
// §8 property 8 "const propagates into the element type").
func (c *Checker) checkIndex(e *ast.IndexExpr) typed.Expr {
	arr := c.checkExpr(e.Array, nil)
	deref, nullable := itype.Dereference(arr.ResultType())
	if nullable {
		c.fatal(e.Pos(), "cannot index through a nullable pointer %s", arr.ResultType())
	}
	arrType := itype.Dealias(deref)
	if arrType.Storage != itype.Slice && arrType.Storage != itype.Array {
		c.fatal(e.Pos(), "cannot index %s", arr.ResultType())
	}

	idx := c.checkExpr(e.Index, nil)
	if !itype.IsInteger(idx.ResultType()) {
		c.fatal(e.Index.Pos(), "index must be an integer, got %s", idx.ResultType())
	}
	// spec.md §8 property 2: an index of a different integer width than
	// the store's canonical size type still needs an implicit cast
	// materialized so the typed tree always has an explicit conversion.
	sizeType := c.Store.Builtin(itype.Size, false)
	if !itype.IsIdentical(sizeType, idx.ResultType()) {
		idx = c.require(sizeType, idx)
	}

	elem := arrType.Elem
	if arrType.IsConst() && !elem.IsConst() {
		elem = c.Store.LookupWithFlags(elem, itype.FlagConst)
	}

	return &typed.IndexExpr{
		Base:  typed.Base{Position: e.Pos(), Result: elem},
		Array: arr,
		Index: idx,
	}
}

// checkField checks `Object.Field` (spec.md §4.4.a "field"): Object must
// dereference (through at most one pointer) and dealias to a struct or
// union type with a matching field name.
func (c *Checker) checkField(e *ast.FieldExpr) typed.Expr {
	obj := c.checkExpr(e.Object, nil)
	deref, nullable := itype.Dereference(obj.ResultType())
	if nullable {
		c.fatal(e.Pos(), "cannot access a field through a nullable pointer %s", obj.ResultType())
	}
	field := itype.GetField(itype.Dealias(deref), e.Field)
	if field == nil {
		c.fatal(e.Pos(), "%s has no field %s", obj.ResultType(), e.Field)
	}
	return &typed.FieldExpr{
		Base:   typed.Base{Position: e.Pos(), Result: field.Type},
		Object: obj,
		Field:  field,
	}
}
