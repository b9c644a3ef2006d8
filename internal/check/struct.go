// Struct literals (spec.md §4.4.q), plus the named-struct-literal and
// autofill supplements (SPEC_FULL.md SUPPLEMENTED FEATURES). Grounded
// on pannous-goo/src/go/types/expr.go's Checker.compositeLit, which
// resolves a composite literal's type from either an explicit type
// name or the surrounding context exactly the way this function
// resolves e.Name or falls back to hint.
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

func (c *Checker) checkStructLit(e *ast.StructLit, hint *itype.Type) typed.Expr {
	var structType *itype.Type
	if e.Name != "" {
		obj, ok := c.curScope.Lookup(e.Name)
		if !ok || obj.Kind != scope.KindType {
			c.fatal(e.Pos(), "unknown struct type %s", e.Name)
		}
		structType = obj.Type
	} else if hint != nil {
		structType = hint
	} else {
		c.fatal(e.Pos(), "struct literal requires a known type from context")
	}

	d := itype.Dealias(structType)
	if d.Storage != itype.Struct && d.Storage != itype.Union {
		c.fatal(e.Pos(), "%s is not a struct or union type", structType)
	}

	given := make(map[string]*ast.StructLitField, len(e.Fields))
	for _, f := range e.Fields {
		given[f.Name] = f
	}

	fields := make([]*typed.StructField, 0, len(d.Fields))
	for i := range d.Fields {
		field := &d.Fields[i]
		lit, ok := given[field.Name]
		var value typed.Expr
		switch {
		case ok:
			value = c.require(field.Type, c.checkExpr(lit.Value, field.Type))
			delete(given, field.Name)
		case e.Autofill:
			// SPEC_FULL.md autofill: a field missing from the literal
			// is filled from a same-named binding already in scope.
			obj, found := c.curScope.Lookup(field.Name)
			if !found || obj.Kind == scope.KindType {
				c.fatal(e.Pos(), "autofill: no binding named %s in scope for field %s", field.Name, field.Name)
			}
			value = c.require(field.Type, c.accessObject(e.Pos(), obj))
		default:
			c.fatal(e.Pos(), "missing field %s", field.Name)
		}
		fields = append(fields, &typed.StructField{Field: field, Value: value})
	}
	for name := range given {
		c.fatal(e.Pos(), "%s has no field %s", structType, name)
	}

	return &typed.StructExpr{
		Base:   typed.Base{Position: e.Pos(), Result: structType},
		Fields: fields,
	}
}
