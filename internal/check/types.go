// This file implements lookup_atype (spec.md §4.2): turning a syntactic
// ast.Type into an interned itype.Type, resolving named non-builtin
// types against the unit scope. Grounded on
// pannous-goo/src/go/types/typexpr.go's typInternal, simplified to
// spec.md's storage-class set (no generics, no interfaces, no maps).
package check

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
)

// resolveType interns t, resolving named types against the current
// scope. const is never set here directly — callers apply
// Store.LookupWithFlags(result, itype.FlagConst) when the declaring
// syntax asked for a const binding (spec.md §3 "const propagates into
// array/struct field types through lookup_with_flags").
func (c *Checker) resolveType(t ast.Type) *itype.Type {
	switch t := t.(type) {
	case *ast.NamedType:
		return c.resolveNamedType(t)

	case *ast.PointerType:
		target := c.resolveType(t.Target)
		return c.Store.LookupPointer(target, t.Nullable)

	case *ast.SliceType:
		return c.Store.LookupSlice(c.resolveType(t.Elem))

	case *ast.ArrayType:
		return c.Store.LookupArray(c.resolveType(t.Elem), t.Len)

	case *ast.StructType:
		return c.Store.LookupStruct("", c.resolveFields(t.Fields), false)

	case *ast.UnionType:
		return c.Store.LookupStruct("", c.resolveFields(t.Fields), true)

	case *ast.TaggedUnionType:
		members := make([]*itype.Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = c.resolveType(m)
		}
		return c.Store.LookupTaggedUnion(members)

	case *ast.EnumType:
		return c.resolveEnumType("", t)

	case *ast.FuncType:
		return c.resolveFuncType(t)

	default:
		c.fatal(t.Pos(), "unsupported type syntax %T", t)
		return nil
	}
}

func (c *Checker) resolveFields(fields []*ast.StructField) []itype.Field {
	out := make([]itype.Field, len(fields))
	for i, f := range fields {
		out[i] = itype.Field{Name: f.Name, Type: c.resolveType(f.Type)}
	}
	return out
}

func (c *Checker) resolveNamedType(t *ast.NamedType) *itype.Type {
	if storage, ok := itype.LookupBuiltinName(t.Name); ok {
		return c.Store.Builtin(storage, false)
	}
	obj, ok := c.curScope.Lookup(t.Name)
	if !ok {
		c.fatal(t.Pos(), "unknown type %s", t.Name)
	}
	if obj.Kind != scope.KindType {
		c.fatal(t.Pos(), "expected a type, got %s", t.Name)
	}
	return obj.Type
}

func (c *Checker) resolveFuncType(t *ast.FuncType) *itype.Type {
	params := make([]itype.Param, len(t.Params))
	for i, p := range t.Params {
		typ := c.resolveType(p.Type)
		if t.Variadic == ast.VariadicNative && i == len(t.Params)-1 {
			typ = c.Store.LookupSlice(typ)
		}
		params[i] = itype.Param{Name: p.Name, Type: typ}
	}
	var result *itype.Type
	if t.Result != nil {
		result = c.resolveType(t.Result)
	}
	variadic := itype.VariadicNone
	if t.Variadic == ast.VariadicNative {
		variadic = itype.VariadicNative
	}
	return c.Store.LookupFunction(params, result, variadic)
}

// resolveEnumType interns an enum declaration's type, evaluating each
// member's value here (an explicit initializer, or the previous value
// plus one, starting at 0). scan.go's scanType then inserts the members
// as constants (spec.md §4.3 "type: if the type is an enum").
func (c *Checker) resolveEnumType(name string, t *ast.EnumType) *itype.Type {
	base := c.Store.Builtin(itype.Int, false)
	if t.Base != nil {
		base = c.resolveType(t.Base)
	}
	values := make([]itype.EnumValue, 0, len(t.Values))
	next := int64(0)
	for _, v := range t.Values {
		val := next
		if v.Init != nil {
			cv, err := constval.Eval(v.Init, c.constLookup())
			if err != nil {
				c.fatal(t.Pos(), "enum value %s: %s", v.Name, err)
			}
			val = cv.Int64Val()
		}
		values = append(values, itype.EnumValue{Name: v.Name, Value: val})
		next = val + 1
	}
	return c.Store.LookupEnum(name, base, values)
}
