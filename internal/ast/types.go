package ast

import "github.com/Sovenok-Hacker/harec/internal/source"

// UndefinedLen marks an array type with no fixed length (spec.md §3
// "size == UNDEFINED means unsized").
const UndefinedLen int64 = -1

// NamedType references a declared type or builtin storage class by name,
// e.g. `int`, `MyStruct`, `Color` (spec.md §4.2 "lookup_atype").
type NamedType struct {
	pos
	Name string
}

func (*NamedType) typeNode() {}

// NewNamedType builds a NamedType at the given position.
func NewNamedType(p source.Position, name string) *NamedType {
	return &NamedType{pos: newPos(p), Name: name}
}

// PointerType is `*T` / `nullable *T` (spec.md §3 "pointer").
type PointerType struct {
	pos
	Target   Type
	Nullable bool
}

func (*PointerType) typeNode() {}

// NewPointerType builds a PointerType at the given position.
func NewPointerType(p source.Position, target Type, nullable bool) *PointerType {
	return &PointerType{pos: newPos(p), Target: target, Nullable: nullable}
}

// SliceType is `[]T` (spec.md §3 "slice").
type SliceType struct {
	pos
	Elem Type
}

func (*SliceType) typeNode() {}

// NewSliceType builds a SliceType at the given position.
func NewSliceType(p source.Position, elem Type) *SliceType {
	return &SliceType{pos: newPos(p), Elem: elem}
}

// ArrayType is `[N]T` or `[]T` with an undefined length
// (Len == UndefinedLen) (spec.md §3 "array").
type ArrayType struct {
	pos
	Elem Type
	Len  int64
}

func (*ArrayType) typeNode() {}

// NewArrayType builds an ArrayType at the given position.
func NewArrayType(p source.Position, elem Type, length int64) *ArrayType {
	return &ArrayType{pos: newPos(p), Elem: elem, Len: length}
}

// StructField is one member of a struct or union type declaration.
type StructField struct {
	Name string
	Type Type
}

// StructType is a struct type declaration (spec.md §3 "struct").
type StructType struct {
	pos
	Fields []*StructField
}

func (*StructType) typeNode() {}

// NewStructType builds a StructType at the given position.
func NewStructType(p source.Position, fields []*StructField) *StructType {
	return &StructType{pos: newPos(p), Fields: fields}
}

// UnionType is a union type declaration (spec.md §3 "union").
type UnionType struct {
	pos
	Fields []*StructField
}

func (*UnionType) typeNode() {}

// NewUnionType builds a UnionType at the given position.
func NewUnionType(p source.Position, fields []*StructField) *UnionType {
	return &UnionType{pos: newPos(p), Fields: fields}
}

// TaggedUnionType is a tagged-union (sum) type declaration
// (spec.md §3 "tagged_union").
type TaggedUnionType struct {
	pos
	Members []Type
}

func (*TaggedUnionType) typeNode() {}

// NewTaggedUnionType builds a TaggedUnionType at the given position.
func NewTaggedUnionType(p source.Position, members []Type) *TaggedUnionType {
	return &TaggedUnionType{pos: newPos(p), Members: members}
}

// EnumValue is one member of an enum declaration; Init is nil when the
// value is implicitly the previous value plus one (starting at 0).
type EnumValue struct {
	Name string
	Init Expr
}

// EnumType is an enum type declaration (spec.md §3 "enum",
// spec.md §4.3 "type: if the type is an enum...").
type EnumType struct {
	pos
	Base   Type // underlying storage type; nil defaults to int
	Values []*EnumValue
}

func (*EnumType) typeNode() {}

// NewEnumType builds an EnumType at the given position.
func NewEnumType(p source.Position, base Type, values []*EnumValue) *EnumType {
	return &EnumType{pos: newPos(p), Base: base, Values: values}
}

// VariadicMode enumerates how a function's final parameter is spread.
type VariadicMode int

const (
	VariadicNone VariadicMode = iota
	// VariadicNative surfaces the tail parameter as a slice to the
	// callee (spec.md GLOSSARY "Native variadism").
	VariadicNative
)

// Param is one named, typed function parameter.
type Param struct {
	Name string
	Type Type
}

// FuncType is a function type/prototype (spec.md §3 "function").
type FuncType struct {
	pos
	Params   []*Param
	Result   Type // nil means void
	Variadic VariadicMode
}

func (*FuncType) typeNode() {}

// NewFuncType builds a FuncType at the given position.
func NewFuncType(p source.Position, params []*Param, result Type, variadic VariadicMode) *FuncType {
	return &FuncType{pos: newPos(p), Params: params, Result: result, Variadic: variadic}
}
