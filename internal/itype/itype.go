// Package itype implements the type store: a hash-consing interner for
// the language's structural types (spec.md §4.2, "Type store interface").
// It is consumed by internal/check the way go/types' Checker consumes its
// own Basic/Pointer/Slice/Array/Struct/Named family, simplified to the
// storage classes spec.md §3 enumerates (no generics, no interfaces).
package itype

import (
	"fmt"
	"strings"
)

// Storage tags the storage class of a Type (spec.md §3 "Type").
type Storage int

const (
	Invalid Storage = iota
	Void
	Bool
	NullType
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Int
	Uint
	Rune
	F32
	F64
	Char
	Uintptr
	Size
	String
	Pointer
	Slice
	Array
	Struct
	Union
	TaggedUnion
	Enum
	Function
	Alias
)

// Flag is a bitset carried on every Type (spec.md §3 "flags").
type Flag uint8

const (
	FlagConst Flag = 1 << iota
)

// UndefinedSize marks an unsized type (e.g. an open array) per spec.md §3
// ("size == UNDEFINED means unsized").
const UndefinedSize = -1

// VariadicMode mirrors ast.VariadicMode for interned function types.
type VariadicMode int

const (
	VariadicNone VariadicMode = iota
	VariadicNative
)

// Field describes one struct/union member (spec.md §3 struct/union
// payload).
type Field struct {
	Name string
	Type *Type
}

// EnumValue describes one member of an enum type, already evaluated
// during the scan pass (spec.md §4.3 "type: if the type is an enum").
type EnumValue struct {
	Name  string
	Value int64
}

// Param describes one function parameter.
type Param struct {
	Name string
	Type *Type
}

// Type is an interned, immutable structural type (spec.md §3 "Type").
// Two structurally identical types share the same Id and the same Go
// pointer identity once interned (spec.md §3 invariant, §8 property 7).
type Type struct {
	Storage Storage
	Flags   Flag
	Size    int64
	Align   int64
	Id      string

	// storage-specific payloads; only the field matching Storage is valid.
	PointerTo   *Type
	Nullable    bool
	Elem        *Type // array/slice element
	ArrayLen    int64 // UndefinedSize if open
	Fields      []Field
	TUMembers   []*Type // tagged union member types, in declaration order
	EnumValues  []EnumValue
	EnumBase    *Type
	Params      []Param
	Result      *Type
	Variadic    VariadicMode
	AliasTarget *Type
	Name        string // declared name, for aliases/structs/enums/unions in diagnostics
}

// IsConst reports whether t carries the const flag.
func (t *Type) IsConst() bool { return t.Flags&FlagConst != 0 }

// String renders t for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	switch t.Storage {
	case Pointer:
		pre := "*"
		if t.Nullable {
			pre = "nullable *"
		}
		return pre + t.PointerTo.String()
	case Slice:
		return "[]" + t.Elem.String()
	case Array:
		if t.ArrayLen == UndefinedSize {
			return "[]" + t.Elem.String()
		}
		return fmt.Sprintf("[%d]%s", t.ArrayLen, t.Elem.String())
	case Alias:
		return t.Name
	case Struct, Union, Enum:
		if t.Name != "" {
			return t.Name
		}
		return structString(t)
	case TaggedUnion:
		names := make([]string, len(t.TUMembers))
		for i, m := range t.TUMembers {
			names[i] = m.String()
		}
		return "(" + strings.Join(names, " | ") + ")"
	case Function:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.Type.String()
		}
		res := "void"
		if t.Result != nil {
			res = t.Result.String()
		}
		return fmt.Sprintf("fn(%s) %s", strings.Join(params, ", "), res)
	default:
		return basicName(t.Storage)
	}
}

func structString(t *Type) string {
	kw := "struct"
	if t.Storage == Union {
		kw = "union"
	}
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return kw + " { " + strings.Join(parts, ", ") + " }"
}

func basicName(s Storage) string {
	switch s {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case NullType:
		return "null"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Uint8:
		return "u8"
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Uint64:
		return "u64"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Rune:
		return "rune"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Char:
		return "char"
	case Uintptr:
		return "uintptr"
	case Size:
		return "size"
	case String:
		return "string"
	default:
		return "invalid"
	}
}
