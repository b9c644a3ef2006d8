package itype

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the hash-consing type interner (spec.md §4.2). It is
// effectively append-only during checking: existing entries are never
// mutated once returned, so handing out long-lived references to
// interned types is safe even though nothing here is guarded by a mutex
// (spec.md §5 — exactly one checker runs per unit, synchronously).
type Store struct {
	byID map[string]*Type
}

// NewStore returns a Store pre-populated with nothing; Builtins (see
// builtin.go) are interned lazily on first use via Builtin.
func NewStore() *Store {
	return &Store{byID: make(map[string]*Type)}
}

func (s *Store) intern(t *Type) *Type {
	if existing, ok := s.byID[t.Id]; ok {
		return existing
	}
	s.byID[t.Id] = t
	return t
}

// Builtin returns the canonical singleton instance for a primitive
// storage class (spec.md §6 "builtin_type_for_storage").
func (s *Store) Builtin(storage Storage, isConst bool) *Type {
	if isConst {
		// the const variant is the flagged copy of the plain builtin, so
		// IsIdentical treats the two as the same type.
		return s.LookupWithFlags(s.Builtin(storage, false), FlagConst)
	}
	size, align := builtinSizeAlign(storage)
	id := fmt.Sprintf("b:%d:%v", storage, isConst)
	if t, ok := s.byID[id]; ok {
		return t
	}
	return s.intern(&Type{Storage: storage, Size: size, Align: align, Id: id})
}

// LookupWithFlags returns a copy of t with additional flags set,
// interned separately from t itself (spec.md §4.2 "lookup_with_flags").
// The flags also propagate into aggregate member types: an array's or
// slice's element type and every struct/union field type get them too.
func (s *Store) LookupWithFlags(t *Type, flags Flag) *Type {
	if t.Flags&flags == flags {
		return t
	}
	cp := *t
	cp.Flags |= flags
	cp.Id = cp.Id + "+f" + fmt.Sprint(flags)
	switch cp.Storage {
	case Array, Slice:
		cp.Elem = s.LookupWithFlags(cp.Elem, flags)
	case Struct, Union:
		fields := make([]Field, len(cp.Fields))
		for i, f := range cp.Fields {
			fields[i] = Field{Name: f.Name, Type: s.LookupWithFlags(f.Type, flags)}
		}
		cp.Fields = fields
	}
	return s.intern(&cp)
}

// LookupPointer constructs (or returns the existing) pointer type
// (spec.md §4.2 "lookup_pointer").
func (s *Store) LookupPointer(target *Type, nullable bool) *Type {
	id := fmt.Sprintf("*%v:%s", nullable, target.Id)
	size, align := wordSizeAlign()
	return s.intern(&Type{
		Storage: Pointer, Size: size, Align: align, Id: id,
		PointerTo: target, Nullable: nullable,
	})
}

// LookupSlice constructs the slice-of-elem type (spec.md §4.2
// "lookup_slice").
func (s *Store) LookupSlice(elem *Type) *Type {
	id := "[]" + elem.Id
	size, align := sliceHeaderSizeAlign()
	return s.intern(&Type{Storage: Slice, Size: size, Align: align, Id: id, Elem: elem})
}

// LookupArray constructs the [len]elem type; len == UndefinedSize is
// allowed for an open array (spec.md §4.2 "lookup_array").
func (s *Store) LookupArray(elem *Type, length int64) *Type {
	id := fmt.Sprintf("[%d]%s", length, elem.Id)
	size := int64(UndefinedSize)
	if length != UndefinedSize {
		size = length * elem.Size
	}
	return s.intern(&Type{Storage: Array, Size: size, Align: elem.Align, Id: id, Elem: elem, ArrayLen: length})
}

// LookupStruct interns a struct (or, when isUnion, a union) built from
// fields in declaration order (spec.md §4.3 "type" for declared struct
// and union types).
func (s *Store) LookupStruct(name string, fields []Field, isUnion bool) *Type {
	storage := Struct
	if isUnion {
		storage = Union
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d{", storage)
	var size, align int64
	for _, f := range fields {
		fmt.Fprintf(&b, "%s:%s,", f.Name, f.Type.Id)
		if isUnion {
			if f.Type.Size > size {
				size = f.Type.Size
			}
		} else {
			size += f.Type.Size
		}
		if f.Type.Align > align {
			align = f.Type.Align
		}
	}
	b.WriteByte('}')
	t := &Type{Storage: storage, Size: size, Align: align, Id: b.String(), Fields: fields, Name: name}
	return s.intern(t)
}

// LookupTaggedUnion interns a tagged union over the given member types in
// declaration order (spec.md §3 "tagged_union").
func (s *Store) LookupTaggedUnion(members []*Type) *Type {
	ids := make([]string, len(members))
	var size, align int64
	for i, m := range members {
		ids[i] = m.Id
		if m.Size > size {
			size = m.Size
		}
		if m.Align > align {
			align = m.Align
		}
	}
	// discriminant tag shares the union's alignment.
	size += align
	return s.intern(&Type{
		Storage: TaggedUnion, Size: size, Align: align,
		Id: "tu{" + strings.Join(ids, "|") + "}", TUMembers: members,
	})
}

// LookupEnum interns an enum type over base with the given (already
// evaluated) values (spec.md §4.3 "type: if the type is an enum").
func (s *Store) LookupEnum(name string, base *Type, values []EnumValue) *Type {
	sorted := append([]EnumValue(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	var b strings.Builder
	fmt.Fprintf(&b, "enum:%s:%s:", name, base.Id)
	for _, v := range sorted {
		fmt.Fprintf(&b, "%s=%d,", v.Name, v.Value)
	}
	return s.intern(&Type{
		Storage: Enum, Size: base.Size, Align: base.Align, Id: b.String(),
		EnumBase: base, EnumValues: values, Name: name,
	})
}

// LookupFunction interns a function type (spec.md §3 "function").
func (s *Store) LookupFunction(params []Param, result *Type, variadic VariadicMode) *Type {
	var b strings.Builder
	b.WriteString("fn(")
	for _, p := range params {
		fmt.Fprintf(&b, "%s,", p.Type.Id)
	}
	fmt.Fprintf(&b, "):v%d:", variadic)
	if result != nil {
		b.WriteString(result.Id)
	}
	size, align := wordSizeAlign()
	return s.intern(&Type{Storage: Function, Size: size, Align: align, Id: b.String(), Params: params, Result: result, Variadic: variadic})
}

// LookupAlias interns an alias named name whose target is target
// (spec.md §3 "alias").
func (s *Store) LookupAlias(name string, target *Type) *Type {
	return s.intern(&Type{
		Storage: Alias, Size: target.Size, Align: target.Align,
		Id: "alias:" + name, AliasTarget: target, Name: name,
	})
}

// Dereference returns the referent of a non-nullable pointer (with
// nullable==false); nil and nullable==true for a nullable pointer
// (caller must diagnose, per spec.md §4.2 "dereference"); t itself
// (nullable==false) for any other type.
func Dereference(t *Type) (result *Type, nullable bool) {
	if t.Storage == Pointer {
		if t.Nullable {
			return nil, true
		}
		return t.PointerTo, false
	}
	return t, false
}

// Dealias unwraps transparent aliases (spec.md §4.2 "dealias").
func Dealias(t *Type) *Type {
	for t.Storage == Alias {
		t = t.AliasTarget
	}
	return t
}

// IsInteger reports whether t (after dealiasing) is any integer storage
// class (spec.md §4.2 "is_integer").
func IsInteger(t *Type) bool {
	switch Dealias(t).Storage {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Int, Uint, Rune, Uintptr, Size:
		return true
	}
	return false
}

// IsSigned reports whether t is a signed integer storage class
// (spec.md §4.2 "is_signed").
func IsSigned(t *Type) bool {
	switch Dealias(t).Storage {
	case Int8, Int16, Int32, Int64, Int, Rune:
		return true
	}
	return false
}

// IsNumeric reports whether t is integer or floating-point
// (spec.md §4.2 "is_numeric").
func IsNumeric(t *Type) bool {
	d := Dealias(t)
	return IsInteger(t) || d.Storage == F32 || d.Storage == F64
}

// GetField looks up a field by name on a struct or union type
// (spec.md §4.2 "get_field"). Returns nil if t isn't struct/union or has
// no such field.
func GetField(t *Type, name string) *Field {
	d := Dealias(t)
	if d.Storage != Struct && d.Storage != Union {
		return nil
	}
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}
	return nil
}

func builtinSizeAlign(s Storage) (int64, int64) {
	switch s {
	case Void, NullType:
		return 0, 0
	case Bool, Int8, Uint8, Char:
		return 1, 1
	case Int16, Uint16:
		return 2, 2
	case Int32, Uint32, Rune, F32:
		return 4, 4
	case Int64, Uint64, F64:
		return 8, 8
	case Int, Uint, Uintptr, Size:
		w, _ := wordSizeAlign()
		return w, w
	case String:
		w, _ := wordSizeAlign()
		return 2 * w, w
	default:
		return UndefinedSize, 1
	}
}

// wordSizeAlign returns the target word size, fixed at 8 bytes; it does
// not read internal/config's WordSize.
func wordSizeAlign() (int64, int64) { return 8, 8 }

func sliceHeaderSizeAlign() (int64, int64) {
	w, a := wordSizeAlign()
	return 2 * w, a
}
