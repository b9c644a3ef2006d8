package itype

import "strings"

// IsIdentical reports whether dst and src are the same interned type,
// ignoring the const flag (spec.md §4.6 "identity is always assignable").
// Two types differing only by a LookupWithFlags(FlagConst) application
// share everything but their outermost Id suffix, so stripping that
// suffix before comparing is enough; a deep structural walk would just
// re-derive what the hash-consed Id already encodes.
func IsIdentical(dst, src *Type) bool {
	dst, src = Dealias(dst), Dealias(src)
	if dst == src {
		return true
	}
	return identityKey(dst) == identityKey(src)
}

func identityKey(t *Type) string {
	if i := strings.LastIndex(t.Id, "+f"); i >= 0 {
		return t.Id[:i]
	}
	return t.Id
}

// IsAssignable implements the assignability relation dst <- src
// (spec.md §4.6): identity is always assignable; null is assignable to
// any nullable pointer; a sized array is assignable to an unsized array
// of the same element type; slices and strings are not interconvertible
// by assignment; tagged-union narrowing always requires an explicit
// cast. It is a refinement of IsCastable: every pair it allows,
// IsCastable also allows.
func IsAssignable(dst, src *Type) bool {
	dst, src = Dealias(dst), Dealias(src)

	if IsIdentical(dst, src) {
		return true
	}
	if dst.Storage == Pointer && dst.Nullable && src.Storage == NullType {
		return true
	}
	if dst.Storage == Array && src.Storage == Array &&
		dst.ArrayLen == UndefinedSize && src.ArrayLen != UndefinedSize &&
		IsIdentical(dst.Elem, src.Elem) {
		return true
	}
	if IsNumeric(dst) && IsNumeric(src) && dst.Storage == src.Storage {
		return true
	}
	return false
}

// IsCastable implements the broader castability relation permitted by an
// explicit cast operator (spec.md §4.6). Every numeric pair is
// castable; pointer-to-pointer and integer-to/from-pointer conversions
// are castable (no size check is made); string and []u8 convert both
// ways; assignable pairs are always castable.
func IsCastable(dst, src *Type) bool {
	if IsAssignable(dst, src) {
		return true
	}
	dst, src = Dealias(dst), Dealias(src)

	if IsNumeric(dst) && IsNumeric(src) {
		return true
	}
	if dst.Storage == Pointer && src.Storage == Pointer {
		return true
	}
	if dst.Storage == Pointer && IsInteger(src) {
		return true
	}
	if IsInteger(dst) && src.Storage == Pointer {
		return true
	}
	if dst.Storage == String && src.Storage == Slice && src.Elem.Storage == Uint8 {
		return true
	}
	if dst.Storage == Slice && dst.Elem.Storage == Uint8 && src.Storage == String {
		return true
	}
	return false
}

// TaggedUnionVariant reports whether candidate names one of tu's member
// types, returning that member (spec.md §4.4.g "assertion"/"test").
func TaggedUnionVariant(tu *Type, candidate *Type) (*Type, bool) {
	d := Dealias(tu)
	if d.Storage != TaggedUnion {
		return nil, false
	}
	for _, m := range d.TUMembers {
		if IsIdentical(m, candidate) {
			return m, true
		}
	}
	return nil, false
}
