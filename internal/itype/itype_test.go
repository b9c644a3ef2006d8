package itype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovenok-Hacker/harec/internal/itype"
)

func TestBuiltinSingletons(t *testing.T) {
	s := itype.NewStore()
	a := s.Builtin(itype.Int, false)
	b := s.Builtin(itype.Int, false)
	assert.Same(t, a, b, "structurally identical builtins must be the same pointer")

	c := s.Builtin(itype.Int, true)
	assert.NotSame(t, a, c)
	assert.True(t, c.IsConst())
}

func TestInterningIsStructural(t *testing.T) {
	s := itype.NewStore()
	i32 := s.Builtin(itype.Int32, false)

	p1 := s.LookupPointer(i32, false)
	p2 := s.LookupPointer(i32, false)
	require.Same(t, p1, p2)

	arr1 := s.LookupArray(i32, 4)
	arr2 := s.LookupArray(i32, 4)
	assert.Same(t, arr1, arr2)
	assert.NotSame(t, arr1, s.LookupArray(i32, 5))
}

func TestAssignability(t *testing.T) {
	s := itype.NewStore()
	i32 := s.Builtin(itype.Int32, false)
	i64 := s.Builtin(itype.Int64, false)
	nptr := s.LookupPointer(i32, true)
	null := s.Builtin(itype.NullType, false)
	sizedArr := s.LookupArray(i32, 3)
	openArr := s.LookupArray(i32, itype.UndefinedSize)

	assert.True(t, itype.IsAssignable(i32, i32))
	assert.False(t, itype.IsAssignable(i32, i64), "distinct storage classes are not assignable without an explicit cast")
	assert.True(t, itype.IsAssignable(nptr, null), "null is assignable to any nullable pointer")
	assert.True(t, itype.IsAssignable(openArr, sizedArr), "a sized array is assignable to an unsized array of the same element type")
	assert.False(t, itype.IsAssignable(sizedArr, openArr))
}

func TestCastabilitySupersetsAssignability(t *testing.T) {
	s := itype.NewStore()
	i32 := s.Builtin(itype.Int32, false)
	i64 := s.Builtin(itype.Int64, false)
	str := s.Builtin(itype.String, false)
	byteSlice := s.LookupSlice(s.Builtin(itype.Uint8, false))

	assert.True(t, itype.IsCastable(i32, i64))
	assert.False(t, itype.IsAssignable(i32, i64))
	assert.True(t, itype.IsCastable(str, byteSlice))
	assert.False(t, itype.IsAssignable(str, byteSlice), "slices and strings are not interconvertible by assignment")
}

func TestIdentityIgnoresConstFlag(t *testing.T) {
	s := itype.NewStore()
	i32 := s.Builtin(itype.Int32, false)
	constI32 := s.LookupWithFlags(i32, itype.FlagConst)
	require.NotSame(t, i32, constI32, "const is interned separately from its non-const counterpart")

	assert.True(t, itype.IsIdentical(i32, constI32), "identity must ignore the const flag")
	assert.True(t, itype.IsAssignable(i32, constI32), "a const value must be assignable to a non-const binding of the same type")
	assert.True(t, itype.IsAssignable(constI32, i32))
}

func TestConstPropagation(t *testing.T) {
	s := itype.NewStore()
	i32 := s.Builtin(itype.Int32, false)
	arr := s.LookupWithFlags(s.LookupArray(i32, 3), itype.FlagConst)
	assert.True(t, arr.Elem.IsConst(), "const must propagate into the element type")
}
