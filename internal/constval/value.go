// Package constval is the constant-evaluator collaborator (spec.md §6
// "eval_expr(ctx, input_expr, out_expr) -> {OK, ERR}"). It is grounded
// directly on go/types' own choice of arithmetic engine: every file in
// pannous-goo/src/go/types imports "go/constant" for exactly this
// purpose, and no third-party arbitrary-precision constant package
// appears anywhere in the retrieved corpus, so there is no ecosystem
// alternative to prefer over the one the teacher itself uses.
package constval

import (
	"fmt"

	"go/constant"
	gotoken "go/token"
)

// Value is an evaluated compile-time constant (spec.md §3 "Constant").
// Exactly one of the scalar fields is meaningful, selected by Kind; Array
// holds an evaluated array constant's elements in order.
type Value struct {
	Kind  Kind
	raw   constant.Value // backs Bool/Int/Uint/Rune/Float/String
	Array []Value
}

// Kind tags which storage-class shape a Value holds.
type Kind int

const (
	Invalid Kind = iota
	Bool
	Int
	Uint
	Rune
	Float
	String
	ArrayKind
)

func FromBool(b bool) Value   { return Value{Kind: Bool, raw: constant.MakeBool(b)} }
func FromInt(i int64) Value   { return Value{Kind: Int, raw: constant.MakeInt64(i)} }
func FromUint(u uint64) Value { return Value{Kind: Uint, raw: constant.MakeUint64(u)} }
func FromRune(r rune) Value   { return Value{Kind: Rune, raw: constant.MakeInt64(int64(r))} }
func FromFloat(f float64) Value {
	return Value{Kind: Float, raw: constant.MakeFloat64(f)}
}
func FromString(s string) Value { return Value{Kind: String, raw: constant.MakeString(s)} }
func FromArray(elems []Value) Value {
	return Value{Kind: ArrayKind, Array: elems}
}

func (v Value) BoolVal() bool      { return constant.BoolVal(v.raw) }
func (v Value) StringVal() string  { return constant.StringVal(v.raw) }
func (v Value) Int64Val() int64 {
	i, _ := constant.Int64Val(v.raw)
	return i
}
func (v Value) Uint64Val() uint64 {
	u, _ := constant.Uint64Val(v.raw)
	return u
}
func (v Value) Float64Val() float64 {
	f, _ := constant.Float64Val(v.raw)
	return f
}

// String renders v for diagnostics and error messages.
func (v Value) String() string {
	switch v.Kind {
	case ArrayKind:
		return fmt.Sprintf("%v", v.Array)
	case Invalid:
		return "<invalid constant>"
	default:
		return v.raw.String()
	}
}

// Compare reports whether a and b carry equal values: the same Kind and
// equal scalar values, or, for arrays, equal elements in order.
func Compare(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == ArrayKind {
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Compare(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	}
	return constant.Compare(a.raw, gotoken.EQL, b.raw)
}
