// Package typed defines the output of the check pass: a fully
// type-annotated tree in which every expression carries a concrete
// result type and a termination flag, and every implicit conversion has
// been materialized as an explicit Cast node (spec.md §3 "Typed
// expression"). Downstream code generation (out of scope, spec.md §1)
// consumes this tree without further name resolution or inference.
package typed

import (
	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/source"
)

// Expr is any elaborated expression node (spec.md §3 "Typed expression":
// "Every node carries result: Type and terminates: bool").
type Expr interface {
	Pos() source.Position
	ResultType() *itype.Type
	Terminates() bool
	exprNode()
}

// Base is embedded by every concrete Expr and supplies the three common
// accessors spec.md requires on every node.
type Base struct {
	Position   source.Position
	Result     *itype.Type
	Terminated bool
}

func (b *Base) Pos() source.Position   { return b.Position }
func (b *Base) ResultType() *itype.Type { return b.Result }
func (b *Base) Terminates() bool        { return b.Terminated }

// AccessExpr is a resolved identifier reference (spec.md §4.4.a
// "identifier"). When the resolved object is an O_CONST, the checker
// splices the constant's own expression in at the use site instead of
// building an AccessExpr (spec.md §9 "lower constants by splicing") — so
// an AccessExpr's Object is always KindBind or KindDecl.
type AccessExpr struct {
	Base
	Object *scope.Object
}

func (*AccessExpr) exprNode() {}

// IndexExpr is `Array[Index]` (spec.md §4.4.a "index").
type IndexExpr struct {
	Base
	Array Expr
	Index Expr
}

func (*IndexExpr) exprNode() {}

// FieldExpr is `Object.Field` (spec.md §4.4.a "field").
type FieldExpr struct {
	Base
	Object Expr
	Field  *itype.Field
}

func (*FieldExpr) exprNode() {}

// AssertExpr is a (possibly unconditional) assertion (spec.md §4.4.b).
type AssertExpr struct {
	Base
	Cond    Expr // nil for the unconditional (always-terminates) form
	Message Expr // string constant or checked message expression
}

func (*AssertExpr) exprNode() {}

// AssignExpr is `Object op Value` (spec.md §4.4.c). Indirect selects the
// through-pointer lvalue form.
type AssignExpr struct {
	Base
	Object   Expr
	Value    Expr
	Op       ast.AssignOp
	Indirect bool
}

func (*AssignExpr) exprNode() {}

// BinArithmExpr is a checked binary arithmetic/relational expression
// (spec.md §4.4.d).
type BinArithmExpr struct {
	Base
	Op     ast.ArithOp
	LValue Expr
	RValue Expr
}

func (*BinArithmExpr) exprNode() {}

// UnArithmExpr is a checked unary arithmetic expression (spec.md §4.4.s).
type UnArithmExpr struct {
	Base
	Op      ast.ArithOp
	Operand Expr
}

func (*UnArithmExpr) exprNode() {}

// Binding pairs a resolved scope object with its (already cast)
// initializer (spec.md §3 "binding").
type Binding struct {
	Object *scope.Object
	Init   Expr
}

// BindingExpr is a checked let/static binding list (spec.md §4.4.e).
type BindingExpr struct {
	Base
	Bindings []*Binding
}

func (*BindingExpr) exprNode() {}

// CallExpr is a checked call (spec.md §4.4.f).
type CallExpr struct {
	Base
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// CastExpr is both the node spec.md §4.4.g describes directly *and* the
// implicit-cast marker spec.md §8 property 2 requires at every
// assignment/binding/return/call-argument/array-element site whose
// checked value's result differs from the target type. Secondary is the
// type named in the source cast form (for CastPlain/CastAssertion/
// CastTest) or simply the implicit target type for an inserted implicit
// cast — the two are not otherwise distinguished in the tree, matching
// spec.md's "insert an implicit cast" phrasing throughout §4.4.
type CastExpr struct {
	Base
	Kind      ast.CastKind
	Value     Expr
	Secondary *itype.Type
}

func (*CastExpr) exprNode() {}

// ConstantExpr holds an evaluated compile-time value (spec.md §4.4.h).
// Exactly the field matching Result.Storage is meaningful.
type ConstantExpr struct {
	Base
	Bool  bool
	Int   int64
	Uint  uint64
	Rune  rune
	Str   string
	Array []*ConstantExpr
}

func (*ConstantExpr) exprNode()    {}
func (*ConstantExpr) IsConstExpr() {} // satisfies scope.ConstExprer

// ControlExpr is a checked break/continue (spec.md §4.4.i). Target is
// the resolved for-scope's label ("" if the match was the innermost
// unlabeled for).
type ControlExpr struct {
	Base
	Kind   ast.ControlKind
	Target string
}

func (*ControlExpr) exprNode() {}

// DeferExpr is a checked defer (spec.md §4.4.j).
type DeferExpr struct {
	Base
	Value Expr
}

func (*DeferExpr) exprNode() {}

// ForExpr is a checked for loop (spec.md §4.4.k).
type ForExpr struct {
	Base
	Bindings []*Binding
	Cond     Expr
	After    Expr
	Body     Expr
	Scope    *scope.Scope
	Label    string
}

func (*ForExpr) exprNode() {}

// IfExpr is a checked if expression (spec.md §4.4.l).
type IfExpr struct {
	Base
	Cond  Expr
	True  Expr
	False Expr
}

func (*IfExpr) exprNode() {}

// ListExpr is a checked block (spec.md §4.4.m).
type ListExpr struct {
	Base
	Exprs []Expr
	Scope *scope.Scope
}

func (*ListExpr) exprNode() {}

// MeasureExpr is a checked len/size/offset expression (spec.md §4.4.n).
// Precise byte-offset computation is a codegen concern (out of scope,
// spec.md §1); the checker's job ends at validating that Field names an
// existing member of Type.
type MeasureExpr struct {
	Base
	Op    ast.MeasureKind
	Value Expr        // set for MeasureLen
	Type  *itype.Type // set for MeasureSize/MeasureOffset
	Field string      // set for MeasureOffset
}

func (*MeasureExpr) exprNode() {}

// ReturnExpr is a checked return (spec.md §4.4.o).
type ReturnExpr struct {
	Base
	Value Expr // nil for a bare return from a void function
}

func (*ReturnExpr) exprNode() {}

// SliceExpr is a checked slice expression (spec.md §4.4.p).
type SliceExpr struct {
	Base
	Object Expr
	Start  Expr
	End    Expr
}

func (*SliceExpr) exprNode() {}

// StructField pairs a resolved field descriptor with its checked value
// (spec.md §3 "struct" payload).
type StructField struct {
	Field *itype.Field
	Value Expr
}

// StructExpr is a checked struct literal (spec.md §4.4.q).
type StructExpr struct {
	Base
	Fields []*StructField
}

func (*StructExpr) exprNode() {}

// SwitchCase is one checked case arm (spec.md §4.4.r).
type SwitchCase struct {
	Options []Expr
	Body    Expr
}

// SwitchExpr is a checked switch expression (spec.md §4.4.r).
type SwitchExpr struct {
	Base
	Value Expr
	Cases []*SwitchCase
}

func (*SwitchExpr) exprNode() {}
