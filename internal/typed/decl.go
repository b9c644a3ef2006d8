package typed

import (
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/source"
)

// Decl is one elaborated top-level declaration (spec.md §3
// "Declaration. Tagged func/global/type.").
type Decl interface {
	Pos() source.Position
	declNode()
}

type declBase struct {
	Position source.Position
	Mangled  string
	Exported bool
}

func (d declBase) Pos() source.Position { return d.Position }

// FuncDecl is a checked function declaration (spec.md §4.5 "function").
type FuncDecl struct {
	declBase
	Type   *itype.Type // function type
	Params []*scope.Object
	Body   *ListExpr // nil for an extern prototype
}

func (*FuncDecl) declNode() {}

// GlobalDecl is a checked global variable declaration (spec.md §4.5
// "global").
type GlobalDecl struct {
	declBase
	Type *itype.Type
	Init Expr // nil if zero-initialized
}

func (*GlobalDecl) declNode() {}

// TypeDecl is a checked type alias declaration (spec.md §4.5 "type").
type TypeDecl struct {
	declBase
	Type *itype.Type
}

func (*TypeDecl) declNode() {}

// NewFuncDecl, NewGlobalDecl, and NewTypeDecl are small constructors so
// internal/check doesn't need to reach into the unexported declBase
// field directly.

func NewFuncDecl(pos source.Position, mangled string, exported bool, typ *itype.Type, params []*scope.Object, body *ListExpr) *FuncDecl {
	return &FuncDecl{declBase{pos, mangled, exported}, typ, params, body}
}

func NewGlobalDecl(pos source.Position, mangled string, exported bool, typ *itype.Type, init Expr) *GlobalDecl {
	return &GlobalDecl{declBase{pos, mangled, exported}, typ, init}
}

func NewTypeDecl(pos source.Position, mangled string, exported bool, typ *itype.Type) *TypeDecl {
	return &TypeDecl{declBase{pos, mangled, exported}, typ}
}

// Unit is the checker's output: namespace plus the ordered list of
// elaborated declarations (spec.md §3 "Unit").
type Unit struct {
	Namespace *scope.Ident
	Decls     []Decl
}
