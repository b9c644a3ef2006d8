package ast

import "github.com/Sovenok-Hacker/harec/internal/source"

// Attr enumerates the function attributes spec.md §4.5 constrains.
type Attr string

const (
	AttrInit   Attr = "init"
	AttrFini   Attr = "fini"
	AttrTest   Attr = "test"
	AttrSymbol Attr = "symbol" // carries an explicit verbatim mangled name
)

// Decl is any top-level declaration (spec.md §3 "Declaration").
type Decl interface {
	Pos() source.Position
	declNode()
}

// ConstDecl declares a named compile-time constant (spec.md §4.3 "const").
type ConstDecl struct {
	Position source.Position
	Name     string
	Type     Type // nil: inferred from Init
	Init     Expr
	Exported bool
}

func (d *ConstDecl) Pos() source.Position { return d.Position }
func (*ConstDecl) declNode()              {}

// GlobalDecl declares a package-level variable (spec.md §4.3 "global").
type GlobalDecl struct {
	Position source.Position
	Name     string
	Type     Type
	Init     Expr // nil: zero-initialized
	Exported bool
}

func (d *GlobalDecl) Pos() source.Position { return d.Position }
func (*GlobalDecl) declNode()              {}

// FuncDecl declares a function (spec.md §4.3 "function", §4.5 "function").
type FuncDecl struct {
	Position source.Position
	Name     string
	Symbol   string // verbatim mangled name if @symbol is present
	Params   []*Param
	Result   Type // nil means void
	Variadic VariadicMode
	Body     *ListExpr // nil for an extern prototype with no body
	Exported bool
	Attrs    []Attr
}

func (d *FuncDecl) Pos() source.Position { return d.Position }
func (*FuncDecl) declNode()              {}

// TypeDecl declares a type alias (spec.md §4.3 "type").
type TypeDecl struct {
	Position source.Position
	Name     string
	Type     Type
	Exported bool
}

func (d *TypeDecl) Pos() source.Position { return d.Position }
func (*TypeDecl) declNode()              {}

// Subunit is one source file's contribution to a Unit: an (ignored, see
// spec.md §4.3/§9 "TODO for imports") list of imports plus declarations.
type Subunit struct {
	Path    string
	Imports []string
	Decls   []Decl
}

// Unit is the input to Check: the whole translation unit, leaves first
// (spec.md §6 "ast_unit is a list of subunits").
type Unit struct {
	Namespace string
	Subunits  []*Subunit
}
