// Package scope implements the identifier and lexical scope model
// (spec.md §4.1): qualified names, nested scopes with parent links, and
// labeled loop scopes used to resolve break/continue. It is grounded on
// go/types' own Scope (go/types/scope.go conceptually, and the walk
// pattern in pannous-goo/src/go/types/labels.go), simplified to the
// single label-search use spec.md §4.1 names — there is no `goto` in
// this language.
package scope

import "github.com/Sovenok-Hacker/harec/internal/itype"

// Ident is a qualified name: a bare name plus an optional parent
// namespace, itself an Ident (spec.md §3 "Identifier"). Equality is
// structural and identifiers are immutable once built.
type Ident struct {
	Name   string
	Parent *Ident
}

// NewIdent builds a root identifier with no namespace.
func NewIdent(name string) *Ident { return &Ident{Name: name} }

// Qualify builds ns::name, i.e. an identifier with ns as its parent.
func Qualify(ns *Ident, name string) *Ident { return &Ident{Name: name, Parent: ns} }

// Equal reports structural equality: same name and the same full
// namespace chain (spec.md §4.1 "lookup... namespace-qualified").
func (id *Ident) Equal(other *Ident) bool {
	for id != nil && other != nil {
		if id.Name != other.Name {
			return false
		}
		id, other = id.Parent, other.Parent
	}
	return id == nil && other == nil
}

// String renders the identifier as ns::...::name.
func (id *Ident) String() string {
	if id == nil {
		return ""
	}
	if id.Parent == nil {
		return id.Name
	}
	return id.Parent.String() + "::" + id.Name
}

// Kind tags what an Object represents (spec.md §3 "Scope object").
type Kind int

const (
	// KindConst is a named compile-time value.
	KindConst Kind = iota
	// KindType is a type alias.
	KindType
	// KindBind is a runtime local.
	KindBind
	// KindDecl is a runtime global or function.
	KindDecl
)

// Object is one entry in a Scope (spec.md §3 "Scope object").
type Object struct {
	Kind     Kind
	Ident    *Ident
	Mangled  string
	Type     *itype.Type
	Const    ConstExprer // non-nil only for KindConst
}

// ConstExprer is the minimal view the scope package needs of a checked
// constant expression: just enough to splice it at a later use site
// (spec.md §4.4.a "identifier", §9 "lower constants by splicing"). The
// concrete type (internal/typed.Expr) lives above this package so scope
// doesn't need to import the typed tree.
type ConstExprer interface {
	IsConstExpr()
}

// ScopeKind tags what AST construct created a Scope, used by label
// search (spec.md §4.1 "only scopes created for a for expression are
// eligible").
type ScopeKind int

const (
	KindUnit ScopeKind = iota
	KindSubunit
	KindFunc
	KindList
	KindFor
)

// Scope is a lexical scope: a parent pointer, the kind of AST construct
// that created it, an optional label, and an insertion-ordered list of
// objects (spec.md §3 "Scope").
type Scope struct {
	Parent *Scope
	Kind   ScopeKind
	Label  string // "" unless Kind == KindFor and the loop was labeled
	objs   []*Object
	byName map[string]*Object
}

// New creates a root scope (the unit scope has Parent == nil).
func New(parent *Scope, kind ScopeKind, label string) *Scope {
	return &Scope{Parent: parent, Kind: kind, Label: label, byName: make(map[string]*Object)}
}

// Push creates a child scope under s and returns it (spec.md §4.1
// "push"). Callers hold onto both s and the child; there is no implicit
// "current scope" field here, callers (internal/check) track that in
// their own context per spec.md §3 "Checker context".
func (s *Scope) Push(kind ScopeKind, label string) *Scope {
	return New(s, kind, label)
}

// Insert adds obj under its identifier's bare Name (spec.md §4.1
// "insert"). Per spec.md, duplicate detection is the source's job
// (typically the parser already rejected redeclaration); a later insert
// of the same name silently overwrites the earlier one here.
func (s *Scope) Insert(name string, obj *Object) {
	s.objs = append(s.objs, obj)
	s.byName[name] = obj
}

// Lookup searches s, then its ancestors, for name (spec.md §4.1
// "lookup"). Names are compared as the plain strings they were inserted
// under (e.g. "x" or "Color::RED"); the objects' Ident namespace chains
// are not consulted.
func (s *Scope) Lookup(name string) (*Object, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if obj, ok := cur.byName[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Objects returns the scope's own objects in insertion order (spec.md §3
// "insertion-ordered list of scope objects").
func (s *Scope) Objects() []*Object { return s.objs }

// LookupLabel resolves a break/continue target (spec.md §4.1 "Label
// lookup"): unlabeled control matches the innermost KindFor ancestor;
// labeled control matches the nearest KindFor ancestor whose Label
// equals target. ok is false ("unknown label") if no match is found.
func (s *Scope) LookupLabel(target string) (*Scope, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Kind != KindFor {
			continue
		}
		if target == "" {
			return cur, true
		}
		if cur.Label == target {
			return cur, true
		}
	}
	return nil, false
}

// HasAncestorLabel reports whether a `for` scope with the given label
// already encloses s, used to enforce label uniqueness among ancestor
// for-scopes (spec.md §4.4.k "Enforce uniqueness of labels").
func (s *Scope) HasAncestorLabel(label string) bool {
	if label == "" {
		return false
	}
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Kind == KindFor && cur.Label == label {
			return true
		}
	}
	return false
}
