// Package check implements the two-pass semantic checker (spec.md §1):
// the declaration scan that populates the unit scope (scan.go) and the
// expression check that elaborates every AST expression into the typed
// tree (expr.go and its per-kind siblings). It is grounded throughout on
// pannous-goo/src/go/types, the vendored copy of the standard library's
// go/types package — see DESIGN.md for the per-file mapping.
package check

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/diag"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/scope"
	"github.com/Sovenok-Hacker/harec/internal/source"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

// Checker carries the transient state threaded through the checking
// recursion (spec.md §3 "Checker context"): current scope, unit scope,
// current namespace, current function type (for return), the deferring
// flag, a monotonic synthetic-name counter, and the type-store handle.
// It is passed explicitly rather than kept as process-wide state
// (spec.md §9 "Context passing").
type Checker struct {
	Store *itype.Store
	sink  *diag.Sink

	unitScope *scope.Scope
	curScope  *scope.Scope
	namespace *scope.Ident

	curFunc   *itype.Type // nil outside a function body
	deferring bool

	staticCounter int // spec.md §9 "Synthetic names": per-unit, never reset

	valuesByObject map[*scope.Object]constval.Value
}

// New builds a Checker over a fresh unit scope.
func New(store *itype.Store, sink *diag.Sink) *Checker {
	c := &Checker{
		Store:          store,
		sink:           sink,
		valuesByObject: make(map[*scope.Object]constval.Value),
	}
	c.unitScope = scope.New(nil, scope.KindUnit, "")
	c.curScope = c.unitScope
	c.namespace = nil
	return c
}

// Check runs both passes over u and returns the elaborated unit
// (spec.md §6 "check(ctx, ast_unit) -> typed_unit"). Any semantic
// violation aborts the process via the diagnostic sink (spec.md §7) —
// Check itself never returns a Go error for a semantic violation; a
// returned error here would only ever be a collaborator-contract bug,
// which cannot happen in the abort-on-first design, so the signature is
// kept simple and calls diag.Sink.Fatal directly where spec.md's
// taxonomy requires a fatal error.
func Check(u *ast.Unit, store *itype.Store, sink *diag.Sink) *typed.Unit {
	c := New(store, sink)
	c.namespace = scope.NewIdent(u.Namespace)

	sink.Trace("scan", zap.Int("subunits", len(u.Subunits)))
	for _, su := range u.Subunits {
		c.scanSubunit(su)
	}

	sink.Trace("check")
	var decls []typed.Decl
	for _, su := range u.Subunits {
		for _, d := range su.Decls {
			if decl := c.checkDecl(d); decl != nil {
				decls = append(decls, decl)
			}
		}
	}

	return &typed.Unit{Namespace: c.namespace, Decls: decls}
}

// fatal reports a fatal diagnostic and never returns (diag.Sink.Fatal
// calls os.Exit), matching spec.md §7's abort-on-first-error policy.
func (c *Checker) fatal(pos source.Position, format string, args ...any) {
	c.sink.Fatal(diag.Newf(pos, format, args...))
	panic("unreachable: diag.Sink.Fatal must terminate the process")
}

// pushScope creates and enters a child scope of the given kind/label,
// returning it so the caller can pop back to the previous scope when
// done (spec.md §4.1 "push"/"pop").
func (c *Checker) pushScope(kind scope.ScopeKind, label string) *scope.Scope {
	child := c.curScope.Push(kind, label)
	c.curScope = child
	return child
}

// popScope restores the parent of the current scope (spec.md §4.1 "pop").
func (c *Checker) popScope() {
	c.curScope = c.curScope.Parent
}

// nextStaticName mints the next `static.N` synthetic identifier
// (spec.md §4.4.e "static", §9 "Synthetic names").
func (c *Checker) nextStaticName() string {
	name := fmt.Sprintf("static.%d", c.staticCounter)
	c.staticCounter++
	return name
}

// rememberConst records the evaluated value of a KindConst object so
// later constant folding (enum member initializers, other const
// initializers) can reference it by identifier through constval.Lookup
// (internal/constval's own narrow collaborator interface, spec.md §6).
func (c *Checker) rememberConst(obj *scope.Object, v constval.Value) {
	c.valuesByObject[obj] = v
}

// constLookup builds the constval.Lookup closure for the current scope,
// resolving names to already-evaluated constant values.
func (c *Checker) constLookup() constval.Lookup {
	return func(name string) (constval.Value, bool) {
		obj, ok := c.curScope.Lookup(name)
		if !ok || obj.Kind != scope.KindConst {
			return constval.Value{}, false
		}
		v, ok := c.valuesByObject[obj]
		return v, ok
	}
}
