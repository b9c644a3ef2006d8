// Package astjson decodes the JSON encoding of an untyped ast.Unit — the
// parser stand-in for harec's CLI driver (SPEC_FULL.md "parser and its
// AST shape... treated as external collaborators", spec.md §1). There is
// no upstream parser in the pack to imitate the wire format of, so the
// format fixes exactly one discriminator convention per node ("kind"),
// mirroring the tagged-union-by-string-field style go/ast's own
// printer/gob encodings avoid needing only because Go's json package has
// no polymorphic decode of its own; this package supplies the dispatch
// go/types never had to.
package astjson

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/source"
)

// Decode reads a JSON-encoded ast.Unit from r.
func Decode(r io.Reader) (*ast.Unit, error) {
	var raw rawUnit
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding ast unit")
	}
	return raw.toUnit()
}

type rawPos struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

func (p *rawPos) toPosition() source.Position {
	if p == nil {
		return source.Position{}
	}
	return source.Position{Path: p.Path, Line: p.Line, Col: p.Col}
}

type rawUnit struct {
	Namespace string        `json:"namespace"`
	Subunits  []*rawSubunit `json:"subunits"`
}

func (u *rawUnit) toUnit() (*ast.Unit, error) {
	out := &ast.Unit{Namespace: u.Namespace}
	for i, su := range u.Subunits {
		decoded, err := su.toSubunit()
		if err != nil {
			return nil, errors.Wrapf(err, "subunit %d", i)
		}
		out.Subunits = append(out.Subunits, decoded)
	}
	return out, nil
}

type rawSubunit struct {
	Path    string            `json:"path"`
	Imports []string          `json:"imports"`
	Decls   []json.RawMessage `json:"decls"`
}

func (su *rawSubunit) toSubunit() (*ast.Subunit, error) {
	out := &ast.Subunit{Path: su.Path, Imports: su.Imports}
	for i, raw := range su.Decls {
		d, err := decodeDecl(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "decl %d", i)
		}
		out.Decls = append(out.Decls, d)
	}
	return out, nil
}
