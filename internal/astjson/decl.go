package astjson

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Sovenok-Hacker/harec/internal/ast"
)

type rawDecl struct {
	Kind     string          `json:"kind"`
	Pos      *rawPos         `json:"pos"`
	Name     string          `json:"name"`
	Type     json.RawMessage `json:"type"`
	Init     json.RawMessage `json:"init"`
	Exported bool            `json:"exported"`

	// func-only
	Symbol   string            `json:"symbol"`
	Params   []*rawParam       `json:"params"`
	Result   json.RawMessage   `json:"result"`
	Variadic string            `json:"variadic"`
	Body     json.RawMessage   `json:"body"`
	Attrs    []string          `json:"attrs"`
}

func decodeDecl(raw json.RawMessage) (ast.Decl, error) {
	var d rawDecl
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, errors.Wrap(err, "decl")
	}
	pos := d.Pos.toPosition()

	switch d.Kind {
	case "const":
		typ, err := decodeOptType(d.Type)
		if err != nil {
			return nil, err
		}
		init, err := decodeExpr(d.Init)
		if err != nil {
			return nil, err
		}
		return &ast.ConstDecl{Position: pos, Name: d.Name, Type: typ, Init: init, Exported: d.Exported}, nil

	case "global":
		typ, err := decodeType(d.Type)
		if err != nil {
			return nil, err
		}
		init, err := decodeOptExpr(d.Init)
		if err != nil {
			return nil, err
		}
		return &ast.GlobalDecl{Position: pos, Name: d.Name, Type: typ, Init: init, Exported: d.Exported}, nil

	case "func":
		params, err := decodeParams(d.Params)
		if err != nil {
			return nil, err
		}
		result, err := decodeOptType(d.Result)
		if err != nil {
			return nil, err
		}
		var body *ast.ListExpr
		if len(d.Body) > 0 && string(d.Body) != "null" {
			e, err := decodeExpr(d.Body)
			if err != nil {
				return nil, err
			}
			lb, ok := e.(*ast.ListExpr)
			if !ok {
				return nil, errors.New("func decl body must be a list expression")
			}
			body = lb
		}
		attrs := make([]ast.Attr, len(d.Attrs))
		for i, a := range d.Attrs {
			attrs[i] = ast.Attr(a)
		}
		return &ast.FuncDecl{
			Position: pos,
			Name:     d.Name,
			Symbol:   d.Symbol,
			Params:   params,
			Result:   result,
			Variadic: decodeVariadicMode(d.Variadic),
			Body:     body,
			Exported: d.Exported,
			Attrs:    attrs,
		}, nil

	case "type":
		typ, err := decodeType(d.Type)
		if err != nil {
			return nil, err
		}
		return &ast.TypeDecl{Position: pos, Name: d.Name, Type: typ, Exported: d.Exported}, nil

	default:
		return nil, errors.Errorf("unknown decl kind %q", d.Kind)
	}
}
