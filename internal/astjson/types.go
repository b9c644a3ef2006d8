package astjson

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Sovenok-Hacker/harec/internal/ast"
)

type rawType struct {
	Kind string  `json:"kind"`
	Pos  *rawPos `json:"pos"`

	Name string `json:"name"` // named

	Target   json.RawMessage `json:"target"`   // pointer
	Nullable bool            `json:"nullable"` // pointer

	Elem json.RawMessage `json:"elem"` // slice/array
	Len  int64           `json:"len"`  // array; 0 when omitted means UndefinedLen

	Fields []*rawStructField `json:"fields"` // struct/union

	Members []json.RawMessage `json:"members"` // tagged_union

	Base   json.RawMessage `json:"base"`   // enum
	Values []*rawEnumValue `json:"values"` // enum

	Params   []*rawParam     `json:"params"`   // func
	Result   json.RawMessage `json:"result"`   // func
	Variadic string          `json:"variadic"` // func
}

type rawStructField struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

func (f *rawStructField) toField() (*ast.StructField, error) {
	t, err := decodeType(f.Type)
	if err != nil {
		return nil, err
	}
	return &ast.StructField{Name: f.Name, Type: t}, nil
}

type rawEnumValue struct {
	Name string          `json:"name"`
	Init json.RawMessage `json:"init"`
}

type rawParam struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

func decodeVariadicMode(s string) ast.VariadicMode {
	if s == "native" {
		return ast.VariadicNative
	}
	return ast.VariadicNone
}

func decodeParams(raw []*rawParam) ([]*ast.Param, error) {
	out := make([]*ast.Param, len(raw))
	for i, p := range raw {
		t, err := decodeType(p.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "param %d", i)
		}
		out[i] = &ast.Param{Name: p.Name, Type: t}
	}
	return out, nil
}

// decodeType requires raw to hold a type node.
func decodeType(raw json.RawMessage) (ast.Type, error) {
	t, err := decodeOptType(raw)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("expected a type, found null")
	}
	return t, nil
}

// decodeOptType decodes raw into an ast.Type, or returns nil if raw is
// absent or JSON null.
func decodeOptType(raw json.RawMessage) (ast.Type, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var t rawType
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, errors.Wrap(err, "type")
	}
	pos := t.Pos.toPosition()

	switch t.Kind {
	case "named":
		return ast.NewNamedType(pos, t.Name), nil

	case "pointer":
		target, err := decodeType(t.Target)
		if err != nil {
			return nil, err
		}
		return ast.NewPointerType(pos, target, t.Nullable), nil

	case "slice":
		elem, err := decodeType(t.Elem)
		if err != nil {
			return nil, err
		}
		return ast.NewSliceType(pos, elem), nil

	case "array":
		elem, err := decodeType(t.Elem)
		if err != nil {
			return nil, err
		}
		length := ast.UndefinedLen
		if t.Len > 0 {
			length = t.Len
		}
		return ast.NewArrayType(pos, elem, length), nil

	case "struct", "union":
		fields, err := decodeStructFields(t.Fields)
		if err != nil {
			return nil, err
		}
		if t.Kind == "union" {
			return ast.NewUnionType(pos, fields), nil
		}
		return ast.NewStructType(pos, fields), nil

	case "tagged_union":
		members := make([]ast.Type, len(t.Members))
		for i, m := range t.Members {
			mt, err := decodeType(m)
			if err != nil {
				return nil, errors.Wrapf(err, "member %d", i)
			}
			members[i] = mt
		}
		return ast.NewTaggedUnionType(pos, members), nil

	case "enum":
		base, err := decodeOptType(t.Base)
		if err != nil {
			return nil, err
		}
		values := make([]*ast.EnumValue, len(t.Values))
		for i, v := range t.Values {
			init, err := decodeOptExpr(v.Init)
			if err != nil {
				return nil, errors.Wrapf(err, "enum value %d", i)
			}
			values[i] = &ast.EnumValue{Name: v.Name, Init: init}
		}
		return ast.NewEnumType(pos, base, values), nil

	case "func":
		params, err := decodeParams(t.Params)
		if err != nil {
			return nil, err
		}
		result, err := decodeOptType(t.Result)
		if err != nil {
			return nil, err
		}
		return ast.NewFuncType(pos, params, result, decodeVariadicMode(t.Variadic)), nil

	default:
		return nil, errors.Errorf("unknown type kind %q", t.Kind)
	}
}

func decodeStructFields(raw []*rawStructField) ([]*ast.StructField, error) {
	out := make([]*ast.StructField, len(raw))
	for i, f := range raw {
		field, err := f.toField()
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		out[i] = field
	}
	return out, nil
}
