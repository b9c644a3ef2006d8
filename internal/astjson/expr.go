package astjson

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Sovenok-Hacker/harec/internal/ast"
)

// rawExpr is the union of every expression kind's fields; each kind only
// populates the subset its decode case below reads.
type rawExpr struct {
	Kind string  `json:"kind"`
	Pos  *rawPos `json:"pos"`

	Name string `json:"name"` // ident

	Array json.RawMessage `json:"array"` // index
	Index json.RawMessage `json:"index"` // index

	Object json.RawMessage `json:"object"` // field, assign, slice
	Field  string           `json:"field"`  // field

	Cond    json.RawMessage `json:"cond"`    // assert, if
	Message json.RawMessage `json:"message"` // assert

	Value    json.RawMessage `json:"value"`    // assign, cast, defer, measure, return, switch
	Op       string           `json:"op"`       // assign, bin, un, cast, control, measure
	Indirect bool             `json:"indirect"` // assign

	LValue json.RawMessage `json:"lvalue"` // bin
	RValue json.RawMessage `json:"rvalue"` // bin

	Operand json.RawMessage `json:"operand"` // un

	Bindings []*rawBinder `json:"bindings"` // binding, for

	Callee json.RawMessage   `json:"callee"` // call
	Args   []json.RawMessage `json:"args"`   // call

	Type json.RawMessage `json:"type"` // cast, measure

	IntValue    int64  `json:"int"`    // int literal
	Signed      bool   `json:"signed"` // int literal
	FloatValue  float64 `json:"float"` // float literal
	BoolValue   bool   `json:"bool"`   // bool literal
	RuneValue   string `json:"rune"`   // rune literal (single rune as a one-char string)
	StringValue string `json:"string"` // string literal

	Elems []*rawArrayLitElem `json:"elems"` // array literal

	Label string `json:"label"` // control, for

	After json.RawMessage `json:"after"` // for
	Body  json.RawMessage `json:"body"`  // for

	True  json.RawMessage `json:"true"`  // if
	False json.RawMessage `json:"false"` // if

	Exprs []json.RawMessage `json:"exprs"` // list

	Start json.RawMessage `json:"start"` // slice
	End   json.RawMessage `json:"end"`   // slice

	StructName string                  `json:"struct_name"` // struct lit
	Fields     []*rawStructLitField    `json:"fields"`       // struct lit
	Autofill   bool                    `json:"autofill"`     // struct lit

	Cases []*rawSwitchCase `json:"cases"` // switch
}

type rawBinder struct {
	Pos    *rawPos         `json:"pos"`
	Name   string          `json:"name"`
	Type   json.RawMessage `json:"type"`
	Const  bool            `json:"const"`
	Init   json.RawMessage `json:"init"`
	Static bool            `json:"static"`
}

func (b *rawBinder) toBinder() (*ast.Binder, error) {
	typ, err := decodeOptType(b.Type)
	if err != nil {
		return nil, err
	}
	init, err := decodeOptExpr(b.Init)
	if err != nil {
		return nil, err
	}
	var flags ast.BindFlags
	if b.Const {
		flags |= ast.BindConst
	}
	return &ast.Binder{
		Position: b.Pos.toPosition(),
		Name:     b.Name,
		Type:     typ,
		Flags:    flags,
		Init:     init,
		Static:   b.Static,
	}, nil
}

func decodeBinders(raw []*rawBinder) ([]*ast.Binder, error) {
	out := make([]*ast.Binder, len(raw))
	for i, b := range raw {
		decoded, err := b.toBinder()
		if err != nil {
			return nil, errors.Wrapf(err, "binder %d", i)
		}
		out[i] = decoded
	}
	return out, nil
}

type rawArrayLitElem struct {
	Value  json.RawMessage `json:"value"`
	Expand bool            `json:"expand"`
}

type rawStructLitField struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type rawSwitchCase struct {
	Options []json.RawMessage `json:"options"`
	Body    json.RawMessage   `json:"body"`
}

// decodeExpr requires raw to hold an expression node.
func decodeExpr(raw json.RawMessage) (ast.Expr, error) {
	e, err := decodeOptExpr(raw)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.New("expected an expression, found null")
	}
	return e, nil
}

// decodeOptExpr decodes raw into an ast.Expr, or returns nil if raw is
// absent or JSON null.
func decodeOptExpr(raw json.RawMessage) (ast.Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var e rawExpr
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, errors.Wrap(err, "expr")
	}
	pos := e.Pos.toPosition()

	switch e.Kind {
	case "ident":
		return ast.NewIdent(pos, e.Name), nil

	case "index":
		array, err := decodeExpr(e.Array)
		if err != nil {
			return nil, err
		}
		index, err := decodeExpr(e.Index)
		if err != nil {
			return nil, err
		}
		return ast.NewIndexExpr(pos, array, index), nil

	case "field":
		object, err := decodeExpr(e.Object)
		if err != nil {
			return nil, err
		}
		return ast.NewFieldExpr(pos, object, e.Field), nil

	case "assert":
		cond, err := decodeOptExpr(e.Cond)
		if err != nil {
			return nil, err
		}
		message, err := decodeOptExpr(e.Message)
		if err != nil {
			return nil, err
		}
		return ast.NewAssertExpr(pos, cond, message), nil

	case "assign":
		object, err := decodeExpr(e.Object)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignExpr(pos, object, value, ast.AssignOp(e.Op), e.Indirect), nil

	case "bin":
		lvalue, err := decodeExpr(e.LValue)
		if err != nil {
			return nil, err
		}
		rvalue, err := decodeExpr(e.RValue)
		if err != nil {
			return nil, err
		}
		return ast.NewBinArithmExpr(pos, ast.ArithOp(e.Op), lvalue, rvalue), nil

	case "un":
		operand, err := decodeExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnArithmExpr(pos, ast.ArithOp(e.Op), operand), nil

	case "binding":
		bindings, err := decodeBinders(e.Bindings)
		if err != nil {
			return nil, err
		}
		return ast.NewBindingExpr(pos, bindings), nil

	case "call":
		callee, err := decodeExpr(e.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			arg, err := decodeExpr(a)
			if err != nil {
				return nil, errors.Wrapf(err, "arg %d", i)
			}
			args[i] = arg
		}
		return ast.NewCallExpr(pos, callee, args), nil

	case "cast":
		value, err := decodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		typ, err := decodeType(e.Type)
		if err != nil {
			return nil, err
		}
		return ast.NewCastExpr(pos, decodeCastKind(e.Op), value, typ), nil

	case "int":
		return ast.NewIntLit(pos, e.IntValue, e.Signed), nil

	case "float":
		return ast.NewFloatLit(pos, e.FloatValue), nil

	case "bool":
		return ast.NewBoolLit(pos, e.BoolValue), nil

	case "rune":
		r := rune(0)
		for _, c := range e.RuneValue {
			r = c
			break
		}
		return ast.NewRuneLit(pos, r), nil

	case "string":
		return ast.NewStringLit(pos, e.StringValue), nil

	case "null":
		return ast.NewNullLit(pos), nil

	case "array":
		elems := make([]*ast.ArrayLitElem, len(e.Elems))
		for i, el := range e.Elems {
			value, err := decodeExpr(el.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "elem %d", i)
			}
			elems[i] = &ast.ArrayLitElem{Value: value, Expand: el.Expand}
		}
		return ast.NewArrayLit(pos, elems), nil

	case "control":
		return ast.NewControlExpr(pos, decodeControlKind(e.Op), e.Label), nil

	case "defer":
		value, err := decodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewDeferExpr(pos, value), nil

	case "for":
		bindings, err := decodeBinders(e.Bindings)
		if err != nil {
			return nil, err
		}
		cond, err := decodeOptExpr(e.Cond)
		if err != nil {
			return nil, err
		}
		after, err := decodeOptExpr(e.After)
		if err != nil {
			return nil, err
		}
		body, err := decodeExpr(e.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForExpr(pos, e.Label, bindings, cond, after, body), nil

	case "if":
		cond, err := decodeExpr(e.Cond)
		if err != nil {
			return nil, err
		}
		trueExpr, err := decodeExpr(e.True)
		if err != nil {
			return nil, err
		}
		falseExpr, err := decodeOptExpr(e.False)
		if err != nil {
			return nil, err
		}
		return ast.NewIfExpr(pos, cond, trueExpr, falseExpr), nil

	case "list":
		exprs := make([]ast.Expr, len(e.Exprs))
		for i, ex := range e.Exprs {
			decoded, err := decodeExpr(ex)
			if err != nil {
				return nil, errors.Wrapf(err, "expr %d", i)
			}
			exprs[i] = decoded
		}
		return ast.NewListExpr(pos, exprs), nil

	case "measure":
		value, err := decodeOptExpr(e.Value)
		if err != nil {
			return nil, err
		}
		typ, err := decodeOptType(e.Type)
		if err != nil {
			return nil, err
		}
		return ast.NewMeasureExpr(pos, decodeMeasureKind(e.Op), value, typ, e.Field), nil

	case "return":
		value, err := decodeOptExpr(e.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewReturnExpr(pos, value), nil

	case "slice":
		object, err := decodeExpr(e.Object)
		if err != nil {
			return nil, err
		}
		start, err := decodeOptExpr(e.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeOptExpr(e.End)
		if err != nil {
			return nil, err
		}
		return ast.NewSliceExpr(pos, object, start, end), nil

	case "struct":
		fields := make([]*ast.StructLitField, len(e.Fields))
		for i, f := range e.Fields {
			value, err := decodeExpr(f.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "struct field %d", i)
			}
			fields[i] = &ast.StructLitField{Name: f.Name, Value: value}
		}
		return ast.NewStructLit(pos, e.StructName, fields, e.Autofill), nil

	case "switch":
		value, err := decodeExpr(e.Value)
		if err != nil {
			return nil, err
		}
		cases := make([]*ast.SwitchCase, len(e.Cases))
		for i, cs := range e.Cases {
			options := make([]ast.Expr, len(cs.Options))
			for j, opt := range cs.Options {
				decoded, err := decodeExpr(opt)
				if err != nil {
					return nil, errors.Wrapf(err, "case %d option %d", i, j)
				}
				options[j] = decoded
			}
			body, err := decodeExpr(cs.Body)
			if err != nil {
				return nil, errors.Wrapf(err, "case %d body", i)
			}
			cases[i] = &ast.SwitchCase{Options: options, Body: body}
		}
		return ast.NewSwitchExpr(pos, value, cases), nil

	default:
		return nil, errors.Errorf("unknown expr kind %q", e.Kind)
	}
}

func decodeCastKind(s string) ast.CastKind {
	switch s {
	case "assertion":
		return ast.CastAssertion
	case "test":
		return ast.CastTest
	default:
		return ast.CastPlain
	}
}

func decodeControlKind(s string) ast.ControlKind {
	if s == "continue" {
		return ast.ControlContinue
	}
	return ast.ControlBreak
}

func decodeMeasureKind(s string) ast.MeasureKind {
	switch s {
	case "size":
		return ast.MeasureSize
	case "offset":
		return ast.MeasureOffset
	default:
		return ast.MeasureLen
	}
}
