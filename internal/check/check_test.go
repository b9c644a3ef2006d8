package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/check"
	"github.com/Sovenok-Hacker/harec/internal/diag"
	"github.com/Sovenok-Hacker/harec/internal/itype"
	"github.com/Sovenok-Hacker/harec/internal/source"
	"github.com/Sovenok-Hacker/harec/internal/typed"
)

var pos = source.Position{Path: "test.ha", Line: 1, Col: 1}

func mainFunc(body *ast.ListExpr) *ast.Unit {
	return &ast.Unit{
		Subunits: []*ast.Subunit{{
			Path: "test.ha",
			Decls: []ast.Decl{
				&ast.FuncDecl{Name: "main", Body: body},
			},
		}},
	}
}

func checkUnit(t *testing.T, u *ast.Unit) *typed.Unit {
	t.Helper()
	store := itype.NewStore()
	sink := diag.NewSink(nil, false)
	return check.Check(u, store, sink)
}

// S1 — integer addition: `let x: int = 2 + 3;` elaborates to a binding
// whose initializer is a binarithm over two int constants, with no cast
// inserted since the operand and target types already agree.
func TestIntegerAddition(t *testing.T) {
	body := ast.NewListExpr(pos, []ast.Expr{
		ast.NewBindingExpr(pos, []*ast.Binder{{
			Name: "x",
			Type: ast.NewNamedType(pos, "int"),
			Init: ast.NewBinArithmExpr(pos, ast.OpAdd,
				ast.NewIntLit(pos, 2, true),
				ast.NewIntLit(pos, 3, true)),
		}}),
	})

	out := checkUnit(t, mainFunc(body))
	require.Len(t, out.Decls, 1)

	fn, ok := out.Decls[0].(*typed.FuncDecl)
	require.True(t, ok)
	require.Len(t, fn.Body.Exprs, 1)

	binding, ok := fn.Body.Exprs[0].(*typed.BindingExpr)
	require.True(t, ok)
	require.Len(t, binding.Bindings, 1)

	assert.Equal(t, itype.Int, binding.Bindings[0].Object.Type.Storage)

	bin, ok := binding.Bindings[0].Init.(*typed.BinArithmExpr)
	require.True(t, ok)
	assert.Equal(t, itype.Int, bin.ResultType().Storage)

	_, lIsConst := bin.LValue.(*typed.ConstantExpr)
	_, rIsConst := bin.RValue.(*typed.ConstantExpr)
	assert.True(t, lIsConst)
	assert.True(t, rIsConst)
}

// S4 — a labelled break resolves to the enclosing labelled for scope.
func TestLabelledBreak(t *testing.T) {
	body := ast.NewListExpr(pos, []ast.Expr{
		ast.NewForExpr(pos, "outer", nil, nil, nil,
			ast.NewListExpr(pos, []ast.Expr{
				ast.NewControlExpr(pos, ast.ControlBreak, "outer"),
			})),
	})

	out := checkUnit(t, mainFunc(body))
	fn := out.Decls[0].(*typed.FuncDecl)
	forExpr, ok := fn.Body.Exprs[0].(*typed.ForExpr)
	require.True(t, ok)

	inner, ok := forExpr.Body.(*typed.ListExpr)
	require.True(t, ok)
	ctrl, ok := inner.Exprs[0].(*typed.ControlExpr)
	require.True(t, ok)
	assert.Equal(t, "outer", ctrl.Target)
}

// S6 — enum members are reachable both qualified and bare, and a switch
// over an enum-typed value accepts enum constant case options.
func TestEnumConstantsAndSwitch(t *testing.T) {
	colorType := ast.NewEnumType(pos, nil, []*ast.EnumValue{
		{Name: "RED"},
		{Name: "GREEN"},
	})

	body := ast.NewListExpr(pos, []ast.Expr{
		ast.NewBindingExpr(pos, []*ast.Binder{{
			Name: "c",
			Type: ast.NewNamedType(pos, "Color"),
			Init: ast.NewIdent(pos, "RED"),
		}}),
		ast.NewSwitchExpr(pos, ast.NewIdent(pos, "c"), []*ast.SwitchCase{
			{Options: []ast.Expr{ast.NewIdent(pos, "Color::RED")}, Body: ast.NewIntLit(pos, 1, true)},
			{Options: []ast.Expr{ast.NewIdent(pos, "GREEN")}, Body: ast.NewIntLit(pos, 2, true)},
		}),
	})

	u := &ast.Unit{
		Subunits: []*ast.Subunit{{
			Path: "test.ha",
			Decls: []ast.Decl{
				&ast.TypeDecl{Name: "Color", Type: colorType},
				&ast.FuncDecl{Name: "main", Body: body},
			},
		}},
	}

	out := checkUnit(t, u)
	require.Len(t, out.Decls, 2)

	fn, ok := out.Decls[1].(*typed.FuncDecl)
	require.True(t, ok)
	require.Len(t, fn.Body.Exprs, 2)

	sw, ok := fn.Body.Exprs[1].(*typed.SwitchExpr)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	for _, cs := range sw.Cases {
		_, isConst := cs.Options[0].(*typed.ConstantExpr)
		assert.True(t, isConst)
	}
}
