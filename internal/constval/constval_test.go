package constval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/constval"
	"github.com/Sovenok-Hacker/harec/internal/source"
)

var pos = source.Position{Path: "test.ha", Line: 1, Col: 1}

func noLookup(string) (constval.Value, bool) { return constval.Value{}, false }

func TestEvalIntArithmetic(t *testing.T) {
	expr := ast.NewBinArithmExpr(pos, ast.OpAdd, ast.NewIntLit(pos, 2, true), ast.NewIntLit(pos, 3, true))
	v, err := constval.Eval(expr, noLookup)
	require.NoError(t, err)
	assert.Equal(t, constval.Int, v.Kind)
	assert.Equal(t, int64(5), v.Int64Val())
}

func TestEvalResolvesIdentViaLookup(t *testing.T) {
	lookup := func(name string) (constval.Value, bool) {
		if name == "ANSWER" {
			return constval.FromInt(42), true
		}
		return constval.Value{}, false
	}
	v, err := constval.Eval(ast.NewIdent(pos, "ANSWER"), lookup)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Int64Val())
}

func TestEvalUnknownIdentIsError(t *testing.T) {
	_, err := constval.Eval(ast.NewIdent(pos, "MISSING"), noLookup)
	assert.Error(t, err)
}

func TestEvalNullLitIsError(t *testing.T) {
	_, err := constval.Eval(ast.NewNullLit(pos), noLookup)
	assert.Error(t, err)
}

func TestEvalComparison(t *testing.T) {
	expr := ast.NewBinArithmExpr(pos, ast.OpLt, ast.NewIntLit(pos, 2, true), ast.NewIntLit(pos, 3, true))
	v, err := constval.Eval(expr, noLookup)
	require.NoError(t, err)
	assert.Equal(t, constval.Bool, v.Kind)
	assert.True(t, v.BoolVal())
}

func TestEvalArrayLit(t *testing.T) {
	lit := ast.NewArrayLit(pos, []*ast.ArrayLitElem{
		{Value: ast.NewIntLit(pos, 1, true)},
		{Value: ast.NewIntLit(pos, 2, true)},
	})
	v, err := constval.Eval(lit, noLookup)
	require.NoError(t, err)
	assert.Equal(t, constval.ArrayKind, v.Kind)
	require.Len(t, v.Array, 2)
	assert.Equal(t, int64(1), v.Array[0].Int64Val())
	assert.Equal(t, int64(2), v.Array[1].Int64Val())
}
