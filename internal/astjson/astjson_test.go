package astjson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovenok-Hacker/harec/internal/ast"
	"github.com/Sovenok-Hacker/harec/internal/astjson"
)

func TestDecodeConstDecl(t *testing.T) {
	const src = `{
		"namespace": "demo",
		"subunits": [{
			"path": "demo.ha",
			"decls": [{
				"kind": "const",
				"pos": {"path": "demo.ha", "line": 1, "col": 1},
				"name": "ANSWER",
				"init": {"kind": "int", "pos": {"line": 1, "col": 15}, "int": 42, "signed": false}
			}]
		}]
	}`

	u, err := astjson.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "demo", u.Namespace)
	require.Len(t, u.Subunits, 1)
	require.Len(t, u.Subunits[0].Decls, 1)

	decl, ok := u.Subunits[0].Decls[0].(*ast.ConstDecl)
	require.True(t, ok)
	assert.Equal(t, "ANSWER", decl.Name)
	require.Nil(t, decl.Type)

	lit, ok := decl.Init.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(42), lit.Value)
}

func TestDecodeFuncWithBody(t *testing.T) {
	const src = `{
		"namespace": "demo",
		"subunits": [{
			"path": "demo.ha",
			"decls": [{
				"kind": "func",
				"pos": {"line": 1, "col": 1},
				"name": "main",
				"exported": true,
				"params": [],
				"body": {
					"kind": "list",
					"pos": {"line": 1, "col": 10},
					"exprs": [
						{"kind": "return", "pos": {"line": 1, "col": 12}, "value": null}
					]
				}
			}]
		}]
	}`

	u, err := astjson.Decode(strings.NewReader(src))
	require.NoError(t, err)

	decl, ok := u.Subunits[0].Decls[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.True(t, decl.Exported)
	require.NotNil(t, decl.Body)
	require.Len(t, decl.Body.Exprs, 1)

	ret, ok := decl.Body.Exprs[0].(*ast.ReturnExpr)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestDecodeNestedTypesAndEnum(t *testing.T) {
	const src = `{
		"namespace": "demo",
		"subunits": [{
			"path": "demo.ha",
			"decls": [{
				"kind": "type",
				"pos": {"line": 1, "col": 1},
				"name": "Color",
				"type": {
					"kind": "enum",
					"pos": {"line": 1, "col": 12},
					"values": [
						{"name": "RED"},
						{"name": "GREEN", "init": {"kind": "int", "pos": {"line":1,"col":1}, "int": 5}}
					]
				}
			}]
		}]
	}`

	u, err := astjson.Decode(strings.NewReader(src))
	require.NoError(t, err)

	decl, ok := u.Subunits[0].Decls[0].(*ast.TypeDecl)
	require.True(t, ok)

	enumType, ok := decl.Type.(*ast.EnumType)
	require.True(t, ok)
	require.Len(t, enumType.Values, 2)
	assert.Equal(t, "RED", enumType.Values[0].Name)
	assert.Nil(t, enumType.Values[0].Init)
	require.NotNil(t, enumType.Values[1].Init)
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	const src = `{"namespace":"demo","subunits":[{"path":"demo.ha","decls":[{"kind":"bogus"}]}]}`
	_, err := astjson.Decode(strings.NewReader(src))
	assert.Error(t, err)
}
