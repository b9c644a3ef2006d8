package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovenok-Hacker/harec/internal/scope"
)

func TestIdentEqual(t *testing.T) {
	ns := scope.NewIdent("main")
	a := scope.Qualify(ns, "foo")
	b := scope.Qualify(scope.NewIdent("main"), "foo")
	c := scope.Qualify(scope.NewIdent("other"), "foo")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "main::foo", a.String())
}

func TestLookupWalksAncestors(t *testing.T) {
	root := scope.New(nil, scope.KindUnit, "")
	root.Insert("x", &scope.Object{Kind: scope.KindDecl, Ident: scope.NewIdent("x")})

	child := root.Push(scope.KindFunc, "")
	obj, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "x", obj.Ident.Name)

	_, ok = child.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupPrefersInnermostScope(t *testing.T) {
	root := scope.New(nil, scope.KindUnit, "")
	root.Insert("x", &scope.Object{Kind: scope.KindDecl, Mangled: "outer"})

	child := root.Push(scope.KindFunc, "")
	child.Insert("x", &scope.Object{Kind: scope.KindBind, Mangled: "inner"})

	obj, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "inner", obj.Mangled)
}

func TestLookupLabel(t *testing.T) {
	root := scope.New(nil, scope.KindUnit, "")
	outer := root.Push(scope.KindFor, "outer")
	inner := outer.Push(scope.KindFor, "")

	target, ok := inner.LookupLabel("outer")
	require.True(t, ok)
	assert.Same(t, outer, target)

	_, ok = inner.LookupLabel("nope")
	assert.False(t, ok)

	unlabeled, ok := inner.LookupLabel("")
	require.True(t, ok)
	assert.Same(t, inner, unlabeled)
}

func TestHasAncestorLabel(t *testing.T) {
	root := scope.New(nil, scope.KindUnit, "")
	outer := root.Push(scope.KindFor, "outer")

	assert.True(t, outer.HasAncestorLabel("outer"))
	assert.False(t, outer.HasAncestorLabel("other"))
	assert.False(t, outer.HasAncestorLabel(""))
}
