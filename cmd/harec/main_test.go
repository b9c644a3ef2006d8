package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandShape(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "harec", root.Use)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "version")

	assert.NotNil(t, root.PersistentFlags().Lookup("trace"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestCheckCommandRequiresExactlyOneArg(t *testing.T) {
	cmd := newCheckCmd()
	assert.Error(t, cmd.Args(cmd, nil))
	assert.Error(t, cmd.Args(cmd, []string{"a.json", "b.json"}))
	assert.NoError(t, cmd.Args(cmd, []string{"a.json"}))
}

func TestRunCheckReportsMissingFile(t *testing.T) {
	err := runCheck("does-not-exist.json")
	require.Error(t, err)
}
