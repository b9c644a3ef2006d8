package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sovenok-Hacker/harec/internal/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "harec.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harec.toml")
	require.NoError(t, os.WriteFile(path, []byte("trace = true\nword_size = 4\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, int64(4), cfg.WordSize)
}

func TestLoadDefaultsWordSizeWhenZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harec.toml")
	require.NoError(t, os.WriteFile(path, []byte("trace = true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cfg.WordSize)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harec.toml")
	require.NoError(t, os.WriteFile(path, []byte("trace = not-a-bool"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
