// Package config reads the optional project-level checker configuration
// (SPEC_FULL.md AMBIENT STACK "Configuration"). go/types has no
// equivalent — it is a library invoked by go build/go vet with options
// passed in Go, not read from a file — so this is grounded instead on
// the rest of the retrieval pack's own toolchain config files
// (vovakirdan-surge and yarlson-yarlang both drive their compilers from
// a TOML project file).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is harec's project-level configuration.
type Config struct {
	// Trace enables verbose per-pass logging by default, overridable by
	// the CLI's --trace flag.
	Trace bool `toml:"trace"`
	// WordSize is the target pointer/int/size width in bytes. Zero means
	// the default (8, i.e. 64-bit). Only parsed and defaulted here:
	// internal/itype's builtin size table uses a fixed 8-byte word and
	// does not read this value.
	WordSize int64 `toml:"word_size"`
}

// Default returns the configuration used when no harec.toml is present.
func Default() Config {
	return Config{Trace: false, WordSize: 8}
}

// Load reads and parses a harec.toml file at path. A missing file is not
// an error — Load returns Default() — since the config file itself is
// optional (SPEC_FULL.md AMBIENT STACK).
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading %s", path)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	if cfg.WordSize == 0 {
		cfg.WordSize = 8
	}
	return cfg, nil
}
