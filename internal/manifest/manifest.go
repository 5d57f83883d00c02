// Package manifest reads the optional i18n.toml a source tree may carry
// to pin bundle locations and build options alongside the assets.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file looked up in the source root.
const FileName = "i18n.toml"

// Manifest holds per-tree settings. Zero values defer to the
// environment configuration.
type Manifest struct {
	Bundle BundleConfig `toml:"bundle"`
	Build  BuildConfig  `toml:"build"`
}

// BundleConfig pins where message bundles live for this tree.
type BundleConfig struct {
	// Dirs are bundle search directories, relative paths resolved
	// against the source root.
	Dirs []string `toml:"dirs"`
	// Base is the default bundle base name for single-asset rendering.
	Base string `toml:"base"`
	// DefaultLocale applies to assets without a locale suffix.
	DefaultLocale string `toml:"default_locale"`
}

// BuildConfig tunes the compile run.
type BuildConfig struct {
	// Workers overrides the compile concurrency when positive.
	Workers int `toml:"workers"`
}

// Load reads the manifest from dir. A missing file yields a zero
// manifest; a malformed one is an error.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for i, d := range m.Bundle.Dirs {
		if !filepath.IsAbs(d) {
			m.Bundle.Dirs[i] = filepath.Join(dir, d)
		}
	}
	return &m, nil
}
