package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Walk discovers all .i18n asset files under the given root directory.
func Walk(root string) ([]Asset, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var assets []Asset

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != assetExt {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Cannot relativize path")
			return nil
		}

		assets = append(assets, newAsset(path, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(assets)).Str("root", root).Msg("Discovered i18n assets")
	return assets, nil
}
