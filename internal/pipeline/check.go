package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/webbfontaine/i18n-asset-pipeline/internal/placeholder"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/properties"
)

// PlaceholderIssue is one placeholder mismatch between a base bundle
// message and a locale variant of it.
type PlaceholderIssue struct {
	// Resource is the variant file, relative to the checked root.
	Resource string
	// Key is the message code.
	Key string
	// Missing are indices the base message uses but the variant dropped.
	Missing []int
	// Extra are indices only the variant uses.
	Extra []int
}

func (i PlaceholderIssue) String() string {
	var parts []string
	if len(i.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", i.Missing))
	}
	if len(i.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra %v", i.Extra))
	}
	return fmt.Sprintf("%s: %s: %s", i.Resource, i.Key, strings.Join(parts, ", "))
}

// CheckPlaceholders walks root for locale variants of .properties
// bundles and compares each message's {n} placeholder set against the
// locale-agnostic base file in the same directory. Variants without a
// base file are skipped.
func CheckPlaceholders(root string) ([]PlaceholderIssue, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	var issues []PlaceholderIssue
	baseTables := make(map[string]*properties.Table)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".properties" {
			return nil
		}

		stem := strings.TrimSuffix(filepath.Base(path), ".properties")
		m := localeSuffix.FindStringSubmatch(stem)
		if m == nil || len(stem) == len(m[0]) {
			return nil // base file, not a variant
		}
		base := stem[:len(stem)-len(m[0])]

		basePath := filepath.Join(filepath.Dir(path), base+".properties")
		baseTable, ok := baseTables[basePath]
		if !ok {
			baseTable = parseFile(basePath)
			baseTables[basePath] = baseTable
		}
		if baseTable == nil {
			return nil
		}

		variantTable := parseFile(path)
		if variantTable == nil {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		for _, key := range variantTable.Keys() {
			baseValue, ok := baseTable.Get(key)
			if !ok {
				continue
			}
			variantValue, _ := variantTable.Get(key)

			missing, extra := placeholder.Diff(baseValue, variantValue)
			if len(missing) == 0 && len(extra) == 0 {
				continue
			}
			issues = append(issues, PlaceholderIssue{
				Resource: rel,
				Key:      key,
				Missing:  missing,
				Extra:    extra,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return issues, nil
}

// parseFile parses a .properties file, returning nil when it cannot be read.
func parseFile(path string) *properties.Table {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return properties.Parse(f)
}
