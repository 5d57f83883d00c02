// Package pipeline turns .i18n asset request files into generated
// JavaScript message scripts: discovery, request parsing, bundle
// resolution, rendering and change-tracked output writing.
package pipeline

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Asset is one discovered .i18n request file.
type Asset struct {
	// Path is the absolute source path.
	Path string
	// Rel is the path relative to the source root.
	Rel string
	// Base is the message bundle base name, e.g. "messages".
	Base string
	// Locale is the locale suffix from the file name, "" when absent.
	Locale string
}

// OutputRel returns the generated script path relative to the output
// root, mirroring the source layout.
func (a Asset) OutputRel() string {
	return strings.TrimSuffix(a.Rel, assetExt) + ".js"
}

const assetExt = ".i18n"

// localeSuffix matches a trailing _xx or _xx_YY locale qualifier.
var localeSuffix = regexp.MustCompile(`_([a-z]{2,3}(?:_[A-Z]{2})?)$`)

// newAsset builds an Asset from an absolute path and its source root
// relative path, splitting the file name into base and locale.
func newAsset(path, rel string) Asset {
	stem := strings.TrimSuffix(filepath.Base(path), assetExt)

	base, locale := stem, ""
	if m := localeSuffix.FindStringSubmatch(stem); m != nil && len(stem) > len(m[0]) {
		base = stem[:len(stem)-len(m[0])]
		locale = m[1]
	}

	return Asset{Path: path, Rel: rel, Base: base, Locale: locale}
}
