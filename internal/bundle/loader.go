// Package bundle resolves locale-qualified message resources.
//
// A bundle is addressed by base name and locale; the loader walks the
// locale suffix fallback chain over .properties and Java-XML resource
// files until one resolves. A total miss yields an empty table rather
// than an error, so missing translations degrade to echoed keys instead
// of failing the asset build.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/webbfontaine/i18n-asset-pipeline/internal/properties"
)

// Bundle is one resolved message resource.
type Bundle struct {
	// Table holds the parsed messages. Never nil; empty on a total miss.
	Table *properties.Table
	// Resource is the resolved file name, empty when nothing resolved.
	Resource string
	// Raw is the resolved file content, used for change digests.
	Raw []byte
}

// Loader loads message bundles through an injected Resolver.
type Loader struct {
	resolver Resolver
}

// NewLoader creates a Loader backed by the given resolver.
func NewLoader(r Resolver) *Loader {
	return &Loader{resolver: r}
}

// Load resolves the bundle for base and locale. Resolution failures are
// not fatal: the next candidate in the chain is tried, and exhausting
// the chain returns an empty bundle.
func (l *Loader) Load(base, locale string) *Bundle {
	for _, name := range Candidates(base, locale) {
		rc, err := l.resolver.Resolve(name)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Warn().Err(err).Str("resource", name).Msg("Resolve failed")
			}
			continue
		}

		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			log.Warn().Err(err).Str("resource", name).Msg("Read failed")
			continue
		}

		table, err := parseResource(name, raw)
		if err != nil {
			log.Warn().Err(err).Str("resource", name).Msg("Parse failed, trying next candidate")
			continue
		}

		log.Debug().Str("resource", name).Int("entries", table.Len()).Msg("Bundle resolved")
		return &Bundle{Table: table, Resource: name, Raw: raw}
	}

	log.Warn().Str("base", base).Str("locale", locale).Msg("No message bundle resolved, using empty table")
	return &Bundle{Table: properties.NewTable()}
}

func parseResource(name string, raw []byte) (*properties.Table, error) {
	if strings.HasSuffix(name, ".xml") {
		table, err := parseXML(raw)
		if err != nil {
			return nil, fmt.Errorf("parse xml bundle: %w", err)
		}
		return table, nil
	}
	return properties.Parse(bytes.NewReader(raw)), nil
}
