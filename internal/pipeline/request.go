package pipeline

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Request is the parsed body of an asset file: either an explicit list
// of message codes or a regex filter over the bundle's key space.
type Request struct {
	// Keys are the requested message codes, in file order.
	Keys []string
	// Filter is a regex pattern over the key space. Non-empty switches
	// the asset to filter mode and Keys is ignored.
	Filter string
}

// ImportFunc returns the body of a sibling .i18n file by bare name.
type ImportFunc func(name string) (string, error)

// ParseRequest parses an asset body. Non-blank lines are message codes;
// '#' comments are skipped; "@filter <pattern>" switches the asset to
// regex-filter mode; "@import <name>" inlines another asset's codes.
// Import cycles are ignored.
func ParseRequest(body string, importFn ImportFunc) *Request {
	req := &Request{}
	req.parse(body, importFn, make(map[string]struct{}))
	return req
}

func (r *Request) parse(body string, importFn ImportFunc, seen map[string]struct{}) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if pattern, ok := strings.CutPrefix(line, "@filter "); ok {
			r.Filter = strings.TrimSpace(pattern)
			continue
		}

		if name, ok := strings.CutPrefix(line, "@import "); ok {
			name = strings.TrimSpace(name)
			if _, done := seen[name]; done || importFn == nil {
				continue
			}
			seen[name] = struct{}{}

			imported, err := importFn(name)
			if err != nil {
				log.Warn().Err(err).Str("import", name).Msg("Skipping unresolvable import")
				continue
			}
			r.parse(imported, importFn, seen)
			continue
		}

		r.Keys = append(r.Keys, line)
	}
}
