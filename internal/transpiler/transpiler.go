// Package transpiler renders message tables into JavaScript object
// literal fragments and wraps them with the runtime lookup shim.
//
// Three entry points cover the request modes an asset file can express:
// RenderKeys for an explicit code list, RenderAll for the whole table,
// and RenderFiltered for a regex over the key space. The historically
// ambiguous "one string means either a key list or a pattern" contract
// is deliberately not reproduced; callers pick the mode.
package transpiler

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/webbfontaine/i18n-asset-pipeline/internal/properties"
)

const pairIndent = "        "

// valueEscaper prepares a value for embedding in a double-quoted JS
// string literal. The single-pass replacer escapes backslashes without
// re-escaping the characters it introduces itself.
var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// EscapeValue escapes a message value for a double-quoted JS string.
func EscapeValue(s string) string {
	return valueEscaper.Replace(s)
}

// RenderKeys renders one pair per requested key, in request order.
// A key absent from the table is echoed as its own value so missing
// translations stay visible in the UI instead of erroring.
func RenderKeys(keys []string, table *properties.Table) string {
	var b strings.Builder
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value, ok := table.Get(key)
		if !ok {
			value = key
		}
		writePair(&b, key, value)
	}
	return b.String()
}

// RenderAll renders every table entry in source order.
func RenderAll(table *properties.Table) string {
	var b strings.Builder
	for _, key := range table.Keys() {
		value, _ := table.Get(key)
		writePair(&b, key, value)
	}
	return b.String()
}

// RenderFiltered renders every key the pattern matches, in table order.
// The matched portion of the key is rewritten to the concatenation of
// its capture groups, so `foo\.` strips the prefix from foo.bar while
// `(.*)\.suffix` keeps the captured prefix. An invalid pattern matches
// nothing.
func RenderFiltered(pattern string, table *properties.Table) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("Invalid filter pattern, emitting no entries")
		return ""
	}

	var b strings.Builder
	for _, key := range table.Keys() {
		loc := re.FindStringSubmatchIndex(key)
		if loc == nil {
			continue
		}
		value, _ := table.Get(key)
		writePair(&b, stripMatch(key, loc), value)
	}
	return b.String()
}

// stripMatch replaces the matched portion of key with its capture-group
// text. With no groups the match is simply removed once.
func stripMatch(key string, loc []int) string {
	var b strings.Builder
	b.WriteString(key[:loc[0]])
	for i := 1; 2*i < len(loc); i++ {
		if loc[2*i] >= 0 {
			b.WriteString(key[loc[2*i]:loc[2*i+1]])
		}
	}
	b.WriteString(key[loc[1]:])
	return b.String()
}

func writePair(b *strings.Builder, key, value string) {
	if b.Len() > 0 {
		b.WriteString(",\n")
	}
	b.WriteString(pairIndent)
	b.WriteByte('"')
	b.WriteString(EscapeValue(key))
	b.WriteString(`": "`)
	b.WriteString(EscapeValue(value))
	b.WriteByte('"')
}
