package bundle

import (
	"strings"

	"golang.org/x/text/language"
)

// Candidates returns the resource file names to try for a bundle base
// name and locale, most specific first: for base "messages" and locale
// "de-AT" that is messages_de_AT.properties, messages_de_AT.xml,
// messages_de.properties, messages_de.xml, messages.properties,
// messages.xml.
func Candidates(base, locale string) []string {
	suffixes := suffixChain(locale)
	names := make([]string, 0, len(suffixes)*2)
	for _, s := range suffixes {
		names = append(names, base+s+".properties", base+s+".xml")
	}
	return names
}

// suffixChain builds the ordered locale suffix fallback chain, ending
// with the empty locale-agnostic suffix.
func suffixChain(locale string) []string {
	if locale == "" {
		return []string{""}
	}

	raw := "_" + underscored(locale)

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		// Unparseable locale: try it literally, then the base file.
		return []string{raw, ""}
	}

	var chain []string
	for t := tag; !t.IsRoot(); t = t.Parent() {
		chain = append(chain, "_"+underscored(t.String()))
	}

	// Canonicalization may rewrite the tag; the literal spelling used in
	// the asset name still wins the first lookup.
	if len(chain) == 0 || chain[0] != raw {
		chain = append([]string{raw}, chain...)
	}

	return append(chain, "")
}

func underscored(locale string) string {
	return strings.ReplaceAll(locale, "-", "_")
}
