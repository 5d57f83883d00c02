// Package placeholder detects the {n} positional tokens message values
// carry so variants of a bundle can be checked for consistency before
// the assets ship.
package placeholder

import (
	"regexp"
	"sort"
	"strconv"
)

var tokenPattern = regexp.MustCompile(`\{([0-9]+)\}`)

// Token is one positional placeholder occurrence in a message value.
type Token struct {
	// Index is the positional argument number inside the braces.
	Index int
	// Literal is the matched token text, e.g. "{0}".
	Literal string
}

// Find returns the placeholder tokens in value, in order of appearance.
// A token whose opening brace is escaped with a backslash is a literal
// and not reported.
func Find(value string) []Token {
	locs := tokenPattern.FindAllStringSubmatchIndex(value, -1)
	if len(locs) == 0 {
		return nil
	}

	var tokens []Token
	for _, loc := range locs {
		if loc[0] > 0 && value[loc[0]-1] == '\\' {
			continue
		}
		idx, err := strconv.Atoi(value[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		tokens = append(tokens, Token{Index: idx, Literal: value[loc[0]:loc[1]]})
	}
	return tokens
}

// Indices returns the distinct placeholder indices in value, ascending.
func Indices(value string) []int {
	seen := make(map[int]struct{})
	for _, tok := range Find(value) {
		seen[tok.Index] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Diff compares the placeholder sets of a base-locale message and a
// variant. missing lists indices the base uses but the variant dropped;
// extra lists indices only the variant uses.
func Diff(base, variant string) (missing, extra []int) {
	baseSet := make(map[int]struct{})
	for _, idx := range Indices(base) {
		baseSet[idx] = struct{}{}
	}
	variantSet := make(map[int]struct{})
	for _, idx := range Indices(variant) {
		variantSet[idx] = struct{}{}
	}

	for idx := range baseSet {
		if _, ok := variantSet[idx]; !ok {
			missing = append(missing, idx)
		}
	}
	for idx := range variantSet {
		if _, ok := baseSet[idx]; !ok {
			extra = append(extra, idx)
		}
	}
	sort.Ints(missing)
	sort.Ints(extra)
	return missing, extra
}
