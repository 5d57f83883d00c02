// Package properties parses Java-style .properties resource bundles.
//
// Parsing is best-effort and never fails: comment and blank lines are
// skipped, malformed lines (no separator) are dropped, and escape
// sequences the format does not define are kept verbatim so that values
// holding literal backslashes survive into the generated output.
package properties

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads a .properties source into a Table.
func Parse(r io.Reader) *Table {
	table := NewTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var logical strings.Builder
	continued := false

	for scanner.Scan() {
		line := scanner.Text()

		if !continued {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
				continue
			}
		}

		// Leading whitespace of a continuation line is insignificant.
		line = strings.TrimLeft(line, " \t")

		if endsWithContinuation(line) {
			logical.WriteString(line[:len(line)-1])
			continued = true
			continue
		}

		logical.WriteString(line)
		addEntry(table, logical.String())
		logical.Reset()
		continued = false
	}

	// A dangling continuation at EOF still yields an entry.
	if continued && logical.Len() > 0 {
		addEntry(table, logical.String())
	}

	return table
}

// ParseString parses a .properties source held in a string.
func ParseString(s string) *Table {
	return Parse(strings.NewReader(s))
}

// endsWithContinuation reports whether the line ends with an unescaped
// backslash, i.e. an odd number of trailing backslashes.
func endsWithContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// addEntry splits one logical line into key and value and stores it.
// Lines with no separator are skipped.
func addEntry(t *Table, line string) {
	sep := separatorIndex(line)
	if sep < 0 {
		return
	}

	key := strings.TrimSpace(line[:sep])
	if key == "" {
		return
	}
	value := strings.TrimLeft(line[sep+1:], " \t")

	t.Set(decode(key), decode(value))
}

// separatorIndex finds the first unescaped '=' or ':' in the line,
// or -1 when the line has neither.
func separatorIndex(line string) int {
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '=', ':':
			return i
		}
	}
	return -1
}

// decode resolves the escape sequences the format defines. Unknown
// escapes keep the backslash so literal sequences like \{0\} round-trip.
func decode(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '=', ':':
			b.WriteByte(s[i])
		case 'u':
			if i+4 < len(s) {
				if n, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(n))
					i += 4
					continue
				}
			}
			b.WriteString(`\u`)
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
