package properties

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSimplePair(t *testing.T) {
	table := ParseString("foo.foo = Test\n")

	got, ok := table.Get("foo.foo")
	if !ok {
		t.Fatal("expected foo.foo to be present")
	}
	if got != "Test" {
		t.Fatalf("foo.foo = %q, want %q", got, "Test")
	}
}

func TestParseEmptyValue(t *testing.T) {
	table := ParseString("special.empty =\n")

	got, ok := table.Get("special.empty")
	if !ok {
		t.Fatal("empty value must still be an entry")
	}
	if got != "" {
		t.Fatalf("special.empty = %q, want empty string", got)
	}
}

func TestParseKeepsUnknownEscapes(t *testing.T) {
	table := ParseString(`special.chars = Test \{0\}` + "\n")

	got, _ := table.Get("special.chars")
	if got != `Test \{0\}` {
		t.Fatalf("special.chars = %q, want %q", got, `Test \{0\}`)
	}
}

func TestParseEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  string
		want string
	}{
		{"newline", `a = one\ntwo`, "a", "one\ntwo"},
		{"tab", `a = one\ttwo`, "a", "one\ttwo"},
		{"backslash", `a = C:\\temp`, "a", `C:\temp`},
		{"unicode", `a = caf\u00e9`, "a", "café"},
		{"bad unicode stays", `a = \u00zz`, "a", `\u00zz`},
		{"escaped separator in key", `a\=b = c`, "a=b", "c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := ParseString(tc.in + "\n")
			got, ok := table.Get(tc.key)
			if !ok {
				t.Fatalf("missing key %q", tc.key)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseContinuation(t *testing.T) {
	src := "special.multiline = This is\\n\\\n    a test.\n"
	table := ParseString(src)

	got, _ := table.Get("special.multiline")
	if got != "This is\na test." {
		t.Fatalf("special.multiline = %q, want %q", got, "This is\na test.")
	}
}

func TestParseContinuationNotTriggeredByEscapedBackslash(t *testing.T) {
	table := ParseString("a = ends with backslash\\\\\nb = next\n")

	if got, _ := table.Get("a"); got != `ends with backslash\` {
		t.Fatalf("a = %q", got)
	}
	if got, ok := table.Get("b"); !ok || got != "next" {
		t.Fatalf("b = %q, %v", got, ok)
	}
}

func TestParseSkipsCommentsAndMalformedLines(t *testing.T) {
	src := `# a comment
! another comment
no separator here
foo.bar = Another test
`
	table := ParseString(src)

	if table.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", table.Len())
	}
	if got, _ := table.Get("foo.bar"); got != "Another test" {
		t.Fatalf("foo.bar = %q", got)
	}
}

func TestParseDuplicateKeyTakesLastValue(t *testing.T) {
	table := ParseString("a = first\nb = middle\na = second\n")

	if got, _ := table.Get("a"); got != "second" {
		t.Fatalf("a = %q, want %q", got, "second")
	}
	if diff := cmp.Diff([]string{"a", "b"}, table.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeyOrder(t *testing.T) {
	src := "foo.foo = Test\nfoo.bar = Another test\ntoto.suffix = Suffix\n"
	table := ParseString(src)

	want := []string{"foo.foo", "foo.bar", "toto.suffix"}
	if diff := cmp.Diff(want, table.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseColonSeparator(t *testing.T) {
	table := ParseString("menu.file: File\n")

	if got, _ := table.Get("menu.file"); got != "File" {
		t.Fatalf("menu.file = %q", got)
	}
}
