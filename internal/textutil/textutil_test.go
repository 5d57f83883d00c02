package textutil

import "testing"

func TestHashIsStable(t *testing.T) {
	a := Hash("foo.foo = Test")
	b := Hash("foo.foo = Test")
	if a != b {
		t.Fatalf("hash not stable: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == Hash("foo.foo = Other") {
		t.Fatal("different inputs must not collide trivially")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("a longer string", 8); got != "a longer..." {
		t.Fatalf("got %q", got)
	}
}
