package bundle

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestCandidatesRegionLocale(t *testing.T) {
	got := Candidates("messages", "de-AT")
	want := []string{
		"messages_de_AT.properties",
		"messages_de_AT.xml",
		"messages_de.properties",
		"messages_de.xml",
		"messages.properties",
		"messages.xml",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesUnderscoreLocale(t *testing.T) {
	got := Candidates("messages", "de_AT")
	if got[0] != "messages_de_AT.properties" {
		t.Fatalf("first candidate = %q", got[0])
	}
}

func TestCandidatesNoLocale(t *testing.T) {
	got := Candidates("messages", "")
	want := []string{"messages.properties", "messages.xml"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrefersMostSpecific(t *testing.T) {
	fsys := fstest.MapFS{
		"messages_de.properties": {Data: []byte("greeting = Hallo\n")},
		"messages.properties":    {Data: []byte("greeting = Hello\n")},
	}
	loader := NewLoader(NewFSResolver(fsys))

	b := loader.Load("messages", "de")
	if b.Resource != "messages_de.properties" {
		t.Fatalf("resolved %q", b.Resource)
	}
	if got, _ := b.Table.Get("greeting"); got != "Hallo" {
		t.Fatalf("greeting = %q", got)
	}
}

func TestLoadFallsBackThroughChain(t *testing.T) {
	fsys := fstest.MapFS{
		"messages.properties": {Data: []byte("greeting = Hello\n")},
	}
	loader := NewLoader(NewFSResolver(fsys))

	b := loader.Load("messages", "de-AT")
	if b.Resource != "messages.properties" {
		t.Fatalf("resolved %q", b.Resource)
	}
}

func TestLoadXMLVariant(t *testing.T) {
	fsys := fstest.MapFS{
		"messages_fr.xml": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<properties>
  <entry key="greeting">Bonjour</entry>
  <entry key="farewell">Au revoir</entry>
</properties>`)},
	}
	loader := NewLoader(NewFSResolver(fsys))

	b := loader.Load("messages", "fr")
	if b.Resource != "messages_fr.xml" {
		t.Fatalf("resolved %q", b.Resource)
	}
	if got, _ := b.Table.Get("greeting"); got != "Bonjour" {
		t.Fatalf("greeting = %q", got)
	}
	if b.Table.Len() != 2 {
		t.Fatalf("entries = %d", b.Table.Len())
	}
}

func TestLoadPropertiesBeatsXMLAtSameLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"messages_fr.properties": {Data: []byte("greeting = Salut\n")},
		"messages_fr.xml": {Data: []byte(`<properties>
  <entry key="greeting">Bonjour</entry>
</properties>`)},
	}
	loader := NewLoader(NewFSResolver(fsys))

	b := loader.Load("messages", "fr")
	if b.Resource != "messages_fr.properties" {
		t.Fatalf("resolved %q", b.Resource)
	}
}

func TestLoadTotalMissYieldsEmptyTable(t *testing.T) {
	loader := NewLoader(NewFSResolver(fstest.MapFS{}))

	b := loader.Load("messages", "de")
	if b.Table == nil {
		t.Fatal("table must not be nil")
	}
	if b.Table.Len() != 0 {
		t.Fatalf("entries = %d, want 0", b.Table.Len())
	}
	if b.Resource != "" {
		t.Fatalf("resource = %q, want empty", b.Resource)
	}
}

func TestLoadSkipsMalformedXML(t *testing.T) {
	fsys := fstest.MapFS{
		"messages_fr.xml":     {Data: []byte("<properties><entry")},
		"messages.properties": {Data: []byte("greeting = Hello\n")},
	}
	loader := NewLoader(NewFSResolver(fsys))

	b := loader.Load("messages", "fr")
	if b.Resource != "messages.properties" {
		t.Fatalf("resolved %q", b.Resource)
	}
}

func TestDirResolverNotFound(t *testing.T) {
	r := NewDirResolver(t.TempDir())
	if _, err := r.Resolve("messages.properties"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
