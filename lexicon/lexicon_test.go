package lexicon

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "verbs.txt", "lift\ncarry\n\n# legacy entries\nStand\n")
	writeFile(t, dir, "objects.txt", "hand\nfoot\n")
	writeFile(t, dir, "dependent_verbs.txt", "move\n")
	writeFile(t, dir, "dependent_objects.txt", "hand\nfoot\n")
	return dir
}

func TestStoreLoad(t *testing.T) {
	dir := testDir(t)

	lex, err := NewStore(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := lex.Verbs.Lemmas(); !reflect.DeepEqual(got, []string{"carry", "lift", "stand"}) {
		t.Errorf("Verbs = %v", got)
	}
	if !lex.DependentVerbs.Has("move") {
		t.Error("expected dependent verb 'move'")
	}
	if lex.Verbs.Has("# legacy entries") {
		t.Error("comment line must be skipped")
	}
}

func TestStoreLoadMissingList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "verbs.txt", "lift\n")

	if _, err := NewStore(dir).Load(); err == nil {
		t.Fatal("expected error for missing list files")
	}
}

func TestStoreLoadSideTable(t *testing.T) {
	dir := testDir(t)
	writeFile(t, dir, DataFile, `[
		{"lemma": "move", "alternatives": ["transport", "relocate"], "example": "Transports boxes between stations."}
	]`)

	lex, err := NewStore(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	e, ok := lex.Lookup("move")
	if !ok {
		t.Fatal("expected side-table entry for 'move'")
	}
	if len(e.Alternatives) != 2 || e.Alternatives[0] != "transport" {
		t.Errorf("Alternatives = %v", e.Alternatives)
	}

	if _, ok := lex.Lookup("lift"); ok {
		t.Error("unexpected entry for 'lift'")
	}
}

func TestStoreWriteRoundTrip(t *testing.T) {
	dir := testDir(t)
	store := NewStore(dir)

	lex, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	lex.Verbs.Add("bend")
	lex.Verbs.Del("carry")
	if err := store.Write(ListVerbs, lex.Verbs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	again, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := again.Verbs.Lemmas(); !reflect.DeepEqual(got, []string{"bend", "lift", "stand"}) {
		t.Errorf("Verbs after round trip = %v", got)
	}
}

func TestStoreWriteUnknownList(t *testing.T) {
	store := NewStore(t.TempDir())
	lex := New()
	if err := store.Write("nouns", lex.List("nouns")); err == nil {
		t.Fatal("expected error for unknown list name")
	}
}

func TestLexiconLemmas(t *testing.T) {
	lex := New()
	lex.Verbs.Add("lift")
	lex.DependentVerbs.Add("move")
	lex.DependentObjects.Add("hand")
	lex.Objects.Add("hand")

	want := []string{"hand", "lift", "move"}
	if got := lex.Lemmas(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lemmas = %v, want %v", got, want)
	}
}
