package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("Second file."))
	writeFile(t, dir, "a.txt", []byte("First file."))
	writeFile(t, dir, "notes.md", []byte("ignored"))

	docs, loadErrs, err := Load(dir, ".txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loadErrs) != 0 {
		t.Fatalf("unexpected load errors: %v", loadErrs)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Name != "a.txt" || docs[1].Name != "b.txt" {
		t.Fatalf("documents not sorted by name: %s, %s", docs[0].Name, docs[1].Name)
	}
	if docs[0].Text != "First file." {
		t.Fatalf("unexpected content: %q", docs[0].Text)
	}
}

func TestLoadExcludesBinaryFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", []byte("Readable text."))
	writeFile(t, dir, "bad.txt", []byte{0x00, 0x01, 0x02})
	writeFile(t, dir, "broken.txt", []byte{0xff, 0xfe, 'a'})

	docs, loadErrs, err := Load(dir, ".txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != "good.txt" {
		t.Fatalf("expected only good.txt, got %v", docs)
	}
	if len(loadErrs) != 2 {
		t.Fatalf("expected 2 load errors, got %d", len(loadErrs))
	}
	if loadErrs[0].Name != "bad.txt" || !errors.Is(loadErrs[0].Err, errBinary) {
		t.Fatalf("unexpected first load error: %v", loadErrs[0])
	}
	if loadErrs[1].Name != "broken.txt" || !errors.Is(loadErrs[1].Err, errNotUTF8) {
		t.Fatalf("unexpected second load error: %v", loadErrs[1])
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	docs, loadErrs, err := Load(t.TempDir(), ".txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 || len(loadErrs) != 0 {
		t.Fatalf("expected empty corpus, got %d docs and %d errors", len(docs), len(loadErrs))
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing"), ".txt"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
