package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.md")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "first" {
		t.Fatalf("content mismatch: got %q", got)
	}

	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("overwrite mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}

func TestExistsAndNonEmpty(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.md")
	empty := filepath.Join(dir, "empty.md")
	full := filepath.Join(dir, "full.md")

	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if Exists(missing) {
		t.Fatal("missing file reported as existing")
	}
	if !Exists(empty) || !Exists(full) {
		t.Fatal("present files reported as missing")
	}
	if NonEmpty(missing) || NonEmpty(empty) {
		t.Fatal("empty or missing file reported as non-empty")
	}
	if !NonEmpty(full) {
		t.Fatal("non-empty file reported as empty")
	}
	if NonEmpty(dir) {
		t.Fatal("directory reported as non-empty file")
	}
}
