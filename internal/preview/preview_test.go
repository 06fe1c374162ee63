package preview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ts")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := Head(path, 2); got != "one\ntwo" {
		t.Fatalf("Head(2) = %q", got)
	}
	if got := Head(path, 10); got != "one\ntwo\nthree\nfour" {
		t.Fatalf("Head(10) = %q", got)
	}
}

func TestHeadCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Head(path, 5); got != "a\nb" {
		t.Fatalf("Head = %q", got)
	}
}

func TestHeadUnreadable(t *testing.T) {
	if got := Head(filepath.Join(t.TempDir(), "missing.ts"), 5); got != Placeholder {
		t.Fatalf("Head on missing file = %q, want placeholder", got)
	}
}
