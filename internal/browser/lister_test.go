package browser

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f), []byte("// stub\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestListOrdering(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "B", "A")
	touch(t, root, "y.js", "x.ts")

	entries, err := NewDirLister().List(root, root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"A", "B", "x.ts", "y.js"}
	got := names(entries)
	if len(got) != len(want) {
		t.Fatalf("entry count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
	if !entries[0].IsDir || !entries[1].IsDir || entries[2].IsDir || entries[3].IsDir {
		t.Fatalf("classification mismatch: %+v", entries)
	}
}

func TestListExcludesHiddenAndNonMatching(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, ".git", ".cache", "src")
	touch(t, root, "run.ts", "notes.txt", "lib.go", "data.json", "RUN.TS")

	entries, err := NewDirLister().List(root, root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"src", "run.ts"}
	got := names(entries)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestListParentEntryOnlyBelowRoot(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "sub")
	touch(t, root, filepath.Join("sub", "b.js"))

	l := NewDirLister()

	atRoot, err := l.List(root, root)
	if err != nil {
		t.Fatalf("list root: %v", err)
	}
	for _, e := range atRoot {
		if e.Name == ParentName {
			t.Fatalf("parent entry present at root: %v", names(atRoot))
		}
	}

	below, err := l.List(filepath.Join(root, "sub"), root)
	if err != nil {
		t.Fatalf("list sub: %v", err)
	}
	if len(below) == 0 || below[0].Name != ParentName || !below[0].IsDir {
		t.Fatalf("parent entry missing below root: %v", names(below))
	}
}

func TestListSkipsNonRegularFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "real.js")
	if err := os.Symlink(filepath.Join(root, "real.js"), filepath.Join(root, "link.js")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	entries, err := NewDirLister().List(root, root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := names(entries)
	if len(got) != 1 || got[0] != "real.js" {
		t.Fatalf("got %v, want [real.js]", got)
	}
}

func TestListUnreadableDir(t *testing.T) {
	root := t.TempDir()
	if _, err := NewDirLister().List(filepath.Join(root, "gone"), root); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
