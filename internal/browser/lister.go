// Package browser implements the navigation core: directory listings bounded
// at a root, and the state machine that moves a selection through them.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ParentName is the synthetic entry that navigates one level up.
const ParentName = ".."

const hiddenPrefix = "."

// scriptExts are the runnable file types. Matching is case-sensitive.
var scriptExts = map[string]bool{
	".ts": true,
	".js": true,
}

// Entry is one navigable item in a listing: a subdirectory, the parent
// pseudo-entry, or a runnable file. Entries are snapshots taken at listing
// time and are never patched afterwards.
type Entry struct {
	Name  string
	IsDir bool
}

// Lister produces the ordered entries for a directory.
type Lister interface {
	List(dir, root string) ([]Entry, error)
}

// DirLister reads the filesystem directly.
type DirLister struct {
	coll *collate.Collator
}

func NewDirLister() *DirLister {
	return &DirLister{coll: collate.New(localeTag())}
}

// List returns the immediate children of dir: visible subdirectories first,
// then files with a recognized extension, each group in collation order. The
// parent pseudo-entry is prepended iff dir is not the root; its absence at the
// root is the only guard against navigating above it.
func (l *DirLister) List(dir, root string) ([]Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var dirs, files []string
	for _, child := range children {
		name := child.Name()
		if child.IsDir() {
			if strings.HasPrefix(name, hiddenPrefix) {
				continue
			}
			dirs = append(dirs, name)
			continue
		}
		if child.Type().IsRegular() && scriptExts[filepath.Ext(name)] {
			files = append(files, name)
		}
	}
	l.coll.SortStrings(dirs)
	l.coll.SortStrings(files)

	entries := make([]Entry, 0, len(dirs)+len(files)+1)
	if filepath.Clean(dir) != filepath.Clean(root) {
		entries = append(entries, Entry{Name: ParentName, IsDir: true})
	}
	for _, name := range dirs {
		entries = append(entries, Entry{Name: name, IsDir: true})
	}
	for _, name := range files {
		entries = append(entries, Entry{Name: name})
	}
	return entries, nil
}

func localeTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		val := os.Getenv(key)
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		if i := strings.IndexAny(val, ".@"); i > 0 {
			val = val[:i]
		}
		if tag, err := language.Parse(val); err == nil {
			return tag
		}
	}
	return language.Und
}
