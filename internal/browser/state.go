package browser

import "path/filepath"

// Mode distinguishes normal navigation from the pause after running a file.
type Mode int

const (
	// Browsing is the normal navigation mode.
	Browsing Mode = iota
	// AwaitingAck holds the execution result on screen until any key is
	// pressed.
	AwaitingAck
)

// State is the whole navigation state: the immutable root, the directory being
// shown, its entries, the cursor, and the mode. Transitions are value methods
// returning the next state; there is exactly one writer, the event loop.
type State struct {
	Root     string
	Dir      string
	Entries  []Entry
	Selected int
	Mode     Mode
}

// NewState lists root and positions the cursor on the first entry.
func NewState(root string, l Lister) (State, error) {
	entries, err := l.List(root, root)
	if err != nil {
		return State{}, err
	}
	return State{Root: root, Dir: root, Entries: entries}, nil
}

// MoveUp moves the cursor up one entry, wrapping past the top.
func (s State) MoveUp() State {
	if n := len(s.Entries); n > 0 {
		s.Selected = (s.Selected - 1 + n) % n
	}
	return s
}

// MoveDown moves the cursor down one entry, wrapping past the bottom.
func (s State) MoveDown() State {
	if n := len(s.Entries); n > 0 {
		s.Selected = (s.Selected + 1) % n
	}
	return s
}

// Selection returns the entry under the cursor, if any.
func (s State) Selection() (Entry, bool) {
	if len(s.Entries) == 0 {
		return Entry{}, false
	}
	return s.Entries[s.Selected], true
}

// SelectionPath returns the absolute path of the entry under the cursor.
func (s State) SelectionPath() (string, bool) {
	sel, ok := s.Selection()
	if !ok {
		return "", false
	}
	if sel.Name == ParentName {
		return filepath.Dir(s.Dir), true
	}
	return filepath.Join(s.Dir, sel.Name), true
}

// Reload regenerates the current listing and resets the cursor to the top.
// On error the previous state is returned untouched.
func (s State) Reload(l Lister) (State, error) {
	entries, err := l.List(s.Dir, s.Root)
	if err != nil {
		return s, err
	}
	s.Entries = entries
	s.Selected = 0
	return s, nil
}

// ReloadClamped regenerates the current listing but keeps the cursor where it
// was, clamped to the new entry count. Used when coming back from a child
// process, which may have removed entries out from under us.
func (s State) ReloadClamped(l Lister) (State, error) {
	entries, err := l.List(s.Dir, s.Root)
	if err != nil {
		return s, err
	}
	s.Entries = entries
	if s.Selected >= len(entries) {
		s.Selected = len(entries) - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	return s, nil
}

// Ascend moves to the parent directory.
func (s State) Ascend(l Lister) (State, error) {
	return s.enter(filepath.Dir(s.Dir), l)
}

// Descend moves into the named subdirectory of the current directory.
func (s State) Descend(l Lister, name string) (State, error) {
	return s.enter(filepath.Join(s.Dir, name), l)
}

func (s State) enter(dir string, l Lister) (State, error) {
	entries, err := l.List(dir, s.Root)
	if err != nil {
		return s, err
	}
	s.Dir = dir
	s.Entries = entries
	s.Selected = 0
	return s, nil
}
