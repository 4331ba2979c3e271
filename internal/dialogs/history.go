// Package dialogs provides modal file, colour and message dialogs as
// bubbletea models.
//
// Every dialog can be embedded in a running program, where it reports its
// outcome with a message, or shown on its own with the Run helpers. A
// cancelled dialog yields an empty result, never an error.
//
// The last directory used by each kind of file dialog is kept in a History
// owned by the application context, so separate applications do not share
// it.
package dialogs

import (
	"path/filepath"
	"sync"
	"sync/atomic"
)

// Kind identifies a file dialog.
type Kind int

const (
	OpenFile Kind = iota
	OpenFiles
	SaveFile
	OpenDir
)

var kindNames = map[Kind]string{
	OpenFile:  "open_file",
	OpenFiles: "open_files",
	SaveFile:  "save_file",
	OpenDir:   "open_dir",
}

var kindTitles = map[Kind]string{
	OpenFile:  "Open File...",
	OpenFiles: "Open Files...",
	SaveFile:  "Save File...",
	OpenDir:   "Open Directory...",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// DefaultTitle returns the title used when none is given.
func (k Kind) DefaultTitle() string { return kindTitles[k] }

// History remembers the last directory used by each kind of file dialog.
// The zero value is ready to use and safe for concurrent use.
type History struct {
	mu   sync.Mutex
	last map[Kind]string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// LastPath returns the remembered directory for kind, or "".
func (h *History) LastPath(kind Kind) string {
	if h == nil {
		return ""
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last[kind]
}

// Remember records a result of kind. Files record their parent directory,
// directories themselves. Paths are stored with forward slashes.
func (h *History) Remember(kind Kind, path string) {
	if h == nil || path == "" {
		return
	}
	dir := path
	if kind != OpenDir {
		dir = filepath.Dir(filepath.FromSlash(path))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		h.last = make(map[Kind]string)
	}
	h.last[kind] = filepath.ToSlash(dir)
}

// Start returns the directory a dialog of kind opens in: the remembered one
// when useLast is set and one exists, otherwise dir.
func (h *History) Start(kind Kind, dir string, useLast bool) string {
	if useLast {
		if last := h.LastPath(kind); last != "" {
			return last
		}
	}
	return dir
}

// Reset forgets every remembered directory.
func (h *History) Reset() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = nil
}

var lastDialogID int64

func nextID() int {
	return int(atomic.AddInt64(&lastDialogID, 1))
}
