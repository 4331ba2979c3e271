package dialogs

import (
	"path/filepath"
	"strings"
)

// DefaultFilter is used by file dialogs when none is given.
const DefaultFilter = "All Files(*);;Text Files (*.txt)"

// Filter is one named entry of a file filter such as "Images (*.png *.jpg)".
type Filter struct {
	Name     string
	Patterns []string
}

// ParseFilter splits a ";;" separated filter list. Entries without a
// parenthesised pattern list match everything.
func ParseFilter(s string) []Filter {
	var filters []Filter
	for _, entry := range strings.Split(s, ";;") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		f := Filter{Name: entry, Patterns: []string{"*"}}
		open, closing := strings.LastIndex(entry, "("), strings.LastIndex(entry, ")")
		if open >= 0 && closing > open {
			f.Name = strings.TrimSpace(entry[:open])
			if fields := strings.Fields(entry[open+1 : closing]); len(fields) > 0 {
				f.Patterns = fields
			}
		}
		filters = append(filters, f)
	}
	if len(filters) == 0 {
		filters = []Filter{{Name: "All Files", Patterns: []string{"*"}}}
	}
	return filters
}

// MatchAll reports whether the filter accepts every file.
func (f Filter) MatchAll() bool {
	for _, p := range f.Patterns {
		if p == "*" || p == "*.*" {
			return true
		}
	}
	return false
}

// Match reports whether the base name of path matches a pattern.
func (f Filter) Match(path string) bool {
	if f.MatchAll() {
		return true
	}
	base := filepath.Base(path)
	for _, p := range f.Patterns {
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Suffixes returns the fixed endings of the patterns, nil when every file
// matches.
func (f Filter) Suffixes() []string {
	if f.MatchAll() {
		return nil
	}
	out := make([]string, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		if i := strings.LastIndex(p, "*"); i >= 0 {
			p = p[i+1:]
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) String() string {
	return f.Name + " (" + strings.Join(f.Patterns, " ") + ")"
}
