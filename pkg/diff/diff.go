// Package diff compares two texts line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Op says whether a line is kept, added or removed.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Line is one line of a comparison.
type Line struct {
	Op   Op
	Text string
}

// Lines compares before and after on whole lines.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return out
}

// Stat counts the added and removed lines.
func Stat(before, after []byte) (added, removed int) {
	for _, l := range Lines(string(before), string(after)) {
		switch l.Op {
		case Insert:
			added++
		case Delete:
			removed++
		}
	}
	return added, removed
}

// Unified renders the comparison in unified diff form with a single hunk.
// Identical inputs give "". Output past 10,000 lines is truncated.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if string(before) == string(after) {
		return ""
	}
	lines := Lines(string(before), string(after))

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", beforeLabel, afterLabel)
	fmt.Fprintf(&sb, "@@ -1,%d +1,%d @@\n", count(lines, Insert), count(lines, Delete))
	written := 3
	for _, l := range lines {
		if written >= maxDiffLines {
			sb.WriteString(truncateMessage)
			sb.WriteByte('\n')
			break
		}
		sb.WriteString(prefixes[l.Op])
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
		written++
	}
	return sb.String()
}

var prefixes = map[Op]string{Equal: " ", Insert: "+", Delete: "-"}

// count returns the lines of one side, skipping those only on the other.
func count(lines []Line, other Op) int {
	n := 0
	for _, l := range lines {
		if l.Op != other {
			n++
		}
	}
	return n
}
