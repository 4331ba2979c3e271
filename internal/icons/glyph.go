package icons

import "strings"

var glyphs = map[string]string{
	"error":    "✖",
	"warning":  "⚠",
	"info":     "ℹ",
	"terminal": "❯",
	"add":      "+",
	"remove":   "−",
	"close":    "✕",
	"check":    "✔",
	"folder":   "▸",
	"file":     "≡",
	"search":   "⌕",
	"settings": "⚙",
	"play":     "▶",
	"pause":    "⏸",
	"stop":     "■",
	"save":     "⤓",
	"refresh":  "↻",
	"home":     "⌂",
}

// Glyph returns a single-cell stand-in for an icon name. Colour suffixes such
// as "-black" are ignored. Unknown names get a bullet; invalid names get "".
func Glyph(name string) string {
	if _, err := Resolve(name); err != nil {
		return ""
	}
	base := name[len(MaterialPrefix):]
	for _, suffix := range []string{"-black", "-white", "-outline"} {
		base = strings.TrimSuffix(base, suffix)
	}
	if g, ok := glyphs[base]; ok {
		return g
	}
	return "•"
}

// Names lists the glyph names known to Glyph.
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	return names
}
