package widget

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ParseStyleSheet turns a small CSS subset into a lipgloss style. Selectors
// are ignored and the declarations of every block are merged in order.
// Supported properties: color, background(-color), font-weight, font-style,
// text-decoration, padding, margin and border.
func ParseStyleSheet(css string) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, decl := range declarations(css) {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		switch name {
		case "color":
			style = style.Foreground(lipgloss.Color(value))
		case "background", "background-color":
			style = style.Background(lipgloss.Color(value))
		case "font-weight":
			style = style.Bold(value == "bold" || value == "600" || value == "700" || value == "800" || value == "900")
		case "font-style":
			style = style.Italic(value == "italic")
		case "text-decoration":
			style = style.Underline(strings.Contains(value, "underline")).Strikethrough(strings.Contains(value, "line-through"))
		case "padding":
			if sides, ok := cells(value); ok {
				style = style.Padding(sides...)
			}
		case "margin":
			if sides, ok := cells(value); ok {
				style = style.Margin(sides...)
			}
		case "border":
			if value == "none" || value == "0" {
				style = style.UnsetBorderStyle()
				continue
			}
			border := lipgloss.NormalBorder()
			switch {
			case strings.Contains(value, "double"):
				border = lipgloss.DoubleBorder()
			case strings.Contains(value, "round"):
				border = lipgloss.RoundedBorder()
			case strings.Contains(value, "thick"):
				border = lipgloss.ThickBorder()
			}
			style = style.Border(border)
		case "border-color":
			style = style.BorderForeground(lipgloss.Color(value))
		}
	}
	return style
}

func declarations(css string) []string {
	var body strings.Builder
	rest := css
	if strings.Contains(rest, "{") {
		for {
			open := strings.Index(rest, "{")
			if open < 0 {
				break
			}
			end := strings.Index(rest[open:], "}")
			if end < 0 {
				body.WriteString(rest[open+1:])
				break
			}
			body.WriteString(rest[open+1 : open+end])
			body.WriteByte(';')
			rest = rest[open+end+1:]
		}
	} else {
		body.WriteString(rest)
	}
	var out []string
	for _, decl := range strings.Split(body.String(), ";") {
		if decl = strings.TrimSpace(decl); decl != "" {
			out = append(out, decl)
		}
	}
	return out
}

func cells(value string) ([]int, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, false
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(f, "px"), "ch"))
		if err != nil || n < 0 {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
