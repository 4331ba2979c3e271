// Package markup builds a window from a YAML document.
//
// A document names the window options, an optional stylesheet and a layout
// tree:
//
//	window: {window_title: Demo, window_size: [80, 24]}
//	css: "color: #ff0000;"
//	layout:
//	  rows:
//	    - label: Name
//	    - line_edit: {placeholder_text: type here}
//	    - next_row
//	    - {item: {button: {text: OK, on_click: "@ok"}}, stretch: 1}
//	    - stretch_layout
//	timers:
//	  - timer: {interval_ms: 500, auto_start: true, on_timeout: "@tick"}
//
// Each node is a single key mapping from a widget kind or a composer
// (rows, columns, vbox, hbox, form) to its options. Option maps keep
// document order. A string of the form "@name" is replaced by the handler
// registered under that name.
package markup

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/uihelper/internal/factory"
	"github.com/alexisbeaulieu97/uihelper/internal/logger"
	"github.com/alexisbeaulieu97/uihelper/internal/rules"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Top level keys.
const (
	keyWindow     = "window"
	keyMainWindow = "main_window"
	keyCSS        = "css"
	keyLayout     = "layout"
	keyTimers     = "timers"
)

// Options configure a build.
type Options struct {
	// Handlers resolve "@name" option values, typically callbacks.
	Handlers map[string]any
	// Diagnostics receives reload reports from Watch.
	Diagnostics *logger.Logger
}

// Document is a parsed markup file.
type Document struct {
	Path   string
	Kind   string
	Window *rules.Bag
	CSS    string
	Layout any
	Timers []any
}

// Parse decodes a document. path is only used in errors.
func Parse(data []byte, path string) (*Document, error) {
	var top rules.Bag
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, uierrors.NewParseError(path, uierrors.YAMLLine(err), err)
	}
	doc := &Document{Path: path, Kind: "widget", Window: rules.NewBag()}
	seenWindow := false
	for _, key := range top.Keys() {
		raw, _ := top.Get(key)
		switch key {
		case keyWindow, keyMainWindow:
			if seenWindow {
				return nil, uierrors.NewValueError(key, "a document has one window or main_window")
			}
			seenWindow = true
			if key == keyMainWindow {
				doc.Kind = keyMainWindow
			}
			if raw == nil {
				continue
			}
			bag, ok := raw.(*rules.Bag)
			if !ok {
				return nil, uierrors.NewTypeError(key, "must be a mapping of window options")
			}
			doc.Window = bag
		case keyCSS:
			css, ok := raw.(string)
			if !ok {
				return nil, uierrors.NewTypeError(key, "must be a string")
			}
			doc.CSS = css
		case keyLayout:
			doc.Layout = raw
		case keyTimers:
			if raw == nil {
				continue
			}
			list, ok := raw.([]any)
			if !ok {
				return nil, uierrors.NewTypeError(key, "must be a list of timers")
			}
			doc.Timers = list
		default:
			return nil, uierrors.NewValueError(key, "unknown top level key %q", key)
		}
	}
	if doc.Layout == nil {
		return nil, uierrors.NewValueError(keyLayout, "document has no layout")
	}
	return doc, nil
}

// Build creates the window the document describes.
func (d *Document) Build(opts Options) (*widget.Window, error) {
	b := &builder{handlers: opts.Handlers}
	root, err := b.node(d.Layout)
	if err != nil {
		return nil, err
	}
	body, ok := root.(ui.Renderable)
	if !ok {
		return nil, uierrors.NewTypeError(keyLayout, "must be a widget or a layout, got %T", root)
	}
	bag, err := b.options(d.Kind, d.Window)
	if err != nil {
		return nil, err
	}
	slot := "layout"
	if d.Kind == keyMainWindow {
		slot = "central_widget"
	}
	bag = bag.With(slot, body)
	if d.CSS != "" && !bag.Has(keyCSS) {
		bag = bag.With(keyCSS, d.CSS)
	}
	built, err := factory.Build(d.Kind, bag)
	if err != nil {
		return nil, err
	}
	window := built.(*widget.Window)
	for i, raw := range d.Timers {
		node, err := b.node(raw)
		if err != nil {
			return nil, err
		}
		timer, ok := node.(*widget.Timer)
		if !ok {
			return nil, uierrors.NewTypeError(keyTimers, "entry %d must be a timer, got %T", i, node)
		}
		window.AddTimer(timer)
	}
	return window, nil
}

// Load reads, parses and builds the document at path.
func Load(path string, opts Options) (*widget.Window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, uierrors.NewParseError(path, 0, err)
	}
	return loadBytes(data, path, opts)
}

func loadBytes(data []byte, path string, opts Options) (*widget.Window, error) {
	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return doc.Build(opts)
}
