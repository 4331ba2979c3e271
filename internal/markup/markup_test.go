package markup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uihelper/internal/layout"
	"github.com/alexisbeaulieu97/uihelper/internal/logger"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

func build(t *testing.T, src string, handlers map[string]any) (*widget.Window, error) {
	t.Helper()
	doc, err := Parse([]byte(src), "test.yaml")
	if err != nil {
		return nil, err
	}
	return doc.Build(Options{Handlers: handlers})
}

func rootBox(t *testing.T, w *widget.Window) *layout.Box {
	t.Helper()
	box, ok := w.Layout().(*layout.Box)
	require.True(t, ok, "layout is %T", w.Layout())
	return box
}

const rowsDoc = `
window: {window_title: Demo, window_size: [80, 24]}
layout:
  rows:
    - label: Name
    - line_edit: {placeholder_text: type here}
    - next_row
    - {item: {button: {text: OK, on_click: "@ok"}}, stretch: 1}
    - stretch_layout
`

func TestBuildRowsDocument(t *testing.T) {
	clicked := false
	w, err := build(t, rowsDoc, map[string]any{"ok": func() { clicked = true }})
	require.NoError(t, err)

	assert.Equal(t, "Demo", w.WindowTitle())
	assert.True(t, w.IsVisible())
	width, height := w.Size()
	assert.Equal(t, 80, width)
	assert.Equal(t, 24, height)

	rows := rootBox(t, w)
	require.Equal(t, 3, rows.Count())
	assert.Equal(t, layout.StretchItem, rows.ItemAt(2).Kind)

	first, ok := rows.ItemAt(0).Node.(*layout.Box)
	require.True(t, ok)
	require.Equal(t, 2, first.Count())
	name, ok := first.ItemAt(0).Node.(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "Name", name.Text())
	edit, ok := first.ItemAt(1).Node.(*widget.LineEdit)
	require.True(t, ok)
	assert.Equal(t, "type here", edit.PlaceholderText())

	second, ok := rows.ItemAt(1).Node.(*layout.Box)
	require.True(t, ok)
	require.Equal(t, 1, second.Count())
	assert.Equal(t, 1, second.ItemAt(0).Stretch)
	button, ok := second.ItemAt(0).Node.(*widget.Button)
	require.True(t, ok)
	assert.Equal(t, "OK", button.Text())

	button.Click()
	assert.True(t, clicked)
}

func TestComposerProperties(t *testing.T) {
	w, err := build(t, `
layout:
  vbox:
    spacing: 2
    align: center
    items:
      - label: a
      - stretch
`, nil)
	require.NoError(t, err)

	box := rootBox(t, w)
	assert.Equal(t, widget.Vertical, box.Orientation())
	assert.Equal(t, 2, box.Spacing())
	require.Equal(t, 2, box.Count())
	assert.Equal(t, layout.StretchItem, box.ItemAt(1).Kind)
}

func TestFormRows(t *testing.T) {
	w, err := build(t, `
layout:
  form:
    - {label: Name, field: line_edit}
    - [Age, {spin_box: {}}]
    - {label: Notes}
`, nil)
	require.NoError(t, err)

	form, ok := w.Layout().(*layout.FormLayout)
	require.True(t, ok)
	require.Equal(t, 3, form.RowCount())
	assert.Equal(t, "Name", form.LabelAt(0).Text())
	assert.IsType(t, &widget.LineEdit{}, form.FieldAt(0))
	assert.IsType(t, &widget.SpinBox{}, form.FieldAt(1))
	assert.Nil(t, form.FieldAt(2))
}

func TestMainWindowWithMenuBar(t *testing.T) {
	quit := 0
	w, err := build(t, `
main_window:
  window_title: Editor
  menubar:
    menu_bar:
      menus:
        - menu:
            title: File
            items:
              - action: {text: Quit, triggered: "@quit"}
              - separator
layout:
  hbox: [{label: body}]
`, map[string]any{"quit": func() { quit++ }})
	require.NoError(t, err)

	require.NotNil(t, w.MenuBar())
	menus := w.MenuBar().Menus()
	require.Len(t, menus, 1)
	assert.Equal(t, "File", menus[0].Title())
	actions := menus[0].Actions()
	require.Len(t, actions, 1)
	actions[0].Trigger()
	assert.Equal(t, 1, quit)
}

func TestStyleSheetAppliedToWindow(t *testing.T) {
	w, err := build(t, "css: \"color: red;\"\nlayout: label\n", nil)
	require.NoError(t, err)

	assert.Equal(t, "color: red;", w.StyleSheet())
}

func TestEscapedHandlerReference(t *testing.T) {
	w, err := build(t, "layout:\n  label: \"@@home\"\n", nil)
	require.NoError(t, err)

	label, ok := w.Layout().(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "@home", label.Text())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
	}{
		{"unknown kind", "layout:\n  vbox: [gizmo]\n", uierrors.ErrType},
		{"unknown mapping kind", "layout:\n  gizmo: {}\n", uierrors.ErrType},
		{"two kinds in one node", "layout:\n  {label: a, button: b}\n", uierrors.ErrType},
		{"missing handler", "layout:\n  button: {on_click: \"@nothing\"}\n", uierrors.ErrValue},
		{"bad stretch", "layout:\n  vbox:\n    - {item: label, stretch: lots}\n", uierrors.ErrValue},
		{"bad alignment", "layout:\n  vbox: {align: diagonal}\n", uierrors.ErrValue},
		{"options not a mapping", "layout:\n  spin_box: 3\n", uierrors.ErrType},
		{"command as layout", "layout: next_row\n", uierrors.ErrType},
		{"missing layout", "window: {window_title: x}\n", uierrors.ErrValue},
		{"unknown top level key", "layout: label\ntheme: dark\n", uierrors.ErrValue},
		{"two windows", "window: {}\nmain_window: {}\nlayout: label\n", uierrors.ErrValue},
		{"timers not a list", "layout: label\ntimers: 3\n", uierrors.ErrType},
		{"timer entry not a timer", "layout: label\ntimers:\n  - label: x\n", uierrors.ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := build(t, tt.src, nil)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

const timerDoc = `
window: {window_title: Clock}
layout:
  label: ticks
timers:
  - timer: {interval_ms: 5, single_shot: true, auto_start: true, on_timeout: "@tick"}
`

func TestTimersBelongToWindow(t *testing.T) {
	fired := 0
	w, err := build(t, timerDoc, map[string]any{"tick": func() { fired++ }})
	require.NoError(t, err)
	require.Len(t, w.Timers(), 1)
	assert.True(t, w.Timers()[0].IsActive())

	cmd := w.Init()
	require.NotNil(t, cmd)
	assert.Nil(t, w.Init(), "a tick is already in flight")

	w.Update(cmd())
	assert.Equal(t, 1, fired)
	assert.False(t, w.Timers()[0].IsActive())
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse([]byte("layout:\n  vbox: [a\n"), "broken.yaml")

	var parseErr *uierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func writeDoc(t *testing.T, path, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	writeDoc(t, path, "layout:\n  label: hello\n")

	w, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "hello", w.Layout().(*widget.Label).Text())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), Options{})
	var parseErr *uierrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	writeDoc(t, path, "layout:\n  label: first\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	type result struct {
		w   *widget.Window
		err error
	}
	changes := make(chan result, 16)
	done := make(chan error, 1)
	diagOut := &bytes.Buffer{}
	diag, err := logger.New(logger.Options{Level: "debug", Writer: diagOut})
	require.NoError(t, err)
	go func() {
		done <- Watch(ctx, path, Options{Diagnostics: diag}, func(w *widget.Window, err error) {
			select {
			case changes <- result{w, err}:
			default:
			}
		})
	}()

	// Writes before the watch is registered are missed, so keep writing
	// until one is seen.
	var got result
	require.Eventually(t, func() bool {
		select {
		case got = <-changes:
			return true
		default:
			_ = os.WriteFile(path, []byte("layout:\n  label: second\n"), 0o644)
			return false
		}
	}, 5*time.Second, 200*time.Millisecond)

	require.NoError(t, got.err)
	assert.Equal(t, "second", got.w.Layout().(*widget.Label).Text())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Contains(t, diagOut.String(), `"message":"markup changed"`)
	assert.Contains(t, diagOut.String(), `"added":1`)
	assert.Contains(t, diagOut.String(), `"component":"markup"`)
}

const panesDoc = `
main_window:
  window_title: Tools
  toolbars:
    - tool_bar:
        title: Main
        items:
          - action: {text: Run, triggered: "@run"}
    - toolbar_next_line
    - tool_bar: Second
  docks:
    - - left
      - dock_widget:
          title: Files
          content:
            tree_widget:
              items:
                - tree_widget_item:
                    text: src
                    children:
                      - tree_widget_item: main.go
layout:
  splitter:
    widgets:
      - list_view: {items: [alpha, beta]}
      - stacked_widget:
          pages:
            - label: one
            - vbox: [{label: two}]
          current_index: 1
    sizes: [1, 2]
`

func TestMainWindowToolBarsDocksAndPanes(t *testing.T) {
	runs := 0
	w, err := build(t, panesDoc, map[string]any{"run": func() { runs++ }})
	require.NoError(t, err)

	lines := w.ToolBars()
	require.Len(t, lines, 2)
	require.Len(t, lines[0], 1)
	assert.Equal(t, "Main", lines[0][0].Title())
	require.Len(t, lines[0][0].Actions(), 1)
	lines[0][0].Actions()[0].Trigger()
	assert.Equal(t, 1, runs)
	assert.Equal(t, "Second", lines[1][0].Title())

	docks := w.DockWidgets(widget.LeftDockArea)
	require.Len(t, docks, 1)
	assert.Equal(t, "Files", docks[0].Title())
	tree, ok := docks[0].Widget().(*widget.TreeWidget)
	require.True(t, ok, "dock content is %T", docks[0].Widget())
	require.Equal(t, 1, tree.TopLevelItemCount())
	src := tree.TopLevelItem(0)
	assert.Equal(t, "src", src.Text())
	require.Equal(t, 1, src.ChildCount())
	assert.Equal(t, "main.go", src.Child(0).Text())

	split, ok := w.Layout().(*widget.Splitter)
	require.True(t, ok, "layout is %T", w.Layout())
	require.Equal(t, 2, split.Count())
	assert.Equal(t, []int{1, 2}, split.Sizes())
	list, ok := split.Children()[0].(*widget.ListView)
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, list.Items())
	stack, ok := split.Children()[1].(*widget.StackedWidget)
	require.True(t, ok)
	assert.Equal(t, 1, stack.CurrentIndex())
	_, ok = stack.CurrentWidget().(*layout.Box)
	assert.True(t, ok)
}

func TestUnknownDockArea(t *testing.T) {
	_, err := build(t, `
main_window:
  docks:
    - [middle, {dock_widget: Files}]
layout: label
`, nil)
	require.ErrorIs(t, err, uierrors.ErrValue)
}
