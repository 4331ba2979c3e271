// Package logview shows bridge records in a table with a context menu.
package logview

import (
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/uihelper/internal/icons"
	"github.com/alexisbeaulieu97/uihelper/internal/logging"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
)

// Columns are the table headers in order.
var Columns = []string{"Time", "Source", "Level", "Message"}

// Menu entry texts.
const (
	CopyLine   = "Copy Line"
	ClearAll   = "Clear All"
	AutoScroll = "Auto-scroll"
)

// Clipboard receives copied rows.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct {
	out *termenv.Output
}

// WriteAll uses the system clipboard and falls back to an OSC 52 sequence
// on the terminal, which works over SSH.
func (c systemClipboard) WriteAll(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	c.out.Copy(text)
	return nil
}

// Widget appends one table row per record. It subscribes to a bridge but
// does not own it.
type Widget struct {
	sub        *logging.Subscription
	table      *widget.Table
	menu       *widget.Menu
	autoAction *widget.Action
	autoScroll bool
	target     int
	listening  bool
	clipboard  Clipboard
	originX    int
	originY    int
}

// New creates an empty view listening to bridge. A nil bridge leaves the
// view fed only through Append.
func New(bridge *logging.Bridge) *Widget {
	w := &Widget{
		table:      widget.NewTable(),
		menu:       widget.NewMenu(""),
		autoScroll: true,
		target:     -1,
		clipboard:  systemClipboard{out: termenv.NewOutput(os.Stdout)},
	}
	w.table.SetHorizontalHeaderLabels(Columns)
	w.table.SetStretchLastSection(true)

	copyAction := widget.NewAction()
	copyAction.SetText(CopyLine)
	copyAction.Triggered.Connect(func() { w.CopyLine(w.target) })

	clearAction := widget.NewAction()
	clearAction.SetText(ClearAll)
	clearAction.Triggered.Connect(w.Clear)

	w.autoAction = widget.NewAction()
	w.autoAction.SetText(AutoScroll)
	w.autoAction.SetCheckable(true)
	w.autoAction.SetChecked(true)
	w.autoAction.Triggered.Connect(func() { w.autoScroll = w.autoAction.IsChecked() })

	w.menu.AddAction(copyAction)
	w.menu.AddAction(clearAction)
	w.menu.AddAction(w.autoAction)

	if bridge != nil {
		w.sub = bridge.Subscribe()
	}
	return w
}

// SetClipboard replaces the system clipboard.
func (w *Widget) SetClipboard(c Clipboard) { w.clipboard = c }

// Subscription returns the bridge subscription, or nil.
func (w *Widget) Subscription() *logging.Subscription { return w.sub }

// Close stops listening to the bridge.
func (w *Widget) Close() {
	if w.sub != nil {
		w.sub.Close()
	}
}

// Init starts listening for records. Later calls return nil so a view kept
// across root swaps never runs two listeners on one subscription.
func (w *Widget) Init() tea.Cmd {
	if w.sub == nil || w.listening {
		return nil
	}
	w.listening = true
	return logging.Listen(w.sub)
}

func levelCell(level logging.Level) string {
	if g := icons.Glyph(level.Icon()); g != "" {
		return g + " " + level.DisplayName()
	}
	return level.DisplayName()
}

// Append adds a row for r and follows it when auto-scroll is on.
func (w *Widget) Append(r logging.Record) {
	w.table.AppendRow(r.Clock(), r.Source, levelCell(r.Level), r.Message)
	if w.autoScroll {
		w.table.ScrollToBottom()
	}
}

// RowCount returns the number of rows.
func (w *Widget) RowCount() int { return w.table.RowCount() }

// Row returns the cells of row i.
func (w *Widget) Row(i int) []string { return w.table.Row(i) }

// ScrollPosition returns the current row, or -1 when empty.
func (w *Widget) ScrollPosition() int { return w.table.Cursor() }

// AutoScroll reports whether new rows are followed.
func (w *Widget) AutoScroll() bool { return w.autoScroll }

// SetAutoScroll turns following new rows on or off.
func (w *Widget) SetAutoScroll(on bool) {
	w.autoScroll = on
	w.autoAction.SetChecked(on)
}

// Clear removes every row. Auto-scroll is unchanged.
func (w *Widget) Clear() { w.table.SetRowCount(0) }

// CopyLine copies the tab joined cells of row to the clipboard. It reports
// false when there is no such row.
func (w *Widget) CopyLine(row int) bool {
	cells := w.table.Row(row)
	if cells == nil {
		return false
	}
	return w.clipboard.WriteAll(strings.Join(cells, "\t")) == nil
}

// Menu returns the context menu.
func (w *Widget) Menu() *widget.Menu { return w.menu }

// OpenMenu shows the context menu acting on row, which may be -1.
func (w *Widget) OpenMenu(row int) {
	w.target = row
	w.autoAction.SetChecked(w.autoScroll)
	w.menu.Popup()
}

// SetOrigin tells the view where its top left cell is on screen so mouse
// events map to rows.
func (w *Widget) SetOrigin(x, y int) { w.originX, w.originY = x, y }

// RowAt returns the row drawn at screen line y, or -1.
func (w *Widget) RowAt(y int) int { return w.table.RowAt(y - w.originY) }

// menuEntryAt returns the menu entry drawn at screen cell x, y, or -1.
func (w *Widget) menuEntryAt(x, y int) int {
	menu := w.menu.View()
	start := max(lipgloss.Height(w.table.View())-lipgloss.Height(menu), 0)
	if x -= w.originX; x < 0 || x >= lipgloss.Width(menu) {
		return -1
	}
	return w.menu.EntryAt(y - w.originY - start)
}

// Update appends delivered records and drives the menu and the table.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case logging.RecordsMsg:
		if msg.Sub != w.sub || w.sub == nil {
			return nil
		}
		for _, r := range msg.Records {
			w.Append(r)
		}
		return logging.Listen(w.sub)
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress {
			w.OpenMenu(w.RowAt(msg.Y))
			return nil
		}
		if w.menu.IsOpen() && msg.Action == tea.MouseActionPress {
			if msg.Button == tea.MouseButtonLeft {
				if entry := w.menuEntryAt(msg.X, msg.Y); entry >= 0 {
					return w.menu.Activate(entry)
				}
			}
			w.menu.Close()
			return nil
		}
	case tea.KeyMsg:
		if w.menu.IsOpen() {
			return w.menu.Update(msg)
		}
		if msg.String() == "m" && w.table.Focused() {
			w.OpenMenu(w.table.Cursor())
			return nil
		}
	}
	return w.table.Update(msg)
}

// Focus gives the table keyboard focus.
func (w *Widget) Focus() { w.table.Focus() }

// Blur removes keyboard focus.
func (w *Widget) Blur() { w.table.Blur() }

// Focused reports whether the table has focus.
func (w *Widget) Focused() bool { return w.table.Focused() }

// SetSize sets the allocated size.
func (w *Widget) SetSize(width, height int) { w.table.SetSize(width, height) }

// SizeHint returns the natural size.
func (w *Widget) SizeHint() (int, int) { return w.table.SizeHint() }

// View renders the table with the open menu over its last lines.
func (w *Widget) View() string {
	view := w.table.View()
	if !w.menu.IsOpen() {
		return view
	}
	lines := strings.Split(view, "\n")
	menu := strings.Split(w.menu.View(), "\n")
	width := lipgloss.Width(view)
	start := max(len(lines)-len(menu), 0)
	for i, line := range menu {
		if start+i >= len(lines) {
			lines = append(lines, line)
			continue
		}
		lines[start+i] = lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
	}
	return strings.Join(lines, "\n")
}
