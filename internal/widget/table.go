package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const maxColumnWidth = 60

// headerLines is the height of the bubbles/table header.
const headerLines = 1

// TableItem is one cell. Items placed with Table.PlaceItem record their
// position; ItemChanged reports edited cells the same way.
type TableItem struct {
	Row    int
	Column int
	Text   string
}

// NewTableItem creates an unplaced item.
func NewTableItem() *TableItem { return &TableItem{Row: -1, Column: -1} }

// SetText sets the cell text.
func (i *TableItem) SetText(text string) { i.Text = text }

// Table is a grid of read-only text cells backed by bubbles/table. Cells
// keep their text verbatim; line breaks are only flattened for display.
// The table tracks its own cursor and first visible row and hands only the
// visible window to the bubbles model, so appending costs the same at any
// length.
type Table struct {
	Base
	model       table.Model
	headers     []string
	rows        [][]string
	display     []table.Row
	columns     int
	widths      []int
	stretchLast bool
	cursor      int
	offset      int

	ItemChanged Signal[TableItem]
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{Base: newBase(), model: table.New(table.WithFocused(false))}
}

// SetColumnCount resizes every row to n cells.
func (t *Table) SetColumnCount(n int) {
	t.columns = max(n, 0)
	for i, row := range t.rows {
		t.rows[i] = resizeRow(row, t.columns)
		t.display[i] = displayRow(t.rows[i])
	}
	t.recomputeWidths()
	t.syncColumns()
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return t.columns }

// SetRowCount adds empty rows or drops trailing rows.
func (t *Table) SetRowCount(n int) {
	n = max(n, 0)
	if n < len(t.rows) {
		t.rows = t.rows[:n]
		t.display = t.display[:n]
		t.recomputeWidths()
		t.syncColumns()
	}
	for len(t.rows) < n {
		row := make([]string, t.columns)
		t.rows = append(t.rows, row)
		t.display = append(t.display, displayRow(row))
	}
	t.syncRows()
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// SetHorizontalHeaderLabels sets the header texts, growing the column count
// when needed.
func (t *Table) SetHorizontalHeaderLabels(labels []string) {
	t.headers = append([]string(nil), labels...)
	if len(labels) > t.columns {
		t.SetColumnCount(len(labels))
		return
	}
	t.recomputeWidths()
	t.syncColumns()
}

// HorizontalHeaderLabels returns the header texts.
func (t *Table) HorizontalHeaderLabels() []string {
	return append([]string(nil), t.headers...)
}

// SetItem sets one cell and emits ItemChanged. Cells outside the grid are
// ignored.
func (t *Table) SetItem(row, column int, text string) {
	if row < 0 || row >= len(t.rows) || column < 0 || column >= t.columns {
		return
	}
	t.rows[row][column] = text
	t.display[row] = displayRow(t.rows[row])
	t.refresh(row, t.widen(t.rows[row]))
	t.ItemChanged.Emit(TableItem{Row: row, Column: column, Text: text})
}

// PlaceItem puts item at row and column and records the position in it.
func (t *Table) PlaceItem(row, column int, item *TableItem) {
	if item == nil || row < 0 || row >= len(t.rows) || column < 0 || column >= t.columns {
		return
	}
	item.Row, item.Column = row, column
	t.SetItem(row, column, item.Text)
}

// Item returns the text of one cell.
func (t *Table) Item(row, column int) (string, bool) {
	if row < 0 || row >= len(t.rows) || column < 0 || column >= t.columns {
		return "", false
	}
	return t.rows[row][column], true
}

// AppendRow adds a row and returns its index.
func (t *Table) AppendRow(cells ...string) int {
	if len(cells) > t.columns {
		t.SetColumnCount(len(cells))
	}
	row := resizeRow(append([]string(nil), cells...), t.columns)
	t.rows = append(t.rows, row)
	t.display = append(t.display, displayRow(row))
	index := len(t.rows) - 1
	t.refresh(index, t.widen(row))
	return index
}

// refresh updates the model after row changed. Rows outside the visible
// window leave the model untouched unless a column grew.
func (t *Table) refresh(row int, widened bool) {
	switch {
	case widened:
		t.syncColumns()
	case row >= t.offset && row < t.offset+t.visibleRows():
		t.syncRows()
	}
}

// Row returns a copy of one row's cells.
func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[i]...)
}

// SetStretchLastSection makes the last column take the remaining width.
func (t *Table) SetStretchLastSection(stretch bool) {
	t.stretchLast = stretch
	t.syncColumns()
}

// ResizeColumnsToContents recomputes every column width from the cells.
func (t *Table) ResizeColumnsToContents() {
	t.recomputeWidths()
	t.syncColumns()
}

// ColumnWidth returns the display width of column i.
func (t *Table) ColumnWidth(i int) int {
	cols := t.model.Columns()
	if i < 0 || i >= len(cols) {
		return 0
	}
	return cols[i].Width
}

// Cursor returns the current row or -1 when the table is empty.
func (t *Table) Cursor() int {
	if len(t.rows) == 0 {
		return -1
	}
	return t.cursor
}

// SetCursor moves the current row, scrolling it into view.
func (t *Table) SetCursor(row int) {
	if len(t.rows) == 0 {
		return
	}
	t.cursor = row
	t.syncRows()
}

// ScrollToBottom makes the last row current.
func (t *Table) ScrollToBottom() { t.SetCursor(len(t.rows) - 1) }

// FirstVisibleRow returns the row drawn on the first line below the header.
func (t *Table) FirstVisibleRow() int { return t.offset }

// VisibleRows returns how many rows fit below the header.
func (t *Table) VisibleRows() int { return t.visibleRows() }

// RowAt returns the row drawn on line y, counted from the table's top edge,
// or -1 for the header and lines without a row.
func (t *Table) RowAt(y int) int {
	line := y - t.style.GetMarginTop() - t.style.GetBorderTopSize() - t.style.GetPaddingTop() - headerLines
	if line < 0 || line >= t.visibleRows() {
		return -1
	}
	if row := t.offset + line; row < len(t.rows) {
		return row
	}
	return -1
}

// Focus gives the table keyboard focus.
func (t *Table) Focus() { t.model.Focus() }

// Blur removes keyboard focus.
func (t *Table) Blur() { t.model.Blur() }

// Focused reports whether the table has keyboard focus.
func (t *Table) Focused() bool { return t.model.Focused() }

// SetSize sets the allocated size.
func (t *Table) SetSize(width, height int) {
	t.Base.SetSize(width, height)
	if height > 0 {
		t.model.SetHeight(height)
	}
	t.syncColumns()
}

// Update navigates rows with the bubbles/table key map while focused.
func (t *Table) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !t.model.Focused() || len(t.rows) == 0 {
		return nil
	}
	keys := t.model.KeyMap
	page := t.visibleRows()
	switch {
	case key.Matches(k, keys.LineUp):
		t.SetCursor(t.cursor - 1)
	case key.Matches(k, keys.LineDown):
		t.SetCursor(t.cursor + 1)
	case key.Matches(k, keys.PageUp):
		t.SetCursor(t.cursor - page)
	case key.Matches(k, keys.PageDown):
		t.SetCursor(t.cursor + page)
	case key.Matches(k, keys.HalfPageUp):
		t.SetCursor(t.cursor - max(page/2, 1))
	case key.Matches(k, keys.HalfPageDown):
		t.SetCursor(t.cursor + max(page/2, 1))
	case key.Matches(k, keys.GotoTop):
		t.SetCursor(0)
	case key.Matches(k, keys.GotoBottom):
		t.ScrollToBottom()
	}
	return nil
}

// View renders the table.
func (t *Table) View() string { return t.frame(t.model.View()) }

// SizeHint returns the natural size.
func (t *Table) SizeHint() (int, int) {
	w := 0
	for _, cw := range t.widths {
		w += cw + 2
	}
	return t.limits.ClampWidth(w), t.limits.ClampHeight(len(t.rows) + 2)
}

func (t *Table) visibleRows() int { return max(t.model.Height(), 1) }

func (t *Table) recomputeWidths() {
	t.widths = make([]int, t.columns)
	for i := range t.widths {
		if i < len(t.headers) {
			t.widths[i] = runewidth.StringWidth(t.headers[i])
		}
	}
	for _, row := range t.rows {
		t.widen(row)
	}
}

// widen grows the column widths to fit row and reports whether any grew.
func (t *Table) widen(row []string) bool {
	grew := false
	if len(t.widths) < t.columns {
		t.widths = append(t.widths, make([]int, t.columns-len(t.widths))...)
		grew = true
	}
	for i, cell := range row {
		if i >= len(t.widths) {
			break
		}
		if w := min(runewidth.StringWidth(DisplayText(cell)), maxColumnWidth); w > t.widths[i] {
			t.widths[i] = w
			grew = true
		}
	}
	return grew
}

// syncColumns rebuilds the column specs, then the visible window.
func (t *Table) syncColumns() {
	cols := make([]table.Column, t.columns)
	used := 0
	for i := range cols {
		title := ""
		if i < len(t.headers) {
			title = t.headers[i]
		}
		cols[i] = table.Column{Title: title, Width: max(t.widths[i], 1)}
		used += cols[i].Width + 2
	}
	if w, _ := t.Size(); t.stretchLast && w > 0 && len(cols) > 0 {
		last := len(cols) - 1
		cols[last].Width = max(cols[last].Width, w-t.style.GetHorizontalFrameSize()-(used-cols[last].Width))
	}
	if w, _ := t.Size(); w > 0 {
		t.model.SetWidth(w - t.style.GetHorizontalFrameSize())
	}
	// rows must never be wider than the columns while both are swapped
	t.model.SetRows(nil)
	t.model.SetColumns(cols)
	t.syncRows()
}

// syncRows clamps the cursor, scrolls it into view and hands the visible
// rows to the model.
func (t *Table) syncRows() {
	if len(t.rows) == 0 {
		t.cursor, t.offset = 0, 0
		t.model.SetRows(nil)
		return
	}
	visible := t.visibleRows()
	t.cursor = min(max(t.cursor, 0), len(t.rows)-1)
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+visible {
		t.offset = t.cursor - visible + 1
	}
	t.offset = min(max(t.offset, 0), max(len(t.rows)-visible, 0))
	end := min(t.offset+visible, len(t.rows))
	t.model.SetRows(t.display[t.offset:end:end])
	t.model.SetCursor(t.cursor - t.offset)
}

func displayRow(row []string) table.Row {
	display := make(table.Row, len(row))
	for i, cell := range row {
		display[i] = DisplayText(cell)
	}
	return display
}

// DisplayText flattens line breaks so a cell fits on one table line.
func DisplayText(cell string) string {
	if !strings.ContainsAny(cell, "\r\n\t") {
		return cell
	}
	return strings.NewReplacer("\r\n", " ↵ ", "\n", " ↵ ", "\r", " ↵ ", "\t", " ").Replace(cell)
}

func resizeRow(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	return append(row, make([]string, n-len(row))...)
}
