package logview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uihelper/internal/logging"
)

type fakeClipboard struct {
	copied []string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.copied = append(c.copied, text)
	return nil
}

var stamp = time.Date(2024, 3, 1, 9, 5, 7, 42_000_000, time.Local)

func record(level logging.Level, source, message string) logging.Record {
	return logging.Record{Time: stamp, Level: level, Source: source, Message: message}
}

func newView(t *testing.T) (*Widget, *fakeClipboard) {
	t.Helper()
	w := New(nil)
	clip := &fakeClipboard{}
	w.SetClipboard(clip)
	return w, clip
}

func TestAppendFollowsNewestRow(t *testing.T) {
	w, _ := newView(t)

	for i := 0; i < 7; i++ {
		w.Append(record(logging.Info, "worker", "tick"))
	}

	assert.Equal(t, 7, w.RowCount())
	assert.Equal(t, 6, w.ScrollPosition())
}

func TestAutoScrollOffKeepsPosition(t *testing.T) {
	w, _ := newView(t)
	for i := 0; i < 5; i++ {
		w.Append(record(logging.Info, "worker", "tick"))
	}
	require.Equal(t, 4, w.ScrollPosition())

	w.SetAutoScroll(false)
	w.Append(record(logging.Error, "worker", "late"))

	assert.Equal(t, 6, w.RowCount())
	assert.Equal(t, 4, w.ScrollPosition())
}

func TestRowCells(t *testing.T) {
	w, _ := newView(t)
	w.Append(record(logging.Warning, "net", "retrying"))

	assert.Equal(t, []string{"09:05:07.042", "net", "⚠ Warning", "retrying"}, w.Row(0))
	assert.Equal(t, Columns, w.table.HorizontalHeaderLabels())
}

func TestClearAllKeepsAutoScroll(t *testing.T) {
	w, _ := newView(t)
	w.Append(record(logging.Info, "a", "1"))
	w.SetAutoScroll(false)

	w.Clear()

	assert.Equal(t, 0, w.RowCount())
	assert.False(t, w.AutoScroll())
	assert.Equal(t, -1, w.ScrollPosition())
}

func TestCopyLine(t *testing.T) {
	w, clip := newView(t)
	w.Append(record(logging.Debug, "db", "query"))

	assert.True(t, w.CopyLine(0))
	assert.False(t, w.CopyLine(3))
	assert.False(t, w.CopyLine(-1))

	require.Len(t, clip.copied, 1)
	assert.Equal(t, "09:05:07.042\tdb\t"+levelCell(logging.Debug)+"\tquery", clip.copied[0])
}

func TestCopyKeepsLineBreaks(t *testing.T) {
	w, clip := newView(t)
	w.Append(record(logging.Error, "job", "first\nsecond"))

	require.True(t, w.CopyLine(0))
	assert.True(t, strings.HasSuffix(clip.copied[0], "\tfirst\nsecond"))
}

func TestMenuEntries(t *testing.T) {
	w, _ := newView(t)

	actions := w.Menu().Actions()
	require.Len(t, actions, 3)
	assert.Equal(t, CopyLine, actions[0].Text())
	assert.Equal(t, ClearAll, actions[1].Text())
	assert.Equal(t, AutoScroll, actions[2].Text())
	assert.True(t, actions[2].IsCheckable())
}

func TestMenuTogglesAutoScroll(t *testing.T) {
	w, _ := newView(t)
	auto := w.Menu().Actions()[2]

	w.OpenMenu(-1)
	assert.True(t, auto.IsChecked())
	auto.Trigger()
	assert.False(t, w.AutoScroll())

	w.OpenMenu(-1)
	assert.False(t, auto.IsChecked())
	auto.Trigger()
	assert.True(t, w.AutoScroll())
}

func TestMenuClearAll(t *testing.T) {
	w, _ := newView(t)
	w.Append(record(logging.Info, "a", "1"))
	w.Append(record(logging.Info, "a", "2"))

	w.OpenMenu(0)
	w.Menu().Actions()[1].Trigger()

	assert.Equal(t, 0, w.RowCount())
	assert.True(t, w.AutoScroll())
}

func TestKeyOpensMenuOnCurrentRow(t *testing.T) {
	w, clip := newView(t)
	w.Append(record(logging.Info, "a", "first"))
	w.Append(record(logging.Info, "a", "second"))
	w.Focus()

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	require.True(t, w.Menu().IsOpen())
	assert.Contains(t, w.View(), CopyLine)

	w.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, w.Menu().IsOpen())
	require.Len(t, clip.copied, 1)
	assert.True(t, strings.HasSuffix(clip.copied[0], "\tsecond"))
}

func TestRightClickTargetsRowUnderPointer(t *testing.T) {
	w, clip := newView(t)
	w.Append(record(logging.Info, "a", "first"))
	w.Append(record(logging.Info, "a", "second"))
	w.SetOrigin(0, 3)

	w.Update(tea.MouseMsg{X: 2, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	require.True(t, w.Menu().IsOpen())
	w.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, clip.copied, 1)
	assert.True(t, strings.HasSuffix(clip.copied[0], "\tfirst"))
}

func TestRightClickTargetsRowUnderPointerAfterScrolling(t *testing.T) {
	w, clip := newView(t)
	w.SetSize(80, 10)
	for i := 0; i < 50; i++ {
		w.Append(record(logging.Info, "a", fmt.Sprintf("msg-%02d", i)))
	}
	require.Equal(t, 49, w.ScrollPosition())
	require.Contains(t, strings.Split(w.View(), "\n")[1], "msg-41")

	w.Update(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	w.Update(tea.MouseMsg{X: 2, Y: 9, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	w.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, clip.copied, 2)
	assert.True(t, strings.HasSuffix(clip.copied[0], "\tmsg-41"))
	assert.True(t, strings.HasSuffix(clip.copied[1], "\tmsg-49"))
}

func TestLeftClickOnMenuEntryTriggersIt(t *testing.T) {
	w, _ := newView(t)
	w.Append(record(logging.Info, "a", "first"))
	w.Append(record(logging.Info, "a", "second"))

	clearLine := func() int {
		for i, line := range strings.Split(w.View(), "\n") {
			if strings.Contains(line, ClearAll) {
				return i
			}
		}
		return -1
	}

	w.Update(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	y := clearLine()
	require.GreaterOrEqual(t, y, 0)
	w.Update(tea.MouseMsg{X: 60, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.False(t, w.Menu().IsOpen())
	assert.Equal(t, 2, w.RowCount())

	w.Update(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	y = clearLine()
	w.Update(tea.MouseMsg{X: 2, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	assert.False(t, w.Menu().IsOpen())
	assert.Equal(t, 0, w.RowCount())
}

func TestCopyWithoutRowIsNoop(t *testing.T) {
	w, clip := newView(t)
	w.Append(record(logging.Info, "a", "only"))

	w.Update(tea.MouseMsg{Y: 9, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	w.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, clip.copied)
}

func TestRecordsFromBridge(t *testing.T) {
	bridge, err := logging.New(logging.Config{})
	require.NoError(t, err)
	w := New(bridge)
	defer w.Close()

	bridge.Info("A", "m1")
	bridge.Error("B", "m2")
	msg := w.Init()()

	cmd := w.Update(msg)
	assert.NotNil(t, cmd)
	require.Equal(t, 2, w.RowCount())
	assert.Equal(t, "m1", w.Row(0)[3])
	assert.Equal(t, "m2", w.Row(1)[3])
	assert.Equal(t, 1, w.ScrollPosition())
}

func TestInitListensOnce(t *testing.T) {
	bridge, err := logging.New(logging.Config{})
	require.NoError(t, err)
	w := New(bridge)
	defer w.Close()

	require.NotNil(t, w.Init())
	assert.Nil(t, w.Init())
}

func TestIgnoresOtherSubscriptions(t *testing.T) {
	bridge, err := logging.New(logging.Config{})
	require.NoError(t, err)
	w := New(bridge)
	other := bridge.Subscribe()

	cmd := w.Update(logging.RecordsMsg{Sub: other, Records: []logging.Record{record(logging.Info, "x", "y")}})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, w.RowCount())
}

func TestCloseUnsubscribes(t *testing.T) {
	bridge, err := logging.New(logging.Config{})
	require.NoError(t, err)
	w := New(bridge)
	require.Equal(t, 1, bridge.Subscribers())

	w.Close()

	assert.Equal(t, 0, bridge.Subscribers())
}
