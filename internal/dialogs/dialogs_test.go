package dialogs

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func slash(parts ...string) string {
	return filepath.ToSlash(filepath.Join(parts...))
}

func TestHistoryRemembersPerKind(t *testing.T) {
	h := NewHistory()

	h.Remember(OpenFile, filepath.Join("data", "in", "a.txt"))
	h.Remember(OpenDir, filepath.Join("data", "out"))

	assert.Equal(t, "data/in", h.LastPath(OpenFile))
	assert.Equal(t, "data/out", h.LastPath(OpenDir))
	assert.Empty(t, h.LastPath(OpenFiles))
	assert.Empty(t, h.LastPath(SaveFile))

	assert.Equal(t, "data/in", h.Start(OpenFile, "elsewhere", true))
	assert.Equal(t, "elsewhere", h.Start(OpenFile, "elsewhere", false))
	assert.Equal(t, "elsewhere", h.Start(OpenFiles, "elsewhere", true))

	h.Reset()
	assert.Empty(t, h.LastPath(OpenFile))
}

func TestNilHistoryIsEmpty(t *testing.T) {
	var h *History
	h.Remember(OpenFile, "a/b.txt")

	assert.Empty(t, h.LastPath(OpenFile))
	assert.Equal(t, "d", h.Start(OpenFile, "d", true))
}

func TestParseFilter(t *testing.T) {
	filters := ParseFilter(DefaultFilter)

	require.Len(t, filters, 2)
	assert.Equal(t, "All Files", filters[0].Name)
	assert.True(t, filters[0].MatchAll())
	assert.Nil(t, filters[0].Suffixes())
	assert.Equal(t, "Text Files", filters[1].Name)
	assert.Equal(t, []string{".txt"}, filters[1].Suffixes())
	assert.True(t, filters[1].Match("notes/a.txt"))
	assert.False(t, filters[1].Match("a.png"))

	images := ParseFilter("Images (*.png *.jpg)")
	require.Len(t, images, 1)
	assert.Equal(t, []string{"*.png", "*.jpg"}, images[0].Patterns)
	assert.True(t, images[0].Match("x.jpg"))

	assert.True(t, ParseFilter("")[0].MatchAll())
}

func TestNewPickerRejectsMissingDirectory(t *testing.T) {
	_, err := NewPicker(OpenFile, NewHistory(), Options{Dir: filepath.Join(t.TempDir(), "missing")})

	assert.ErrorIs(t, err, uierrors.ErrValue)
}

func TestNewPickerDefaults(t *testing.T) {
	p, err := NewPicker(SaveFile, nil, Options{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "Save File...", p.Title())
	assert.Len(t, p.Filters(), 2)
	assert.False(t, p.Done())
	assert.Empty(t, p.Result())
}

func TestPromptOpenFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt")
	h := NewHistory()
	p, err := NewPicker(OpenFile, h, Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir)+"/", p.Value())

	p.SetValue(slash(dir, "a.txt"))
	cmd := p.Update(enter)

	require.True(t, p.Done())
	assert.Equal(t, []string{slash(dir, "a.txt")}, p.Result())
	require.NotNil(t, cmd)
	msg, ok := cmd().(PickedMsg)
	require.True(t, ok)
	assert.Equal(t, p.ID(), msg.ID)
	assert.Equal(t, OpenFile, msg.Kind)
	assert.Equal(t, p.Result(), msg.Paths)
	assert.Equal(t, filepath.ToSlash(dir), h.LastPath(OpenFile))
}

func TestPromptRefusesMissingFile(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPicker(OpenFile, nil, Options{Dir: dir})
	require.NoError(t, err)

	p.SetValue(slash(dir, "nope.txt"))
	cmd := p.Update(enter)

	assert.Nil(t, cmd)
	assert.False(t, p.Done())
	assert.Contains(t, p.Problem(), "no such file")
}

func TestPromptAppliesActiveFilter(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.png")
	p, err := NewPicker(OpenFile, nil, Options{Dir: dir, Filter: "Images (*.png);;All (*)"})
	require.NoError(t, err)

	p.SetValue(slash(dir, "a.txt"))
	p.Update(enter)
	assert.False(t, p.Done())
	assert.Contains(t, p.Problem(), "Images")

	p.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	p.Update(enter)
	assert.True(t, p.Done())
}

func TestCancelYieldsEmptyResult(t *testing.T) {
	h := NewHistory()
	p, err := NewPicker(OpenFile, h, Options{Dir: t.TempDir()})
	require.NoError(t, err)

	cmd := p.Update(esc)

	require.True(t, p.Done())
	assert.Empty(t, p.Result())
	msg := cmd().(PickedMsg)
	assert.Empty(t, msg.Paths)
	assert.Empty(t, h.LastPath(OpenFile))
	assert.Nil(t, p.Update(enter))
}

func TestPromptOpenFilesSortsResult(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt")
	h := NewHistory()
	p, err := NewPicker(OpenFiles, h, Options{Dir: dir})
	require.NoError(t, err)

	p.SetValue(filepath.Join(dir, "b.txt") + string(os.PathListSeparator) + filepath.Join(dir, "a.txt"))
	p.Update(enter)

	require.True(t, p.Done())
	assert.Equal(t, []string{slash(dir, "a.txt"), slash(dir, "b.txt")}, p.Result())
	assert.Equal(t, filepath.ToSlash(dir), h.LastPath(OpenFiles))
	assert.Empty(t, h.LastPath(OpenFile))
}

func TestPromptSaveFile(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPicker(SaveFile, nil, Options{Dir: dir})
	require.NoError(t, err)

	p.SetValue(slash(dir, "missing", "out.txt"))
	p.Update(enter)
	assert.False(t, p.Done())
	assert.Contains(t, p.Problem(), "no such directory")

	p.SetValue(slash(dir, "out.txt"))
	p.Update(enter)
	require.True(t, p.Done())
	assert.Equal(t, []string{slash(dir, "out.txt")}, p.Result())
}

func TestPromptOpenDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, dir, "file.txt")
	h := NewHistory()
	p, err := NewPicker(OpenDir, h, Options{Dir: dir})
	require.NoError(t, err)

	p.SetValue(slash(dir, "file.txt"))
	p.Update(enter)
	assert.False(t, p.Done())

	p.SetValue(filepath.ToSlash(sub) + "/")
	p.Update(enter)
	require.True(t, p.Done())
	assert.Equal(t, []string{filepath.ToSlash(sub)}, p.Result())
	assert.Equal(t, filepath.ToSlash(sub), h.LastPath(OpenDir))
}

func TestUseLastPathStartsInRememberedDirectory(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	touch(t, first, "a.txt")
	h := NewHistory()
	p, err := NewPicker(OpenFile, h, Options{Dir: first})
	require.NoError(t, err)
	p.SetValue(slash(first, "a.txt"))
	p.Update(enter)

	again, err := NewPicker(OpenFile, h, Options{Dir: second, UseLastPath: true})
	require.NoError(t, err)
	assert.Equal(t, first, again.Dir())

	other, err := NewPicker(OpenFiles, h, Options{Dir: second, UseLastPath: true})
	require.NoError(t, err)
	assert.Equal(t, second, other.Dir())
}

func TestBrowserOpenFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt")
	p, err := NewPicker(OpenFile, nil, Options{Dir: dir, Native: true})
	require.NoError(t, err)

	p.Update(p.Init()())
	cmd := p.Update(enter)

	require.True(t, p.Done())
	require.NotNil(t, cmd)
	assert.Equal(t, []string{slash(dir, "a.txt")}, p.Result())
}

func TestBrowserOpenDirAcceptsCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPicker(OpenDir, nil, Options{Dir: dir, Native: true})
	require.NoError(t, err)
	p.Update(p.Init()())

	p.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.True(t, p.Done())
	assert.Equal(t, []string{filepath.ToSlash(dir)}, p.Result())
}

func TestBrowserSaveFileUsesNameField(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPicker(SaveFile, nil, Options{Dir: dir, Native: true})
	require.NoError(t, err)
	p.Update(p.Init()())

	p.Update(enter)
	assert.False(t, p.Done())
	assert.Equal(t, "no file name given", p.Problem())

	p.Update(runes("report.txt"))
	p.Update(enter)

	require.True(t, p.Done())
	assert.Equal(t, []string{slash(dir, "report.txt")}, p.Result())
}

func TestPickerView(t *testing.T) {
	p, err := NewPicker(OpenFile, nil, Options{Dir: t.TempDir(), Title: "Pick"})
	require.NoError(t, err)
	p.SetSize(60, 20)

	out := p.View()

	assert.Contains(t, out, "Pick")
	assert.Contains(t, out, "All Files (*)")
	assert.Contains(t, out, "esc cancel")
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, c)

	c, err = ParseColor([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 4}, c)

	for _, bad := range [][]int{{1, 2}, {1, 2, 3, 4, 5}, {0, 256, 0}, {-1, 0, 0}} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, uierrors.ErrValue, "%v", bad)
	}

	_, err = ParseColor([]int{1, 2})
	assert.Contains(t, err.Error(), "3 or 4 elements")
	_, err = ParseColor([]int{300, 2, 3, 4, 5})
	assert.Contains(t, err.Error(), "between 0 and 255")
}

func TestParseColorText(t *testing.T) {
	cases := map[string]color.RGBA{
		"#4d4d4d":      DefaultColor,
		"#ff000080":    {R: 255, A: 128},
		"10, 20, 30":   {R: 10, G: 20, B: 30, A: 255},
		"1,2,3,4":      {R: 1, G: 2, B: 3, A: 4},
		"  #00FF00   ": {G: 255, A: 255},
	}
	for in, want := range cases {
		got, err := ParseColorText(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"#12345", "#zzzzzz", "1,2", "a,b,c", ""} {
		_, err := ParseColorText(bad)
		assert.ErrorIs(t, err, uierrors.ErrValue, bad)
	}

	assert.Equal(t, "#4d4d4d", Hex(DefaultColor))
	assert.Equal(t, "#ff000080", Hex(color.RGBA{R: 255, A: 128}))
}

func TestColorPicker(t *testing.T) {
	c := NewColorPicker("", DefaultColor)
	assert.Contains(t, c.View(), "Select Color")

	c.SetValue("12, 34")
	assert.Nil(t, c.Update(enter))
	assert.False(t, c.Done())
	assert.NotEmpty(t, c.Problem())

	c.SetValue("#102030")
	cmd := c.Update(enter)
	require.True(t, c.Done())
	assert.Equal(t, color.RGBA{R: 16, G: 32, B: 48, A: 255}, c.Color())
	assert.Equal(t, ColorMsg{ID: c.ID(), Color: c.Color()}, cmd())
}

func TestColorPickerCancelReturnsInitial(t *testing.T) {
	initial := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c := NewColorPicker("Tint", initial)
	c.SetValue("#ffffff")

	c.Update(esc)

	require.True(t, c.Done())
	assert.Equal(t, initial, c.Color())
}

func TestConfirm(t *testing.T) {
	m := NewConfirm("Quit", "Really quit?")
	assert.Equal(t, []string{Yes, Cancel}, m.Buttons())

	cmd := m.Update(enter)

	require.True(t, m.Done())
	assert.True(t, m.Accepted())
	assert.Equal(t, AnsweredMsg{ID: m.ID(), Accepted: true}, cmd())
}

func TestConfirmCancelButton(t *testing.T) {
	m := NewConfirm("Quit", "Really quit?")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Active())
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Active())
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(enter)

	require.True(t, m.Done())
	assert.False(t, m.Accepted())
}

func TestConfirmShortcutsAndEscape(t *testing.T) {
	yes := NewConfirm("t", "m")
	yes.Update(runes("y"))
	assert.True(t, yes.Accepted())

	no := NewConfirm("t", "m")
	no.Update(runes("n"))
	assert.True(t, no.Done())
	assert.False(t, no.Accepted())

	escaped := NewConfirm("t", "m")
	escaped.Update(esc)
	assert.True(t, escaped.Done())
	assert.False(t, escaped.Accepted())
}

func TestAlertHasSingleOkButton(t *testing.T) {
	m := NewAlert("Careful", "Disk almost full")
	assert.Equal(t, []string{Ok}, m.Buttons())

	m.Update(runes("y"))
	assert.False(t, m.Done())

	out := m.View()
	assert.Contains(t, out, "Careful")
	assert.Contains(t, out, "Disk almost full")
	assert.Contains(t, out, "[ Ok ]")

	m.Update(enter)
	assert.True(t, m.Done())
}

func TestNewError(t *testing.T) {
	m, err := NewError("Oops", "broken", "Warning")
	require.NoError(t, err)
	assert.Equal(t, "broken", m.Text())

	m, err = NewError("Oops", "broken", "")
	require.NoError(t, err)
	assert.True(t, strings.Contains(m.View(), "✖ broken"))

	_, err = NewError("Oops", "broken", "Fatal")
	assert.ErrorIs(t, err, uierrors.ErrValue)
}
