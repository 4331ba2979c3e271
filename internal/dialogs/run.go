package dialogs

import (
	"context"
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a model that closes itself.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Done() bool
}

// runner adapts a Dialog to a standalone program centred on the screen.
type runner struct {
	dialog Dialog
	width  int
	height int
}

func (r *runner) Init() tea.Cmd { return r.dialog.Init() }

func (r *runner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		r.width, r.height = size.Width, size.Height
		r.dialog.SetSize(min(size.Width, 72), size.Height)
	}
	cmd := r.dialog.Update(msg)
	if r.dialog.Done() {
		return r, tea.Quit
	}
	return r, cmd
}

func (r *runner) View() string {
	if r.dialog.Done() {
		return ""
	}
	if r.width == 0 || r.height == 0 {
		return r.dialog.View()
	}
	return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, r.dialog.View())
}

// Run shows d on the alternate screen until it closes or ctx ends.
func Run(ctx context.Context, d Dialog, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(&runner{dialog: d}, opts...).Run()
	return err
}

func runPicker(ctx context.Context, kind Kind, history *History, opts Options) ([]string, error) {
	p, err := NewPicker(kind, history, opts)
	if err != nil {
		return nil, err
	}
	if err := Run(ctx, p); err != nil {
		return nil, err
	}
	return p.Result(), nil
}

func first(paths []string, err error) (string, error) {
	if err != nil || len(paths) == 0 {
		return "", err
	}
	return paths[0], nil
}

// ChooseFile asks for an existing file. It returns "" when cancelled.
func ChooseFile(ctx context.Context, history *History, opts Options) (string, error) {
	return first(runPicker(ctx, OpenFile, history, opts))
}

// ChooseFiles asks for existing files, sorted. It returns nil when
// cancelled.
func ChooseFiles(ctx context.Context, history *History, opts Options) ([]string, error) {
	return runPicker(ctx, OpenFiles, history, opts)
}

// ChooseSaveFile asks for a file name to write. It returns "" when
// cancelled.
func ChooseSaveFile(ctx context.Context, history *History, opts Options) (string, error) {
	return first(runPicker(ctx, SaveFile, history, opts))
}

// ChooseDir asks for a directory. It returns "" when cancelled.
func ChooseDir(ctx context.Context, history *History, opts Options) (string, error) {
	return first(runPicker(ctx, OpenDir, history, opts))
}

// ChooseColor asks for a colour starting at initial. Cancelling returns
// initial.
func ChooseColor(ctx context.Context, title string, initial color.RGBA) (color.RGBA, error) {
	c := NewColorPicker(title, initial)
	if err := Run(ctx, c); err != nil {
		return initial, err
	}
	return c.Color(), nil
}

// Confirm asks a Yes/Cancel question and reports whether Yes was chosen.
func Confirm(ctx context.Context, title, text string) (bool, error) {
	m := NewConfirm(title, text)
	if err := Run(ctx, m); err != nil {
		return false, err
	}
	return m.Accepted(), nil
}

// Alert shows a warning until it is dismissed.
func Alert(ctx context.Context, title, text string) error {
	return Run(ctx, NewAlert(title, text))
}

// ShowError shows an error, warning or info box until it is dismissed.
func ShowError(ctx context.Context, title, text, kind string) error {
	m, err := NewError(title, text, kind)
	if err != nil {
		return err
	}
	return Run(ctx, m)
}
