package dialogs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/ui/components"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Options configure a file dialog.
type Options struct {
	Title string
	// Dir is the starting directory; empty means the working directory.
	Dir string
	// Filter is a ";;" separated list such as "Images (*.png *.jpg)".
	Filter string
	// Native browses the file system. Otherwise the dialog is a path prompt.
	Native bool
	// UseLastPath starts in the directory remembered for the dialog kind.
	UseLastPath bool
}

// PickedMsg reports a closed file dialog. Paths is empty when cancelled.
type PickedMsg struct {
	ID    int
	Kind  Kind
	Paths []string
}

type pickerKeyMap struct {
	Cancel     key.Binding
	Accept     key.Binding
	NextFilter key.Binding
	Switch     key.Binding
	Submit     key.Binding
}

var pickerKeys = pickerKeyMap{
	Cancel:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	Accept:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "accept")),
	NextFilter: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "filter")),
	Switch:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
}

// Picker is a file dialog model.
type Picker struct {
	id       int
	kind     Kind
	title    string
	history  *History
	native   bool
	browser  filepicker.Model
	input    textinput.Model
	onInput  bool
	filters  []Filter
	filter   int
	selected map[string]bool
	problem  string
	done     bool
	result   []string
	width    int
	height   int
}

// NewPicker creates a file dialog of kind. The starting directory must
// exist.
func NewPicker(kind Kind, history *History, opts Options) (*Picker, error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, uierrors.NewValueError("kind", "unknown dialog kind %d", int(kind))
	}
	dir := history.Start(kind, opts.Dir, opts.UseLastPath)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, uierrors.NewRuntimeError("dialogs.NewPicker", err.Error())
		}
		dir = wd
	}
	dir = filepath.FromSlash(dir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, uierrors.NewValueError("directory", "invalid directory path %q", dir)
	}

	filterSpec := opts.Filter
	if filterSpec == "" {
		filterSpec = DefaultFilter
	}
	title := opts.Title
	if title == "" {
		title = kind.DefaultTitle()
	}

	p := &Picker{
		id:       nextID(),
		kind:     kind,
		title:    title,
		history:  history,
		native:   opts.Native,
		filters:  ParseFilter(filterSpec),
		selected: make(map[string]bool),
	}

	p.browser = filepicker.New()
	p.browser.CurrentDirectory = dir
	p.browser.FileAllowed = kind != OpenDir
	p.browser.DirAllowed = false
	p.browser.AllowedTypes = p.activeFilter().Suffixes()

	p.input = textinput.New()
	p.input.Prompt = "> "
	p.input.Focus()
	switch {
	case !p.native:
		p.input.SetValue(filepath.ToSlash(dir) + "/")
		p.input.CursorEnd()
		p.onInput = true
	case kind == SaveFile:
		p.input.Placeholder = "file name"
		p.onInput = true
	}
	return p, nil
}

// ID identifies the dialog in its messages.
func (p *Picker) ID() int { return p.id }

// Kind returns the dialog kind.
func (p *Picker) Kind() Kind { return p.kind }

// Title returns the dialog title.
func (p *Picker) Title() string { return p.title }

// Dir returns the directory being browsed.
func (p *Picker) Dir() string { return p.browser.CurrentDirectory }

// Filters returns the parsed filters.
func (p *Picker) Filters() []Filter { return p.filters }

func (p *Picker) activeFilter() Filter { return p.filters[p.filter] }

// Done reports whether the dialog has closed.
func (p *Picker) Done() bool { return p.done }

// Result returns the chosen paths with forward slashes. It is empty while
// open and after a cancel.
func (p *Picker) Result() []string { return p.result }

// Selected returns the files marked so far in an open files dialog.
func (p *Picker) Selected() []string {
	out := make([]string, 0, len(p.selected))
	for path := range p.selected {
		out = append(out, filepath.ToSlash(path))
	}
	sort.Strings(out)
	return out
}

// Problem returns the reason the last submission was refused.
func (p *Picker) Problem() string { return p.problem }

// SetValue replaces the text of the path prompt or file name field.
func (p *Picker) SetValue(value string) {
	p.input.SetValue(value)
	p.input.CursorEnd()
}

// Value returns the text of the path prompt or file name field.
func (p *Picker) Value() string { return p.input.Value() }

// Init reads the starting directory.
func (p *Picker) Init() tea.Cmd {
	if !p.native {
		return textinput.Blink
	}
	return p.browser.Init()
}

func (p *Picker) finish(paths []string) tea.Cmd {
	result := make([]string, 0, len(paths))
	for _, path := range paths {
		result = append(result, filepath.ToSlash(path))
	}
	if p.kind == OpenFiles {
		sort.Strings(result)
	}
	if len(result) > 0 {
		p.history.Remember(p.kind, result[0])
	}
	p.done = true
	p.result = result
	msg := PickedMsg{ID: p.id, Kind: p.kind, Paths: result}
	return func() tea.Msg { return msg }
}

// Cancel closes the dialog with an empty result.
func (p *Picker) Cancel() tea.Cmd { return p.finish(nil) }

// Update drives the dialog. Closing returns a command delivering PickedMsg.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if p.done {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, pickerKeys.Cancel):
			return p.Cancel()
		case key.Matches(msg, pickerKeys.NextFilter):
			p.filter = (p.filter + 1) % len(p.filters)
			p.browser.AllowedTypes = p.activeFilter().Suffixes()
			if p.native {
				return p.browser.Init()
			}
			return nil
		}
		if !p.native {
			return p.updatePrompt(msg)
		}
		return p.updateBrowserKey(msg)
	}
	if !p.native {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	p.browser, cmd = p.browser.Update(msg)
	return cmd
}

func (p *Picker) updateBrowserKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case p.kind == SaveFile && key.Matches(msg, pickerKeys.Switch):
		p.onInput = !p.onInput
		return nil
	case p.kind == SaveFile && p.onInput:
		if key.Matches(msg, pickerKeys.Submit) {
			name := strings.TrimSpace(p.input.Value())
			if name == "" {
				p.problem = "no file name given"
				return nil
			}
			return p.submitSave(filepath.Join(p.browser.CurrentDirectory, name))
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	case key.Matches(msg, pickerKeys.Accept):
		switch p.kind {
		case OpenDir:
			return p.finish([]string{p.browser.CurrentDirectory})
		case OpenFiles:
			return p.finish(p.Selected())
		}
	case p.kind == OpenDir && msg.String() == ".":
		return p.finish([]string{p.browser.CurrentDirectory})
	}

	var cmd tea.Cmd
	p.browser, cmd = p.browser.Update(msg)
	ok, path := p.browser.DidSelectFile(msg)
	if !ok {
		return cmd
	}
	switch p.kind {
	case OpenFile:
		return p.finish([]string{path})
	case OpenFiles:
		if p.selected[path] {
			delete(p.selected, path)
		} else {
			p.selected[path] = true
		}
	case SaveFile:
		p.SetValue(filepath.Base(path))
		p.onInput = true
	}
	return cmd
}

func (p *Picker) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, pickerKeys.Submit) {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	value := strings.TrimSpace(p.input.Value())
	if value == "" {
		p.problem = "no path given"
		return nil
	}
	switch p.kind {
	case OpenFile:
		path := filepath.FromSlash(value)
		if err := p.checkFile(path); err != "" {
			p.problem = err
			return nil
		}
		return p.finish([]string{path})
	case OpenFiles:
		var paths []string
		for _, part := range filepath.SplitList(value) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			path := filepath.FromSlash(part)
			if err := p.checkFile(path); err != "" {
				p.problem = err
				return nil
			}
			paths = append(paths, path)
		}
		return p.finish(paths)
	case SaveFile:
		return p.submitSave(filepath.FromSlash(value))
	default:
		path := filepath.Clean(filepath.FromSlash(value))
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			p.problem = "not a directory: " + value
			return nil
		}
		return p.finish([]string{path})
	}
}

func (p *Picker) checkFile(path string) string {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return "no such file: " + filepath.ToSlash(path)
	case info.IsDir():
		return "is a directory: " + filepath.ToSlash(path)
	case !p.activeFilter().Match(path):
		return "does not match " + p.activeFilter().String()
	}
	return ""
}

func (p *Picker) submitSave(path string) tea.Cmd {
	if strings.HasSuffix(filepath.ToSlash(path), "/") || filepath.Base(path) == "." {
		p.problem = "no file name given"
		return nil
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		p.problem = "no such directory: " + filepath.ToSlash(filepath.Dir(path))
		return nil
	}
	return p.finish([]string{path})
}

// SetSize sets the outer size of the dialog.
func (p *Picker) SetSize(width, height int) {
	p.width, p.height = width, height
	p.input.Width = max(width-8, 10)
	// borders, padding, title, directory, field and hint lines
	p.browser, _ = p.browser.Update(tea.WindowSizeMsg{Width: width, Height: max(height-8, 3)})
}

// SizeHint returns the natural size.
func (p *Picker) SizeHint() (int, int) {
	return lipgloss.Size(p.View())
}

// View renders the dialog in a titled box.
func (p *Picker) View() string {
	ctx := components.DefaultContext()
	muted := ctx.Theme.Muted

	var parts []string
	if p.native {
		parts = append(parts, muted.Render(filepath.ToSlash(p.browser.CurrentDirectory)), p.browser.View())
		if p.kind == SaveFile {
			parts = append(parts, p.input.View())
		}
		if p.kind == OpenFiles && len(p.selected) > 0 {
			parts = append(parts, muted.Render(strings.Join(p.Selected(), ", ")))
		}
	} else {
		parts = append(parts, p.input.View())
	}
	if p.kind != OpenDir {
		parts = append(parts, muted.Render(p.activeFilter().String()))
	}
	if p.problem != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Danger.Base).Render(p.problem))
	}
	parts = append(parts, muted.Render(p.hint()))

	box := components.NewContainer(components.NewText(lipgloss.JoinVertical(lipgloss.Left, parts...))).
		WithBorder(components.BorderVariantRounded).
		WithPadding(components.CustomSpacing(1, 0, 1, 0)).
		WithTitle(p.title)
	if p.width > 0 {
		box.SetSize(p.width, 0)
	}
	return box.ViewWithContext(ctx)
}

func (p *Picker) hint() string {
	bindings := []key.Binding{pickerKeys.Submit, pickerKeys.Cancel}
	if p.kind != OpenDir {
		bindings = append(bindings, pickerKeys.NextFilter)
	}
	if p.native {
		switch p.kind {
		case OpenFiles, OpenDir:
			bindings = append(bindings, pickerKeys.Accept)
		case SaveFile:
			bindings = append(bindings, pickerKeys.Switch)
		}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
