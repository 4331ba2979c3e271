package app

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uihelper/internal/dialogs"
	"github.com/alexisbeaulieu97/uihelper/internal/ui"
	"github.com/alexisbeaulieu97/uihelper/internal/widget"
	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

var current atomic.Pointer[Application]

// Current returns the context of the running application.
func Current() (*Context, error) {
	a, err := CurrentApplication()
	if err != nil {
		return nil, err
	}
	return a.ctx, nil
}

// CurrentApplication returns the running application.
func CurrentApplication() (*Application, error) {
	a := current.Load()
	if a == nil {
		return nil, uierrors.NewRuntimeError("app.Current", "Application instance not found")
	}
	return a, nil
}

// Option configures an Application.
type Option func(*Application)

// WithStyleSheet applies css to the root widget.
func WithStyleSheet(css string) Option {
	return func(a *Application) { a.css = css }
}

// WithProgramOptions passes options to the bubbletea program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(a *Application) { a.programOpts = append(a.programOpts, opts...) }
}

type initializer interface {
	Init() tea.Cmd
}

type styled interface {
	SetStyleSheet(css string)
}

// RootMsg replaces the root widget, as after a markup reload.
type RootMsg struct {
	Root ui.Renderable
}

// Application runs a widget tree as a bubbletea program. It is the program
// model: messages reach the root, or the open dialog first.
type Application struct {
	ctx         *Context
	root        ui.Renderable
	css         string
	modal       dialogs.Dialog
	timers      []*widget.Timer
	programOpts []tea.ProgramOption
	program     atomic.Pointer[tea.Program]
	width       int
	height      int
}

// New creates an application showing root. A nil ctx gets a default
// context.
func New(ctx *Context, root ui.Renderable, opts ...Option) (*Application, error) {
	if ctx == nil {
		var err error
		if ctx, err = NewContext(ContextOptions{}); err != nil {
			return nil, err
		}
	}
	if root == nil {
		return nil, uierrors.NewValueError("root", "an application needs a root widget")
	}
	a := &Application{ctx: ctx}
	for _, opt := range opts {
		opt(a)
	}
	a.setRoot(root)
	return a, nil
}

func (a *Application) setRoot(root ui.Renderable) {
	a.root = root
	if s, ok := root.(styled); ok && a.css != "" {
		s.SetStyleSheet(a.css)
	}
}

// Context returns the application context.
func (a *Application) Context() *Context { return a.ctx }

// Root returns the root widget.
func (a *Application) Root() ui.Renderable { return a.root }

// Dialog returns the open dialog, or nil.
func (a *Application) Dialog() dialogs.Dialog { return a.modal }

// ShowDialog opens d over the root. Keys and mouse events go to d until it
// closes; its result message is then delivered like any other.
func (a *Application) ShowDialog(d dialogs.Dialog) tea.Cmd {
	a.modal = d
	if a.width > 0 {
		d.SetSize(min(a.width, 72), a.height)
	}
	return d.Init()
}

// AddTimer hands timers that belong to no window to the application. Their
// timeouts are routed here and the returned command starts armed ones.
func (a *Application) AddTimer(timers ...*widget.Timer) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range timers {
		if t == nil {
			continue
		}
		a.timers = append(a.timers, t)
		cmds = append(cmds, t.Init())
	}
	return tea.Batch(cmds...)
}

// Timers returns the timers added with AddTimer.
func (a *Application) Timers() []*widget.Timer { return a.timers }

// Init starts every widget that has pending work, such as timers and
// logger views. Widgets already running return no command, so Init may run
// again after the root changes.
func (a *Application) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range a.timers {
		cmds = append(cmds, t.Init())
	}
	ui.Walk(a.root, func(node ui.Renderable) bool {
		if i, ok := node.(initializer); ok {
			cmds = append(cmds, i.Init())
		}
		return true
	})
	return tea.Batch(cmds...)
}

// Update routes msg to the open dialog or the widget tree.
func (a *Application) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RootMsg:
		if msg.Root == nil {
			return a, nil
		}
		a.setRoot(msg.Root)
		cmds := []tea.Cmd{a.Init()}
		if a.width > 0 {
			_, cmd := a.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if _, window := a.root.(*widget.Window); !window {
			if r, ok := a.root.(ui.Resizable); ok {
				r.SetSize(msg.Width, msg.Height)
			}
		}
		if a.modal != nil {
			a.modal.SetSize(min(msg.Width, 72), msg.Height)
		}
	case tea.KeyMsg, tea.MouseMsg:
		if a.modal != nil {
			cmd := a.modal.Update(msg)
			if a.modal.Done() {
				a.modal = nil
			}
			return a, cmd
		}
		if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	case widget.TimeoutMsg:
		cmds := make([]tea.Cmd, 0, len(a.timers)+1)
		for _, t := range a.timers {
			cmds = append(cmds, t.Update(msg))
		}
		return a, tea.Batch(append(cmds, a.dispatch(msg))...)
	}
	return a, a.dispatch(msg)
}

func (a *Application) dispatch(msg tea.Msg) tea.Cmd {
	if i, ok := a.root.(ui.Interactive); ok {
		return i.Update(msg)
	}
	var cmds []tea.Cmd
	ui.Walk(a.root, func(node ui.Renderable) bool {
		if !ui.Visible(node) {
			return false
		}
		if i, ok := node.(ui.Interactive); ok {
			cmds = append(cmds, i.Update(msg))
		}
		return true
	})
	return tea.Batch(cmds...)
}

// View renders the root, or the open dialog centred on the screen.
func (a *Application) View() string {
	if a.modal == nil {
		return a.root.View()
	}
	if a.width == 0 || a.height == 0 {
		return a.modal.View()
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.modal.View())
}

func (a *Application) activate() error {
	if !current.CompareAndSwap(nil, a) {
		return uierrors.NewRuntimeError("app.Run", "an application is already running")
	}
	return nil
}

func (a *Application) deactivate() {
	current.CompareAndSwap(a, nil)
}

// Run shows the application on the alternate screen until it quits or ctx
// ends. Only one application runs at a time.
func (a *Application) Run(ctx context.Context) error {
	if err := a.activate(); err != nil {
		return err
	}
	defer a.deactivate()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion()}, a.programOpts...)
	program := tea.NewProgram(a, opts...)
	a.program.Store(program)
	defer a.program.Store(nil)
	diag := a.ctx.Diagnostics().WithFields(map[string]any{"name": a.ctx.Name()})
	diag.Info("application started")
	_, err := program.Run()
	if err != nil {
		diag.Error(err, "application stopped")
		return err
	}
	diag.Info("application stopped")
	return nil
}

// Send delivers msg to the running program from any goroutine. It does
// nothing when the application is not running.
func (a *Application) Send(msg tea.Msg) {
	if p := a.program.Load(); p != nil {
		p.Send(msg)
	}
}

// Quit asks the running program to exit.
func (a *Application) Quit() {
	if p := a.program.Load(); p != nil {
		p.Quit()
	}
}
