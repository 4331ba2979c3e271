// Package app holds the state shared by one running application: its
// logging bridge, dialog history, named data and logger view.
package app

import (
	"sync"

	"github.com/alexisbeaulieu97/uihelper/internal/dialogs"
	"github.com/alexisbeaulieu97/uihelper/internal/logger"
	"github.com/alexisbeaulieu97/uihelper/internal/logging"
	"github.com/alexisbeaulieu97/uihelper/internal/tui/logview"
)

// DefaultName is the context name and default log source.
const DefaultName = "[MAIN]"

// Keys seeded into the data map.
const (
	KeyName = "name"
	KeyLog  = "log"
)

// ContextOptions configure a context.
type ContextOptions struct {
	Name string
	Log  logging.Config
	// Diagnostics receives the toolkit's own messages; nil discards them.
	Diagnostics *logger.Logger
}

// Context is the application context. It is safe for concurrent use.
type Context struct {
	mu      sync.RWMutex
	name    string
	bridge  *logging.Bridge
	dialogs *dialogs.History
	data    map[string]any
	view    *logview.Widget
	diag    *logger.Logger
}

// NewContext creates a context and its logging bridge.
func NewContext(opts ContextOptions) (*Context, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	bridge, err := logging.New(opts.Log)
	if err != nil {
		return nil, err
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = logger.Nop()
	}
	return &Context{
		name:    name,
		bridge:  bridge,
		dialogs: dialogs.NewHistory(),
		data:    map[string]any{KeyName: name, KeyLog: bridge},
		diag:    diag.Component("app"),
	}, nil
}

// Name returns the context name.
func (c *Context) Name() string { return c.name }

// Logger returns the logging bridge.
func (c *Context) Logger() *logging.Bridge { return c.bridge }

// Dialogs returns the file dialog history.
func (c *Context) Dialogs() *dialogs.History { return c.dialogs }

// Diagnostics returns the toolkit logger.
func (c *Context) Diagnostics() *logger.Logger { return c.diag }

// Get returns the value stored under key.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

// Set stores value under key.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

// LoggerView returns the logger view, creating it on first use.
func (c *Context) LoggerView() *logview.Widget {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == nil {
		c.view = logview.New(c.bridge)
	}
	return c.view
}

// SetLoggerView replaces the cached logger view.
func (c *Context) SetLoggerView(view *logview.Widget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = view
}

// Log sends message through the bridge. The source defaults to the context
// name.
func (c *Context) Log(level logging.Level, message any, source ...string) {
	src := c.name
	if len(source) > 0 && source[0] != "" {
		src = source[0]
	}
	c.bridge.Log(level, src, message)
}

// Close releases the logger view subscription and closes the bridge.
func (c *Context) Close() error {
	c.mu.Lock()
	view := c.view
	c.mu.Unlock()
	if view != nil {
		view.Close()
	}
	return c.bridge.Close()
}
