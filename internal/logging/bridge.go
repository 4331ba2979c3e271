// Package logging fans leveled records out to files, the console and the
// UI.
//
// A Bridge may be called from any goroutine. Each call is stamped and
// delivered to every sink and subscription under one lock, so all consumers
// see records in the same order. Sinks run on the caller. Subscriptions
// queue records until the UI loop drains them, see Listen.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

const defaultMaxSizeMB = 100

// Config selects the sinks of a bridge.
type Config struct {
	// FilePath appends plain lines to a rotated file when set.
	FilePath string
	// MaxSizeMB rotates the file past this size. Zero means 100.
	MaxSizeMB int
	// Console writes colour coded lines to ConsoleWriter, or stderr.
	Console       bool
	ConsoleWriter io.Writer
	// Structured receives one JSON object per record when set.
	Structured io.Writer
	// StructuredPath appends JSON records to a rotated file when set.
	StructuredPath string
	// Level drops records below it.
	Level Level
	// Sinks are extra sinks called after the built in ones.
	Sinks []Sink
	// OnError is told about sink failures. Failures are otherwise dropped.
	OnError func(error)
	// Clock stamps records. Defaults to time.Now.
	Clock func() time.Time
}

// Bridge is the single serialization point of every log call.
type Bridge struct {
	mu      sync.Mutex
	level   Level
	clock   func() time.Time
	onError func(error)
	sinks   []Sink
	subs    []*Subscription
	closed  bool
}

// New creates a bridge. A file sink opens its file on the first record.
func New(cfg Config) (*Bridge, error) {
	if cfg.MaxSizeMB < 0 {
		return nil, uierrors.NewValueError("max_size_mb", "must be non-negative, got %d", cfg.MaxSizeMB)
	}
	b := &Bridge{
		level:   cfg.Level,
		clock:   cfg.Clock,
		onError: cfg.OnError,
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	size := cfg.MaxSizeMB
	if size == 0 {
		size = defaultMaxSizeMB
	}
	if cfg.FilePath != "" {
		b.sinks = append(b.sinks, newFileSink(cfg.FilePath, size))
	}
	if cfg.Console {
		out := cfg.ConsoleWriter
		if out == nil {
			out = os.Stderr
		}
		b.sinks = append(b.sinks, newConsoleSink(out))
	}
	if cfg.Structured != nil {
		b.sinks = append(b.sinks, newStructuredSink(cfg.Structured, nil))
	}
	if cfg.StructuredPath != "" {
		out := rotated(cfg.StructuredPath, size)
		b.sinks = append(b.sinks, newStructuredSink(out, out))
	}
	b.sinks = append(b.sinks, cfg.Sinks...)
	return b, nil
}

// Log formats message with fmt and publishes it.
func (b *Bridge) Log(level Level, source string, message any) {
	if b == nil || level < b.level {
		return
	}
	r := Record{Level: level, Source: source, Message: fmt.Sprint(message)}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	r.Time = b.clock()
	for _, sink := range b.sinks {
		if err := sink.Write(r); err != nil && b.onError != nil {
			b.onError(err)
		}
	}
	for _, sub := range b.subs {
		sub.push(r)
	}
}

// Error logs at Error level.
func (b *Bridge) Error(source string, message any) { b.Log(Error, source, message) }

// Warning logs at Warning level.
func (b *Bridge) Warning(source string, message any) { b.Log(Warning, source, message) }

// Info logs at Info level.
func (b *Bridge) Info(source string, message any) { b.Log(Info, source, message) }

// Debug logs at Debug level.
func (b *Bridge) Debug(source string, message any) { b.Log(Debug, source, message) }

// Subscribe returns a queue that receives every record logged from now on.
// Subscribing to a closed bridge returns a closed subscription.
func (b *Bridge) Subscribe() *Subscription {
	sub := newSubscription(b)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.shut()
		return sub
	}
	b.subs = append(b.subs, sub)
	return sub
}

func (b *Bridge) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of open subscriptions.
func (b *Bridge) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes the file and every subscription. Later calls are dropped.
func (b *Bridge) Close() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, sub := range b.subs {
		sub.shut()
	}
	b.subs = nil
	var errs []error
	for _, sink := range b.sinks {
		if c, ok := sink.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
