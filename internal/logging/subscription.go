package logging

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrClosed is returned by Next once a subscription is closed and empty.
var ErrClosed = errors.New("logging: subscription closed")

// Subscription is an unbounded queue of records in bridge order. The bridge
// fills it from any goroutine; one consumer drains it.
type Subscription struct {
	bridge *Bridge
	mu     sync.Mutex
	queue  []Record
	ready  chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newSubscription(b *Bridge) *Subscription {
	return &Subscription{
		bridge: b,
		ready:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (s *Subscription) push(r Record) {
	s.mu.Lock()
	s.queue = append(s.queue, r)
	s.mu.Unlock()
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Drain returns the queued records and empties the queue.
func (s *Subscription) Drain() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.queue
	s.queue = nil
	return out
}

// Next blocks until records are queued and returns all of them. It returns
// ErrClosed when the subscription is closed and drained.
func (s *Subscription) Next(ctx context.Context) ([]Record, error) {
	for {
		if records := s.Drain(); len(records) > 0 {
			return records, nil
		}
		select {
		case <-s.ready:
		case <-s.done:
			if records := s.Drain(); len(records) > 0 {
				return records, nil
			}
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close detaches the subscription from its bridge. Queued records stay
// readable.
func (s *Subscription) Close() {
	if s.bridge != nil {
		s.bridge.unsubscribe(s)
	}
	s.shut()
}

func (s *Subscription) shut() {
	s.once.Do(func() { close(s.done) })
}

// Done is closed when the subscription closes.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// RecordsMsg carries a batch of records into the UI loop.
type RecordsMsg struct {
	Sub     *Subscription
	Records []Record
}

// Listen waits for the next batch of sub. Models return Listen again after
// handling a RecordsMsg to keep receiving. A closed subscription ends the
// chain with a nil message.
func Listen(sub *Subscription) tea.Cmd {
	return func() tea.Msg {
		records, err := sub.Next(context.Background())
		if err != nil {
			return nil
		}
		return RecordsMsg{Sub: sub, Records: records}
	}
}
