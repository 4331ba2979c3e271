package widget

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTimerID int64

func nextTimerID() int {
	return int(atomic.AddInt64(&lastTimerID, 1))
}

// TimeoutMsg is delivered to the UI loop when a timer interval elapses.
type TimeoutMsg struct {
	ID  int
	tag int
}

// Timer fires Timeout on the UI loop after an interval, once or repeatedly.
// It follows the bubbles stopwatch pattern: every start bumps a tag so ticks
// from an earlier run are ignored. Timers are not drawn; a Window or the
// Application owns them and routes their messages.
type Timer struct {
	id         int
	tag        int
	interval   time.Duration
	singleShot bool
	active     bool
	pending    bool

	Timeout Notify
}

// NewTimer creates a stopped repeating timer with a zero interval.
func NewTimer() *Timer {
	return &Timer{id: nextTimerID()}
}

// ID returns the identifier carried by the timer's messages.
func (t *Timer) ID() int { return t.id }

// SetInterval sets the interval in milliseconds.
func (t *Timer) SetInterval(ms int) { t.interval = time.Duration(ms) * time.Millisecond }

// Interval returns the interval.
func (t *Timer) Interval() time.Duration { return t.interval }

// SetSingleShot makes the timer fire only once per start.
func (t *Timer) SetSingleShot(single bool) { t.singleShot = single }

// IsSingleShot reports whether the timer fires once per start.
func (t *Timer) IsSingleShot() bool { return t.singleShot }

// IsActive reports whether the timer is running.
func (t *Timer) IsActive() bool { return t.active }

// Start (re)starts the timer. Ticks of a previous run are discarded.
func (t *Timer) Start() tea.Cmd {
	t.Arm()
	return t.tick()
}

// Arm marks the timer running without issuing a tick. Its owner's Init
// issues the first one.
func (t *Timer) Arm() {
	t.active = true
	t.tag++
	t.pending = false
}

// Stop stops the timer.
func (t *Timer) Stop() {
	t.active = false
	t.tag++
	t.pending = false
}

// Init returns the first tick of an armed timer. It returns nil when the
// timer is stopped or a tick of the current run is already in flight.
func (t *Timer) Init() tea.Cmd {
	if !t.active || t.pending {
		return nil
	}
	return t.tick()
}

// Update fires Timeout for this timer's current run and re-arms it unless
// it is single shot.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(TimeoutMsg)
	if !ok || m.ID != t.id || m.tag != t.tag || !t.active {
		return nil
	}
	t.pending = false
	if t.singleShot {
		t.active = false
	}
	t.Timeout.Emit()
	if !t.active {
		return nil
	}
	return t.tick()
}

func (t *Timer) tick() tea.Cmd {
	t.pending = true
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TimeoutMsg{ID: id, tag: tag}
	})
}
