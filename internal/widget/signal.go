package widget

import "sync"

// Signal fans one value out to every connected slot, in connection order.
type Signal[T any] struct {
	mu    sync.Mutex
	slots []func(T)
}

// Connect registers slot.
func (s *Signal[T]) Connect(slot func(T)) {
	if slot == nil {
		return
	}
	s.mu.Lock()
	s.slots = append(s.slots, slot)
	s.mu.Unlock()
}

// Emit calls every slot with v. Slots may connect further slots.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	slots := make([]func(T), len(s.slots))
	copy(slots, s.slots)
	s.mu.Unlock()
	for _, slot := range slots {
		slot(v)
	}
}

// Count returns the number of connected slots.
func (s *Signal[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// Notify is a signal without a payload.
type Notify struct {
	sig Signal[struct{}]
}

// Connect registers slot.
func (n *Notify) Connect(slot func()) {
	if slot == nil {
		return
	}
	n.sig.Connect(func(struct{}) { slot() })
}

// Emit calls every slot.
func (n *Notify) Emit() {
	n.sig.Emit(struct{}{})
}

// Count returns the number of connected slots.
func (n *Notify) Count() int {
	return n.sig.Count()
}
