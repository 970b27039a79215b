package inputfmt

import "sync"

// Unsubscribe removes a listener registered with Events.Subscribe.
// Calling it more than once is a no-op.
type Unsubscribe func()

// Events is a listener bus for a single kind of field event.
// It is generic over the event payload T.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []*listener[T]
}

type listener[T any] struct {
	fn     func(T)
	active bool
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Emit sends an event to every subscribed listener in subscription order.
// A listener unsubscribed while Emit is running is not called afterwards.
func (e *Events[T]) Emit(event T) {
	e.mu.Lock()
	live := e.listeners[:0:0]
	for _, l := range e.listeners {
		if l.active {
			live = append(live, l)
		}
	}
	e.listeners = live
	e.mu.Unlock()

	for _, l := range live {
		if e.isActive(l) {
			l.fn(event)
		}
	}
}

// Subscribe adds a listener and returns the handle that removes it.
func (e *Events[T]) Subscribe(fn func(T)) Unsubscribe {
	l := &listener[T]{fn: fn, active: true}
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		l.active = false
		e.mu.Unlock()
	}
}

// Len returns the number of active listeners.
func (e *Events[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n := 0
	for _, l := range e.listeners {
		if l.active {
			n++
		}
	}
	return n
}

func (e *Events[T]) isActive(l *listener[T]) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return l.active
}
