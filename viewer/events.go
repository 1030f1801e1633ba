package viewer

import "sync"

type EventType uint8

// Supported event types.
const (
	CloseRequest EventType = iota
	KeyPress
	Resize
)

func (et EventType) String() string {
	switch et {
	case CloseRequest:
		return "CloseRequest"
	case KeyPress:
		return "KeyPress"
	case Resize:
		return "Resize"
	}
	return "Unknown"
}

// An input or window event.
type Event struct {
	Type EventType

	// Key code for KeyPress events.
	Key rune

	// New dims for Resize events.
	Width, Height uint32
}

// Handles events during the event traversal. Returning true marks the event
// as handled and stops it from reaching the remaining handlers.
type EventHandler interface {
	Handle(ev Event, v *Viewer) bool
}

// Adapter for using plain functions as event handlers.
type EventHandlerFunc func(ev Event, v *Viewer) bool

func (f EventHandlerFunc) Handle(ev Event, v *Viewer) bool {
	return f(ev, v)
}

// A queue of pending events. It is safe to push events from other
// goroutines (e.g. signal handlers).
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// Append an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Remove and return all pending events.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}
