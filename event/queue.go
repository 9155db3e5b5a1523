package event

import (
	"sync"

	"github.com/lixenwraith/ironrift/parameter"
)

// EventQueue is an MPSC FIFO ring for simulation events
// Thread-Safety:
//   - Push: multiple producers OK, serialized by mutex
//   - Consume: single consumer (simulation goroutine)
//
// Overflow: the ring doubles instead of overwriting, terminal events such as despawn requests are never dropped
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	head   int // Index of the oldest pending event
	count  int // Pending events
	grows  int // Times the ring outgrew its capacity
}

// NewEventQueue creates a queue with the default initial capacity
func NewEventQueue() *EventQueue {
	return NewEventQueueSize(parameter.EventQueueSize)
}

// NewEventQueueSize creates a queue with the given initial capacity, minimum 1
func NewEventQueueSize(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &EventQueue{events: make([]GameEvent, capacity)}
}

// Push appends an event, growing the ring when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.events) {
		eq.grow()
	}
	eq.events[(eq.head+eq.count)%len(eq.events)] = event
	eq.count++
}

// grow doubles the ring and unwraps pending events to the front; caller holds mu
func (eq *EventQueue) grow() {
	next := make([]GameEvent, 2*len(eq.events))
	n := copy(next, eq.events[eq.head:])
	copy(next[n:], eq.events[:eq.head])
	eq.events = next
	eq.head = 0
	eq.grows++
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	result := make([]GameEvent, eq.count)
	end := eq.head + eq.count
	if end <= len(eq.events) {
		copy(result, eq.events[eq.head:end])
		clear(eq.events[eq.head:end])
	} else {
		n := copy(result, eq.events[eq.head:])
		copy(result[n:], eq.events[:end-len(eq.events)])
		clear(eq.events[eq.head:])
		clear(eq.events[:end-len(eq.events)])
	}

	eq.head = 0
	eq.count = 0
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Cap returns the current ring capacity
func (eq *EventQueue) Cap() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Grows returns how many times the ring has doubled
func (eq *EventQueue) Grows() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.grows
}
