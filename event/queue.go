package event

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/quad-snap/parameter"
)

// EventQueue is a bounded FIFO of game events
// Thread-Safety:
//   - Push: any goroutine (physics step, sandbox input, network)
//   - Consume: single consumer (tick loop), swaps the pending buffer out
//
// Overflow: oldest events dropped when full, counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	spare   []GameEvent
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, 64),
		spare:   make([]GameEvent, 0, 64),
	}
}

// Push appends an event, evicting the oldest when the queue is at capacity
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) >= parameter.EventQueueSize {
		copy(eq.pending, eq.pending[1:])
		eq.pending = eq.pending[:len(eq.pending)-1]
		eq.dropped.Add(1)
	}
	eq.pending = append(eq.pending, event)
}

// Consume returns all pending events in FIFO order
// Events pushed while the caller processes the batch land in the next batch
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) == 0 {
		return nil
	}

	batch := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = make([]GameEvent, 0, cap(batch))
	return batch
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}

// Dropped returns the number of events evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
