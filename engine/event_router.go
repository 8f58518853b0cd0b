package engine

import (
	"github.com/lixenwraith/quad-snap/event"
)

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems Update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []event.EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed while dispatching are delivered on the next tick
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// All handlers for an event are called before moving to the next event
func (r *EventRouter) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.Dispatch(ev)
	}
	return len(events)
}

// Dispatch routes a single event to its handlers immediately, bypassing the queue
func (r *EventRouter) Dispatch(ev event.GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
