package network

import (
	"net/http"

	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
)

// Feed forwards assembly events from the world's router to the hub
// Register it with World.RegisterHandler; it runs on the tick goroutine and never blocks
type Feed struct {
	hub *Hub
}

// NewFeed creates a feed publishing to hub
func NewFeed(hub *Hub) *Feed {
	return &Feed{hub: hub}
}

// EventTypes returns the events observers receive
func (f *Feed) EventTypes() []event.EventType {
	return feedEvents
}

// HandleEvent publishes the event under its registered wire name
func (f *Feed) HandleEvent(ev event.GameEvent) {
	f.hub.Broadcast(event.GetEventName(ev.Type), ev.Frame, ev.Payload)
}

// Mux returns a serve mux exposing the hub on the feed path
func Mux(hub *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(parameter.FeedPath, hub)
	return mux
}
