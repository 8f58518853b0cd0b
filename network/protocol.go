// Package network publishes assembly progress to websocket observers
package network

import (
	"github.com/lixenwraith/quad-snap/event"
)

// Message types that are not game events
const (
	TypeHello = "hello"
)

// Message is one JSON frame on the feed
type Message struct {
	Ver     int    `json:"ver"`
	Session string `json:"session"`
	Seq     uint64 `json:"seq"`
	Type    string `json:"type"`
	Frame   int64  `json:"frame,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// helloPayload is sent once to every new client
type helloPayload struct {
	Events []string `json:"events"`
}

// feedEvents are the game events forwarded to observers
var feedEvents = []event.EventType{
	event.EventPieceJoined,
	event.EventAssemblyMerged,
	event.EventAssemblyLocked,
	event.EventAllAssembliesComplete,
	event.EventSessionReset,
}

func feedEventNames() []string {
	names := make([]string, 0, len(feedEvents))
	for _, et := range feedEvents {
		names = append(names, event.GetEventName(et))
	}
	return names
}
