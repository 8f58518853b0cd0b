package network

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/quad-snap/engine"
	"github.com/lixenwraith/quad-snap/event"
	"github.com/lixenwraith/quad-snap/parameter"
)

func feedURL(t *testing.T, baseURL string) string {
	t.Helper()
	parsed, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}
	parsed.Scheme = "ws"
	parsed.Path = parameter.FeedPath
	return parsed.String()
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(Mux(hub))
	t.Cleanup(srv.Close)

	conn, resp, err := websocket.DefaultDialer.Dial(feedURL(t, srv.URL), nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	return conn
}

type rawMessage struct {
	Ver     int             `json:"ver"`
	Session string          `json:"session"`
	Seq     uint64          `json:"seq"`
	Type    string          `json:"type"`
	Frame   int64           `json:"frame"`
	Payload json.RawMessage `json:"payload"`
}

func readMessage(t *testing.T, conn *websocket.Conn) rawMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}
	var msg rawMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	return msg
}

func TestFeedForwardsEvents(t *testing.T) {
	hub := NewHub(HubConfig{})
	t.Cleanup(hub.Close)
	conn := dial(t, hub)

	hello := readMessage(t, conn)
	if hello.Type != TypeHello || hello.Session != hub.Session() || hello.Ver != parameter.FeedProtocolVersion {
		t.Fatalf("Unexpected hello %+v", hello)
	}
	var hp helloPayload
	if err := json.Unmarshal(hello.Payload, &hp); err != nil || len(hp.Events) != len(feedEvents) {
		t.Fatalf("Unexpected hello payload %s", hello.Payload)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("Expected 1 client, got %d", hub.ClientCount())
	}

	w := engine.NewWorld()
	w.RegisterHandler(NewFeed(hub))
	w.PushEvent(event.EventProximityStay, &event.ProximityPayload{})
	w.PushEvent(event.EventPieceJoined, &event.PieceJoinedPayload{Piece: 2, Anchor: 1, Letter: "i", Role: "top", Count: 1})
	w.Step(parameter.PhysicsTickInterval)

	msg := readMessage(t, conn)
	if msg.Type != "piece_joined" {
		t.Fatalf("Expected piece_joined, got %s", msg.Type)
	}
	if msg.Seq <= hello.Seq {
		t.Errorf("Sequence did not advance: %d after %d", msg.Seq, hello.Seq)
	}
	var joined event.PieceJoinedPayload
	if err := json.Unmarshal(msg.Payload, &joined); err != nil {
		t.Fatal(err)
	}
	if joined.Anchor != 1 || joined.Letter != "i" {
		t.Errorf("Unexpected payload %+v", joined)
	}

	w.PushEvent(event.EventAllAssembliesComplete, nil)
	w.Step(parameter.PhysicsTickInterval)
	if msg := readMessage(t, conn); msg.Type != "all_assemblies_complete" || len(msg.Payload) != 0 {
		t.Errorf("Unexpected completion message %+v", msg)
	}
}

func TestHubCloseDisconnects(t *testing.T) {
	hub := NewHub(HubConfig{})
	conn := dial(t, hub)
	readMessage(t, conn)

	hub.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("Expected normal closure, got %v", err)
	}
	if hub.ClientCount() != 0 {
		t.Errorf("Expected no clients, got %d", hub.ClientCount())
	}

	// Closed hubs refuse new observers
	late := dial(t, hub)
	late.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := late.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("Expected going-away closure, got %v", err)
	}
}

func TestBroadcastDropsForSlowClients(t *testing.T) {
	hub := NewHub(HubConfig{SendBuffer: 1})
	c := &client{send: make(chan []byte, 1)}
	if !hub.register(c) {
		t.Fatal("register refused")
	}

	hub.Broadcast("piece_joined", 1, nil)
	hub.Broadcast("piece_joined", 2, nil)

	if hub.Dropped() != 1 {
		t.Errorf("Expected 1 dropped message, got %d", hub.Dropped())
	}
	if len(c.send) != 1 {
		t.Errorf("Expected 1 queued message, got %d", len(c.send))
	}

	hub.Close()
	<-c.send
	if _, ok := <-c.send; ok {
		t.Error("Expected send channel closed")
	}
}

func TestSessionIDsDiffer(t *testing.T) {
	a, b := NewHub(HubConfig{}), NewHub(HubConfig{})
	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("Expected distinct session ids, got %q and %q", a.Session(), b.Session())
	}
}
