package network

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/parameter"
)

// HubConfig configures a feed hub; zero values take parameter defaults
type HubConfig struct {
	Logger       *log.Logger
	SendBuffer   int
	WriteTimeout time.Duration
}

// client is one connected observer
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans feed messages out to websocket observers
// Slow clients lose messages rather than stalling the simulation
type Hub struct {
	session      string
	logger       *log.Logger
	upgrader     websocket.Upgrader
	sendBuffer   int
	writeTimeout time.Duration

	seq     atomic.Uint64
	dropped atomic.Int64

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates a hub with a fresh session id
func NewHub(cfg HubConfig) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	sendBuffer := cfg.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = parameter.FeedSendBuffer
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = parameter.FeedWriteTimeout
	}

	return &Hub{
		session: uuid.NewString(),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		sendBuffer:   sendBuffer,
		writeTimeout: writeTimeout,
		clients:      make(map[*client]struct{}),
	}
}

// Session returns the id stamped on every message
func (h *Hub) Session() string {
	return h.session
}

// ClientCount returns the number of connected observers
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many per-client messages were discarded on full buffers
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// ServeHTTP upgrades the request and keeps the observer attached until it disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("[feed] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, h.sendBuffer)}
	hello, err := h.encode(TypeHello, 0, helloPayload{Events: feedEventNames()})
	if err != nil {
		h.logger.Printf("[feed] failed to marshal hello: %v", err)
		conn.Close()
		return
	}
	c.send <- hello

	if !h.register(c) {
		message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed")
		conn.WriteMessage(websocket.CloseMessage, message)
		conn.Close()
		return
	}

	core.Go(func() { h.writeLoop(c) })

	// Observers never send anything meaningful; reading detects disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}

// Broadcast queues a message for every observer
func (h *Hub) Broadcast(msgType string, frame int64, payload any) {
	data, err := h.encode(msgType, frame, payload)
	if err != nil {
		h.logger.Printf("[feed] failed to marshal %s: %v", msgType, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// Close disconnects every observer and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) encode(msgType string, frame int64, payload any) ([]byte, error) {
	return json.Marshal(Message{
		Ver:     parameter.FeedProtocolVersion,
		Session: h.session,
		Seq:     h.seq.Add(1),
		Type:    msgType,
		Frame:   frame,
		Payload: payload,
	})
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// writeLoop drains the client's queue; it owns closing the connection
func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Printf("[feed] write failed: %v", err)
			h.unregister(c)
			// drain so unregister's close ends the range
			for range c.send {
			}
			return
		}
	}
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(h.writeTimeout))
}
