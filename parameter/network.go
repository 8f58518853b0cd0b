package parameter

import "time"

// Observer feed
const (
	// FeedProtocolVersion is stamped on every feed message
	FeedProtocolVersion = 1

	// FeedPath is the websocket endpoint served by the sandbox
	FeedPath = "/feed"

	// FeedSendBuffer is the per-client message backlog; messages beyond it are dropped for that client
	FeedSendBuffer = 64

	// FeedWriteTimeout bounds a single websocket write
	FeedWriteTimeout = 2 * time.Second
)
