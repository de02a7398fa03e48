package stream

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second

	// PongWait is how long a websocket peer may stay silent before it is dropped
	PongWait = 2 * KeepaliveInterval
)

// Stream-only event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes    = "types"
	QueryParamPlayerID = "player_id"
)

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgEventDropped       = "Stream broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgUpgradeFailed      = "Websocket upgrade failed"
	LogMsgSubscribed         = "Stream subscriber registered for event types"
)
