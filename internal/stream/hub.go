// Package stream fans published domain events out to live clients over
// server-sent events and websockets.
package stream

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent to stream clients
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	PlayerID  string      `json:"player_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Filter selects which events a client receives. Zero values match everything.
type Filter struct {
	Types    []string
	PlayerID string
}

// Client represents a connected stream client
type Client struct {
	ID           string
	EventChannel chan Event
	types        map[string]bool // nil means all event types
	playerID     string
}

func (c *Client) wants(evt Event) bool {
	if c.types != nil && !c.types[evt.Type] {
		return false
	}
	// player-less events (season changes) reach every client
	return c.playerID == "" || evt.PlayerID == "" || evt.PlayerID == c.playerID
}

// Hub manages client connections and event broadcasting
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the loop down and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(evt) {
					continue
				}
				// Slow clients miss events rather than stalling the hub
				select {
				case client.EventChannel <- evt:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(f Filter) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
		playerID:     f.PlayerID,
	}
	if len(f.Types) > 0 {
		client.types = make(map[string]bool, len(f.Types))
		for _, t := range f.Types {
			client.types[t] = true
		}
	}

	select {
	case <-h.shutdown:
		close(client.EventChannel)
		return client
	default:
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType, playerID string, payload interface{}) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		PlayerID:  playerID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event for transmission
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + evt.ID + "\n"
	msg += "event: " + evt.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
