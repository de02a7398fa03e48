package stream

import (
	"context"
	"log/slog"

	"github.com/osse101/FarmEconomy_Go/internal/event"
)

// Subscriber bridges the internal event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new stream subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe forwards every published event type to the hub
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handleEvent)
	slog.Info(LogMsgSubscribed, "types", len(event.AllTypes()))
}

func (s *Subscriber) handleEvent(_ context.Context, evt event.Event) error {
	playerID := playerIDOf(evt.Payload)
	s.hub.Broadcast(string(evt.Type), playerID, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "player_id", playerID)
	return nil
}

type playerScoped struct {
	PlayerID string `json:"player_id"`
}

// playerIDOf reads player_id from a typed or decoded payload
func playerIDOf(payload interface{}) string {
	if payload == nil {
		return ""
	}
	p, err := event.DecodePayload[playerScoped](payload)
	if err != nil {
		return ""
	}
	return p.PlayerID
}
