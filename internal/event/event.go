package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Farm event types
const (
	CropPlanted       Type = "farm.crop_planted"
	CropHarvested     Type = "farm.crop_harvested"
	TileCleared       Type = "farm.tile_cleared"
	FallowRestored    Type = "farm.fallow_restored"
	WaterApplied      Type = "farm.water_applied"
	FertilizerApplied Type = "farm.fertilizer_applied"
	CanRefilled       Type = "farm.can_refilled"
	ToolPurchased     Type = "farm.tool_purchased"
	ResourceGathered  Type = "farm.resource_gathered"
	ItemCrafted       Type = "farm.item_crafted"
	CraftingCompleted Type = "farm.crafting_completed"
	CompostCollected  Type = "farm.compost_collected"
	PatternDetected   Type = "farm.pattern_detected"
	PatternsPreview   Type = "farm.patterns_preview"
)

// Season and player event types
const (
	SeasonDayAdvanced Type = "season.day_advanced"
	SeasonChanged     Type = "season.changed"
	PlayerInitialized Type = "player.initialized"
)

// AllTypes lists every event type the services publish, for subscribers that
// want the whole stream (event log, live stream).
func AllTypes() []Type {
	return []Type{
		CropPlanted,
		CropHarvested,
		TileCleared,
		FallowRestored,
		WaterApplied,
		FertilizerApplied,
		CanRefilled,
		ToolPurchased,
		ResourceGathered,
		ItemCrafted,
		CraftingCompleted,
		CompostCollected,
		PatternDetected,
		PatternsPreview,
		SeasonDayAdvanced,
		SeasonChanged,
		PlayerInitialized,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers handler for every type in AllTypes.
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes() {
		bus.Subscribe(t, handler)
	}
}
