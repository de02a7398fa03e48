package farm

import (
	"github.com/osse101/FarmEconomy_Go/internal/compost"
	"github.com/osse101/FarmEconomy_Go/internal/crafting"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/harvest"
	"github.com/osse101/FarmEconomy_Go/internal/resource"
	"github.com/osse101/FarmEconomy_Go/internal/synergy"
	"github.com/osse101/FarmEconomy_Go/internal/tool"
)

// Typed event payloads. Every payload names the owning player.

type CropPlantedPayloadV1 struct {
	PlayerID      string          `json:"player_id"`
	Plot          int             `json:"plot"`
	Crop          domain.CropType `json:"crop"`
	RotationBonus bool            `json:"rotation_bonus"`
	Timestamp     int64           `json:"timestamp"`
}

type CropHarvestedPayloadV1 struct {
	PlayerID       string               `json:"player_id"`
	Plot           int                  `json:"plot"`
	Crop           domain.CropType      `json:"crop"`
	Yield          uint32               `json:"yield"`
	FertilityAfter uint8                `json:"fertility_after"`
	Patterns       []domain.PatternType `json:"patterns"`
	Timestamp      int64                `json:"timestamp"`
}

type TileClearedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Plot      int    `json:"plot"`
	Timestamp int64  `json:"timestamp"`
}

type FallowRestoredPayloadV1 struct {
	PlayerID        string `json:"player_id"`
	Plot            int    `json:"plot"`
	FertilityGained uint8  `json:"fertility_gained"`
	Fertility       uint8  `json:"fertility"`
	Timestamp       int64  `json:"timestamp"`
}

type WaterAppliedPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	Plot          int    `json:"plot"`
	NewWaterLevel uint8  `json:"new_water_level"`
	Timestamp     int64  `json:"timestamp"`
}

type FertilizerAppliedPayloadV1 struct {
	PlayerID     string `json:"player_id"`
	Plot         int    `json:"plot"`
	NewFertility uint8  `json:"new_fertility"`
	Timestamp    int64  `json:"timestamp"`
}

type CanRefilledPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	PointsSpent uint64 `json:"points_spent"`
	Timestamp   int64  `json:"timestamp"`
}

type ToolPurchasedPayloadV1 struct {
	PlayerID    string          `json:"player_id"`
	ToolType    domain.ToolType `json:"tool_type"`
	Quantity    uint16          `json:"quantity"`
	PointsSpent uint64          `json:"points_spent"`
	Timestamp   int64           `json:"timestamp"`
}

type ResourceGatheredPayloadV1 struct {
	PlayerID     string              `json:"player_id"`
	ResourceType domain.ResourceType `json:"resource_type"`
	Amount       uint16              `json:"amount"`
	NewTotal     uint16              `json:"new_total"`
	Timestamp    int64               `json:"timestamp"`
}

type ItemCraftedPayloadV1 struct {
	PlayerID  string        `json:"player_id"`
	ItemID    domain.ItemID `json:"item_id"`
	Instant   bool          `json:"instant"`
	ReadyAt   int64         `json:"ready_at,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

type CraftingCompletedPayloadV1 struct {
	PlayerID  string        `json:"player_id"`
	ItemID    domain.ItemID `json:"item_id"`
	Quantity  uint16        `json:"quantity"`
	Timestamp int64         `json:"timestamp"`
}

type CompostCollectedPayloadV1 struct {
	PlayerID         string `json:"player_id"`
	FertilizerGained uint16 `json:"fertilizer_gained"`
	DaysElapsed      int64  `json:"days_elapsed"`
	Timestamp        int64  `json:"timestamp"`
}

type PatternDetectedPayloadV1 struct {
	PlayerID          string             `json:"player_id"`
	Plot              int                `json:"plot"`
	Pattern           domain.PatternType `json:"pattern"`
	YieldMultiplierBP uint32             `json:"yield_multiplier_bp"`
	FertilityBonus    uint8              `json:"fertility_bonus"`
	WaterBonus        uint8              `json:"water_bonus"`
	Timestamp         int64              `json:"timestamp"`
}

type PatternsPreviewPayloadV1 struct {
	PlayerID          string `json:"player_id"`
	Plot              int    `json:"plot"`
	PatternCount      int    `json:"pattern_count"`
	TotalMultiplierBP uint32 `json:"total_multiplier_bp"`
	Timestamp         int64  `json:"timestamp"`
}

type PlayerInitializedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t event.Type, payload interface{}) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewCropPlantedEvent creates a farm.crop_planted event
func NewCropPlantedEvent(playerID string, r harvest.PlantResult, ts int64) event.Event {
	return newEvent(event.CropPlanted, CropPlantedPayloadV1{
		PlayerID:      playerID,
		Plot:          r.Plot,
		Crop:          r.Crop,
		RotationBonus: r.RotationBonus,
		Timestamp:     ts,
	})
}

// NewHarvestEvents creates the farm.crop_harvested event followed by one
// farm.pattern_detected per matched pattern, companion last.
func NewHarvestEvents(playerID string, r harvest.HarvestResult, ts int64) []event.Event {
	patterns := r.Patterns
	if patterns == nil {
		patterns = []domain.PatternType{}
	}
	events := []event.Event{newEvent(event.CropHarvested, CropHarvestedPayloadV1{
		PlayerID:       playerID,
		Plot:           r.Plot,
		Crop:           r.Crop,
		Yield:          r.Yield,
		FertilityAfter: r.FertilityAfter,
		Patterns:       patterns,
		Timestamp:      ts,
	})}

	for _, p := range r.Patterns {
		bonus, err := synergy.ForPattern(p)
		if err != nil {
			continue
		}
		events = append(events, NewPatternDetectedEvent(playerID, r.Plot, p, bonus, ts))
	}
	if r.Companion != domain.CropNone {
		if bonus, ok := synergy.Companion(r.Crop, r.Companion); ok {
			events = append(events, NewPatternDetectedEvent(playerID, r.Plot, domain.PatternCompanionPlanting, bonus, ts))
		}
	}
	return events
}

// NewPatternDetectedEvent creates a farm.pattern_detected event
func NewPatternDetectedEvent(playerID string, plot int, p domain.PatternType, bonus synergy.Bonus, ts int64) event.Event {
	return newEvent(event.PatternDetected, PatternDetectedPayloadV1{
		PlayerID:          playerID,
		Plot:              plot,
		Pattern:           p,
		YieldMultiplierBP: bonus.YieldMultiplierBP,
		FertilityBonus:    bonus.FertilityBonus,
		WaterBonus:        bonus.WaterBonus,
		Timestamp:         ts,
	})
}

// NewTileClearedEvent creates a farm.tile_cleared event
func NewTileClearedEvent(playerID string, plot int, ts int64) event.Event {
	return newEvent(event.TileCleared, TileClearedPayloadV1{PlayerID: playerID, Plot: plot, Timestamp: ts})
}

// NewFallowRestoredEvent creates a farm.fallow_restored event
func NewFallowRestoredEvent(playerID string, r harvest.FallowResult, ts int64) event.Event {
	return newEvent(event.FallowRestored, FallowRestoredPayloadV1{
		PlayerID:        playerID,
		Plot:            r.Plot,
		FertilityGained: r.FertilityGained,
		Fertility:       r.Fertility,
		Timestamp:       ts,
	})
}

// NewWaterAppliedEvent creates a farm.water_applied event
func NewWaterAppliedEvent(playerID string, plot int, level uint8, ts int64) event.Event {
	return newEvent(event.WaterApplied, WaterAppliedPayloadV1{
		PlayerID:      playerID,
		Plot:          plot,
		NewWaterLevel: level,
		Timestamp:     ts,
	})
}

// NewFertilizerAppliedEvent creates a farm.fertilizer_applied event
func NewFertilizerAppliedEvent(playerID string, plot int, fertility uint8, ts int64) event.Event {
	return newEvent(event.FertilizerApplied, FertilizerAppliedPayloadV1{
		PlayerID:     playerID,
		Plot:         plot,
		NewFertility: fertility,
		Timestamp:    ts,
	})
}

// NewCanRefilledEvent creates a farm.can_refilled event
func NewCanRefilledEvent(playerID string, spent uint64, ts int64) event.Event {
	return newEvent(event.CanRefilled, CanRefilledPayloadV1{PlayerID: playerID, PointsSpent: spent, Timestamp: ts})
}

// NewToolPurchasedEvent creates a farm.tool_purchased event
func NewToolPurchasedEvent(playerID string, r tool.PurchaseResult, ts int64) event.Event {
	return newEvent(event.ToolPurchased, ToolPurchasedPayloadV1{
		PlayerID:    playerID,
		ToolType:    r.Tool,
		Quantity:    r.Quantity,
		PointsSpent: r.PointsSpent,
		Timestamp:   ts,
	})
}

// NewResourceGatheredEvent creates a farm.resource_gathered event
func NewResourceGatheredEvent(playerID string, r resource.GatherResult, ts int64) event.Event {
	return newEvent(event.ResourceGathered, ResourceGatheredPayloadV1{
		PlayerID:     playerID,
		ResourceType: r.Type,
		Amount:       r.Amount,
		NewTotal:     r.NewTotal,
		Timestamp:    ts,
	})
}

// NewItemCraftedEvent creates a farm.item_crafted event
func NewItemCraftedEvent(playerID string, r crafting.CraftResult, ts int64) event.Event {
	return newEvent(event.ItemCrafted, ItemCraftedPayloadV1{
		PlayerID:  playerID,
		ItemID:    r.Item,
		Instant:   r.Instant,
		ReadyAt:   r.ReadyAt,
		Timestamp: ts,
	})
}

// NewCraftingCompletedEvent creates a farm.crafting_completed event
func NewCraftingCompletedEvent(playerID string, r crafting.ClaimResult, ts int64) event.Event {
	return newEvent(event.CraftingCompleted, CraftingCompletedPayloadV1{
		PlayerID:  playerID,
		ItemID:    r.Item,
		Quantity:  r.Quantity,
		Timestamp: ts,
	})
}

// NewCompostCollectedEvent creates a farm.compost_collected event
func NewCompostCollectedEvent(playerID string, r compost.Result, ts int64) event.Event {
	return newEvent(event.CompostCollected, CompostCollectedPayloadV1{
		PlayerID:         playerID,
		FertilizerGained: r.FertilizerGained,
		DaysElapsed:      r.DaysElapsed,
		Timestamp:        ts,
	})
}

// NewPatternsPreviewEvent creates a farm.patterns_preview event
func NewPatternsPreviewEvent(playerID string, r harvest.PreviewResult, ts int64) event.Event {
	count := len(r.Patterns)
	if r.Companion != domain.CropNone {
		count++
	}
	return newEvent(event.PatternsPreview, PatternsPreviewPayloadV1{
		PlayerID:          playerID,
		Plot:              r.Plot,
		PatternCount:      count,
		TotalMultiplierBP: r.Bonus.YieldMultiplierBP,
		Timestamp:         ts,
	})
}

// NewPlayerInitializedEvent creates a player.initialized event
func NewPlayerInitializedEvent(playerID string, ts int64) event.Event {
	return newEvent(event.PlayerInitialized, PlayerInitializedPayloadV1{PlayerID: playerID, Timestamp: ts})
}
