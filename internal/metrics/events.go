package metrics

import (
	"context"

	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/season"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.CropPlanted:
		p, err := event.DecodePayload[farm.CropPlantedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CropsPlanted.WithLabelValues(p.Crop.String()).Inc()

	case event.CropHarvested:
		p, err := event.DecodePayload[farm.CropHarvestedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Harvests.WithLabelValues(p.Crop.String()).Inc()
		CoinsEarned.Add(float64(p.Yield))

	case event.PatternDetected:
		p, err := event.DecodePayload[farm.PatternDetectedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		PatternsDetected.WithLabelValues(p.Pattern.String()).Inc()

	case event.ToolPurchased:
		p, err := event.DecodePayload[farm.ToolPurchasedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ToolsPurchased.WithLabelValues(p.ToolType.String()).Add(float64(p.Quantity))
		CoinsSpent.Add(float64(p.PointsSpent))

	case event.CanRefilled:
		p, err := event.DecodePayload[farm.CanRefilledPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		CoinsSpent.Add(float64(p.PointsSpent))

	case event.ResourceGathered:
		p, err := event.DecodePayload[farm.ResourceGatheredPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ResourcesGathered.WithLabelValues(p.ResourceType.String()).Add(float64(p.Amount))

	case event.ItemCrafted:
		p, err := event.DecodePayload[farm.ItemCraftedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		// timed crafts are counted when claimed
		if p.Instant {
			ItemsCrafted.WithLabelValues(p.ItemID.String()).Inc()
		}

	case event.CraftingCompleted:
		p, err := event.DecodePayload[farm.CraftingCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsCrafted.WithLabelValues(p.ItemID.String()).Inc()

	case event.PlayerInitialized:
		PlayersInitialized.Inc()

	case event.SeasonDayAdvanced:
		p, err := event.DecodePayload[season.DayAdvancedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		SeasonDaysPassed.Set(float64(p.DaysPassed))
		SeasonCurrent.Set(float64(p.Season))

	case event.SeasonChanged:
		p, err := event.DecodePayload[season.ChangedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		SeasonDaysPassed.Set(float64(p.DaysPassed))
		SeasonCurrent.Set(float64(p.Season))
	}
	return nil
}
