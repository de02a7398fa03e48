// Package farm is the application service in front of the plot lifecycle and
// ledger economy. Each command loads one ledger under a row lock, verifies the
// caller owns it, runs the core operation, saves, commits, then publishes.
package farm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FarmEconomy_Go/internal/compost"
	"github.com/osse101/FarmEconomy_Go/internal/crafting"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/harvest"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
	"github.com/osse101/FarmEconomy_Go/internal/resource"
	"github.com/osse101/FarmEconomy_Go/internal/tool"
)

// Clock is the time source read once per operation
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SeasonReader supplies the current season for planting
type SeasonReader interface {
	GetSeason(ctx context.Context) (*domain.SeasonClock, error)
}

// Service defines the farm command surface
type Service interface {
	InitializePlayer(ctx context.Context, playerID string) (*domain.PlayerLedger, error)
	GetLedger(ctx context.Context, playerID string) (*domain.PlayerLedger, error)

	PlantCrop(ctx context.Context, playerID string, tileIndex int, cropType domain.CropType) (*harvest.PlantResult, error)
	HarvestCrop(ctx context.Context, playerID string, tileIndex int) (*harvest.HarvestResult, error)
	ClearTile(ctx context.Context, playerID string, tileIndex int) error
	LeaveFallow(ctx context.Context, playerID string, tileIndex int) (*harvest.FallowResult, error)

	WaterTile(ctx context.Context, playerID string, plotIndex int) (uint8, error)
	UseFertilizer(ctx context.Context, playerID string, plotIndex int) (uint8, error)
	RefillWateringCan(ctx context.Context, playerID string) (uint64, error)
	BuyTool(ctx context.Context, playerID string, toolType domain.ToolType, quantity uint16) (*tool.PurchaseResult, error)

	GatherResource(ctx context.Context, playerID string, resourceType domain.ResourceType, amount uint16) (*resource.GatherResult, error)
	CraftItem(ctx context.Context, playerID string, itemID domain.ItemID) (*crafting.CraftResult, error)
	ClaimCraftedItem(ctx context.Context, playerID string) (*crafting.ClaimResult, error)
	CollectCompost(ctx context.Context, playerID string) (*compost.Result, error)

	// CheckPatterns previews the synergy patterns at a plot without mutating anything
	CheckPatterns(ctx context.Context, playerID string, plotIndex int) (*harvest.PreviewResult, error)
}

type service struct {
	repo    repository.Ledger
	seasons SeasonReader
	bus     event.Bus
	clock   Clock
	compost *compost.Engine
}

// NewService creates a new farm service. bus may be nil and clock defaults to time.Now.
func NewService(repo repository.Ledger, seasons SeasonReader, bus event.Bus, clock Clock) Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &service{
		repo:    repo,
		seasons: seasons,
		bus:     bus,
		clock:   clock,
		compost: compost.NewEngine(),
	}
}

// mutation is a core operation over a locked ledger. It returns the events to
// publish after commit.
type mutation func(l *domain.PlayerLedger, now int64) ([]event.Event, error)

func (s *service) mutate(ctx context.Context, op, playerID string, fn mutation) error {
	log := logger.FromContext(ctx).With(LogFieldOperation, op, LogFieldPlayerID, playerID)
	now := s.clock.Now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	ledger, err := tx.GetLedgerForUpdate(ctx, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextLockLedger, err)
	}
	if err := verifyOwner(ctx, ledger); err != nil {
		return err
	}

	events, err := fn(ledger, now.Unix())
	if err != nil {
		log.Debug(LogMsgOperationFailed, LogFieldError, err)
		return err
	}

	ledger.UpdatedAt = now
	if err := tx.SaveLedger(ctx, ledger); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSaveLedger, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextCommit, err)
	}

	log.Debug(LogMsgOperationApplied, LogFieldEvents, len(events))
	s.publish(ctx, events)
	return nil
}

func verifyOwner(ctx context.Context, ledger *domain.PlayerLedger) error {
	caller, ok := CallerFromContext(ctx)
	if !ok || caller != ledger.PlayerID {
		return domain.ErrIdentityMismatch
	}
	return nil
}

func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, LogFieldError, err)
		}
	}
}

func checkTile(tile int) error {
	if !domain.ValidIndex(tile) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTileIndex, tile)
	}
	return nil
}

func checkPlot(plot int) error {
	if !domain.ValidIndex(plot) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPlotIndex, plot)
	}
	return nil
}

func (s *service) InitializePlayer(ctx context.Context, playerID string) (*domain.PlayerLedger, error) {
	if _, err := uuid.Parse(playerID); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlayerID, playerID)
	}
	if caller, ok := CallerFromContext(ctx); !ok || caller != playerID {
		return nil, domain.ErrIdentityMismatch
	}

	now := s.clock.Now()
	ledger := domain.NewPlayerLedger(playerID, now)
	if err := s.repo.CreateLedger(ctx, ledger); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPlayerInitialized, LogFieldOperation, OpInitializePlayer, LogFieldPlayerID, playerID)
	s.publish(ctx, []event.Event{NewPlayerInitializedEvent(playerID, now.Unix())})
	return ledger, nil
}

func (s *service) GetLedger(ctx context.Context, playerID string) (*domain.PlayerLedger, error) {
	ledger, err := s.repo.GetLedger(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := verifyOwner(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (s *service) PlantCrop(ctx context.Context, playerID string, tileIndex int, cropType domain.CropType) (*harvest.PlantResult, error) {
	if err := checkTile(tileIndex); err != nil {
		return nil, err
	}
	if !cropType.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidCropType, cropType)
	}

	clock, err := s.seasons.GetSeason(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSeason, err)
	}

	var res harvest.PlantResult
	err = s.mutate(ctx, OpPlantCrop, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = harvest.Plant(l, tileIndex, cropType, clock.CurrentSeason, now); err != nil {
			return nil, err
		}
		return []event.Event{NewCropPlantedEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) HarvestCrop(ctx context.Context, playerID string, tileIndex int) (*harvest.HarvestResult, error) {
	if err := checkTile(tileIndex); err != nil {
		return nil, err
	}

	var res harvest.HarvestResult
	err := s.mutate(ctx, OpHarvestCrop, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = harvest.Harvest(l, tileIndex, now); err != nil {
			return nil, err
		}
		return NewHarvestEvents(playerID, res, now), nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) ClearTile(ctx context.Context, playerID string, tileIndex int) error {
	if err := checkTile(tileIndex); err != nil {
		return err
	}

	return s.mutate(ctx, OpClearTile, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		if err := harvest.Clear(l, tileIndex, now); err != nil {
			return nil, err
		}
		return []event.Event{NewTileClearedEvent(playerID, tileIndex, now)}, nil
	})
}

func (s *service) LeaveFallow(ctx context.Context, playerID string, tileIndex int) (*harvest.FallowResult, error) {
	if err := checkTile(tileIndex); err != nil {
		return nil, err
	}

	var res harvest.FallowResult
	err := s.mutate(ctx, OpLeaveFallow, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = harvest.Fallow(l, tileIndex, now); err != nil {
			return nil, err
		}
		if res.FertilityGained == 0 {
			return nil, nil
		}
		return []event.Event{NewFallowRestoredEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) WaterTile(ctx context.Context, playerID string, plotIndex int) (uint8, error) {
	if err := checkPlot(plotIndex); err != nil {
		return 0, err
	}

	var level uint8
	err := s.mutate(ctx, OpWaterTile, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		harvest.ApplyWaterDecay(l, now)
		var err error
		if level, err = tool.Water(l, plotIndex, now); err != nil {
			return nil, err
		}
		return []event.Event{NewWaterAppliedEvent(playerID, plotIndex, level, now)}, nil
	})
	return level, err
}

func (s *service) UseFertilizer(ctx context.Context, playerID string, plotIndex int) (uint8, error) {
	if err := checkPlot(plotIndex); err != nil {
		return 0, err
	}

	var fertility uint8
	err := s.mutate(ctx, OpUseFertilizer, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if fertility, err = tool.Fertilize(l, plotIndex); err != nil {
			return nil, err
		}
		return []event.Event{NewFertilizerAppliedEvent(playerID, plotIndex, fertility, now)}, nil
	})
	return fertility, err
}

func (s *service) RefillWateringCan(ctx context.Context, playerID string) (uint64, error) {
	var spent uint64
	err := s.mutate(ctx, OpRefillWateringCan, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if spent, err = tool.Refill(l); err != nil {
			return nil, err
		}
		return []event.Event{NewCanRefilledEvent(playerID, spent, now)}, nil
	})
	return spent, err
}

func (s *service) BuyTool(ctx context.Context, playerID string, toolType domain.ToolType, quantity uint16) (*tool.PurchaseResult, error) {
	if !toolType.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidToolType, toolType)
	}
	if quantity == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var res tool.PurchaseResult
	err := s.mutate(ctx, OpBuyTool, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = tool.Buy(l, toolType, quantity); err != nil {
			return nil, err
		}
		return []event.Event{NewToolPurchasedEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) GatherResource(ctx context.Context, playerID string, resourceType domain.ResourceType, amount uint16) (*resource.GatherResult, error) {
	if !resourceType.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidResourceType, resourceType)
	}
	info, err := resource.Lookup(resourceType)
	if err != nil {
		return nil, err
	}
	if amount == 0 || amount > info.MaxPerAction {
		return nil, fmt.Errorf("%w: %d %s (max %d)", domain.ErrGatherAmountExceeded, amount, info.Name, info.MaxPerAction)
	}

	var res resource.GatherResult
	err = s.mutate(ctx, OpGatherResource, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = resource.Gather(l, resourceType, amount, now); err != nil {
			return nil, err
		}
		return []event.Event{NewResourceGatheredEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) CraftItem(ctx context.Context, playerID string, itemID domain.ItemID) (*crafting.CraftResult, error) {
	if !itemID.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidItemID, itemID)
	}

	var res crafting.CraftResult
	err := s.mutate(ctx, OpCraftItem, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = crafting.Craft(l, itemID, now); err != nil {
			return nil, err
		}
		return []event.Event{NewItemCraftedEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) ClaimCraftedItem(ctx context.Context, playerID string) (*crafting.ClaimResult, error) {
	var res crafting.ClaimResult
	err := s.mutate(ctx, OpClaimCraftedItem, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = crafting.Claim(l, now); err != nil {
			return nil, err
		}
		return []event.Event{NewCraftingCompletedEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) CollectCompost(ctx context.Context, playerID string) (*compost.Result, error) {
	var res compost.Result
	err := s.mutate(ctx, OpCollectCompost, playerID, func(l *domain.PlayerLedger, now int64) ([]event.Event, error) {
		var err error
		if res, err = s.compost.Collect(l, now); err != nil {
			return nil, err
		}
		if res.DaysElapsed == 0 {
			return nil, nil
		}
		return []event.Event{NewCompostCollectedEvent(playerID, res, now)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *service) CheckPatterns(ctx context.Context, playerID string, plotIndex int) (*harvest.PreviewResult, error) {
	if err := checkPlot(plotIndex); err != nil {
		return nil, err
	}

	ledger, err := s.GetLedger(ctx, playerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().Unix()
	res, err := harvest.Preview(ledger, plotIndex, now)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgOperationApplied, LogFieldOperation, OpCheckPatterns,
		LogFieldPlayerID, playerID, LogFieldEvents, 1)

	s.publish(ctx, []event.Event{NewPatternsPreviewEvent(playerID, res, now)})
	return &res, nil
}
