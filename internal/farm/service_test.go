package farm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/mocks"
)

const (
	testPlayer = "8b1f0a8e-2f4b-4c51-9b4e-1f0c2d3e4a5b"
	otherID    = "0d6f1c2e-3a4b-4c5d-8e9f-a0b1c2d3e4f5"
	t0         = int64(1_700_000_000)
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type staticSeasons struct {
	clock *domain.SeasonClock
	err   error
}

func (s staticSeasons) GetSeason(ctx context.Context) (*domain.SeasonClock, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := *s.clock
	return &c, nil
}

type fixture struct {
	svc    Service
	repo   *mocks.MockLedgerRepository
	tx     *mocks.MockLedgerTx
	bus    *mocks.MockBus
	ledger *domain.PlayerLedger
	ctx    context.Context
}

func newFixture(t *testing.T, season domain.Season) *fixture {
	t.Helper()
	f := &fixture{
		repo:   mocks.NewMockLedgerRepository(t),
		tx:     mocks.NewMockLedgerTx(t),
		bus:    mocks.NewMockBus(t),
		ledger: domain.NewPlayerLedger(testPlayer, time.Unix(t0, 0)),
		ctx:    WithCaller(context.Background(), testPlayer),
	}
	seasons := staticSeasons{clock: &domain.SeasonClock{CurrentSeason: season}}
	f.svc = NewService(f.repo, seasons, f.bus, fixedClock{now: time.Unix(t0, 0)})
	return f
}

// expectLocked wires BeginTx and the row lock. Rollback always runs from the deferred SafeRollback.
func (f *fixture) expectLocked() {
	f.repo.On("BeginTx", mock.Anything).Return(f.tx, nil).Once()
	f.tx.On("GetLedgerForUpdate", mock.Anything, testPlayer).Return(f.ledger, nil).Once()
	f.tx.On("Rollback", mock.Anything).Return(nil).Maybe()
}

func (f *fixture) expectCommit() {
	f.tx.On("SaveLedger", mock.Anything, f.ledger).Return(nil).Once()
	f.tx.On("Commit", mock.Anything).Return(nil).Once()
}

func (f *fixture) expectPublish(types ...event.Type) *[]event.Event {
	var got []event.Event
	for _, typ := range types {
		typ := typ
		f.bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool { return e.Type == typ })).
			Run(func(args mock.Arguments) { got = append(got, args.Get(1).(event.Event)) }).
			Return(nil).Once()
	}
	return &got
}

func (f *fixture) place(tile int, c domain.CropType, plantedAt int64) {
	f.ledger.Plots[tile].Crop = c
	f.ledger.Plots[tile].PlantedAt = plantedAt
	f.ledger.Plots[tile].PlantedInSeason = domain.SeasonPtr(domain.SeasonSpring)
}

func TestPlantCrop_Success(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()
	f.expectCommit()
	got := f.expectPublish(event.CropPlanted)

	res, err := f.svc.PlantCrop(f.ctx, testPlayer, 12, domain.CropWheat)
	require.NoError(t, err)

	assert.Equal(t, 12, res.Plot)
	assert.Equal(t, domain.CropWheat, res.Crop)
	assert.Equal(t, domain.CropWheat, f.ledger.Plots[12].Crop)
	assert.Equal(t, t0, f.ledger.Plots[12].PlantedAt)
	assert.Equal(t, time.Unix(t0, 0), f.ledger.UpdatedAt)

	require.Len(t, *got, 1)
	payload := (*got)[0].Payload.(CropPlantedPayloadV1)
	assert.Equal(t, testPlayer, payload.PlayerID)
	assert.Equal(t, event.EventSchemaVersion, (*got)[0].Version)
}

func TestPlantCrop_ValidationBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		tile    int
		crop    domain.CropType
		wantErr error
	}{
		{"negative tile", -1, domain.CropWheat, domain.ErrInvalidTileIndex},
		{"tile past grid", domain.TileCount, domain.CropWheat, domain.ErrInvalidTileIndex},
		{"empty crop", 3, domain.CropNone, domain.ErrInvalidCropType},
		{"unknown crop", 3, domain.CropType(6), domain.ErrInvalidCropType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any repository or bus call fails the test
			f := newFixture(t, domain.SeasonSpring)
			_, err := f.svc.PlantCrop(f.ctx, testPlayer, tt.tile, tt.crop)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlantCrop_WrongSeasonRollsBack(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()

	_, err := f.svc.PlantCrop(f.ctx, testPlayer, 0, domain.CropTomato)
	assert.ErrorIs(t, err, domain.ErrInvalidSeasonForCrop)
	f.tx.AssertNotCalled(t, "SaveLedger", mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
	assert.True(t, f.ledger.Plots[0].Empty())
}

func TestPlantCrop_SeasonReadFailure(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.svc = NewService(f.repo, staticSeasons{err: errors.New("db down")}, f.bus, fixedClock{now: time.Unix(t0, 0)})

	_, err := f.svc.PlantCrop(f.ctx, testPlayer, 0, domain.CropWheat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextGetSeason)
}

func TestMutation_IdentityMismatch(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"other caller", WithCaller(context.Background(), otherID)},
		{"no caller", context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.SeasonSpring)
			f.expectLocked()

			_, err := f.svc.PlantCrop(tt.ctx, testPlayer, 0, domain.CropWheat)
			assert.ErrorIs(t, err, domain.ErrIdentityMismatch)
			assert.True(t, f.ledger.Plots[0].Empty())
		})
	}
}

func TestHarvestCrop_PublishesPatternEvents(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	for _, tile := range []int{10, 11, 12} {
		f.place(tile, domain.CropWheat, t0-100)
	}
	f.expectLocked()
	f.expectCommit()
	got := f.expectPublish(event.CropHarvested, event.PatternDetected)

	res, err := f.svc.HarvestCrop(f.ctx, testPlayer, 11)
	require.NoError(t, err)

	assert.Equal(t, []domain.PatternType{domain.PatternMonocultureRow}, res.Patterns)
	assert.True(t, f.ledger.Plots[11].Empty())
	assert.Equal(t, domain.CropWheat, f.ledger.Plots[11].LastCrop)
	assert.Equal(t, uint64(res.Yield), f.ledger.Coins)

	require.Len(t, *got, 2)
	harvested := (*got)[0].Payload.(CropHarvestedPayloadV1)
	assert.Equal(t, res.Yield, harvested.Yield)
	detected := (*got)[1].Payload.(PatternDetectedPayloadV1)
	assert.Equal(t, domain.PatternMonocultureRow, detected.Pattern)
	assert.Equal(t, uint32(11500), detected.YieldMultiplierBP)
}

func TestHarvestCrop_NotMature(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.place(4, domain.CropCorn, t0-10)
	f.expectLocked()

	_, err := f.svc.HarvestCrop(f.ctx, testPlayer, 4)
	assert.ErrorIs(t, err, domain.ErrCropNotMature)
	assert.Equal(t, domain.CropCorn, f.ledger.Plots[4].Crop)
	assert.Zero(t, f.ledger.Coins)
}

func TestHarvestCrop_SaveFailureSkipsPublish(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.place(0, domain.CropWheat, t0-100)
	f.expectLocked()
	f.tx.On("SaveLedger", mock.Anything, f.ledger).Return(domain.ErrDatabaseError).Once()

	_, err := f.svc.HarvestCrop(f.ctx, testPlayer, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHarvestCrop_CommitFailure(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.place(0, domain.CropWheat, t0-100)
	f.expectLocked()
	f.tx.On("SaveLedger", mock.Anything, f.ledger).Return(nil).Once()
	f.tx.On("Commit", mock.Anything).Return(errors.New("serialization failure")).Once()

	_, err := f.svc.HarvestCrop(f.ctx, testPlayer, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextCommit)
}

func TestClearTile(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.place(7, domain.CropCarrot, t0-5)
	f.expectLocked()
	f.expectCommit()
	f.expectPublish(event.TileCleared)

	require.NoError(t, f.svc.ClearTile(f.ctx, testPlayer, 7))
	assert.True(t, f.ledger.Plots[7].Empty())
	assert.Equal(t, t0, f.ledger.Plots[7].FallowSince)
}

func TestLeaveFallow(t *testing.T) {
	t.Run("restores fertility and publishes", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.ledger.Plots[3].FallowSince = t0 - 2*domain.FallowRestoreSeconds
		f.expectLocked()
		f.expectCommit()
		got := f.expectPublish(event.FallowRestored)

		res, err := f.svc.LeaveFallow(f.ctx, testPlayer, 3)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), res.FertilityGained)
		assert.Equal(t, domain.DefaultPlayerFertility+2, f.ledger.Plots[3].Fertility)
		require.Len(t, *got, 1)
	})

	t.Run("under an hour is silent", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.ledger.Plots[3].FallowSince = t0 - 60
		f.expectLocked()
		f.expectCommit()

		res, err := f.svc.LeaveFallow(f.ctx, testPlayer, 3)
		require.NoError(t, err)
		assert.Zero(t, res.FertilityGained)
		f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestWaterTile(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()
	f.expectCommit()
	got := f.expectPublish(event.WaterApplied)

	level, err := f.svc.WaterTile(f.ctx, testPlayer, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxWaterLevel, level)
	assert.Equal(t, domain.MaxWateringCanUses-1, f.ledger.Tools.WateringCanUses)

	payload := (*got)[0].Payload.(WaterAppliedPayloadV1)
	assert.Equal(t, level, payload.NewWaterLevel)
	assert.Equal(t, t0, payload.Timestamp)
}

func TestWaterTile_InvalidPlot(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	_, err := f.svc.WaterTile(f.ctx, testPlayer, 25)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotIndex)
}

func TestUseFertilizer(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()
	f.expectCommit()
	f.expectPublish(event.FertilizerApplied)

	fertility, err := f.svc.UseFertilizer(f.ctx, testPlayer, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxFertility, fertility)
	assert.Equal(t, domain.StartingFertilizer-1, f.ledger.Tools.Fertilizer)
}

func TestRefillWateringCan_InsufficientPoints(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()

	_, err := f.svc.RefillWateringCan(f.ctx, testPlayer)
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestBuyTool(t *testing.T) {
	t.Run("zero quantity rejected before storage", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		_, err := f.svc.BuyTool(f.ctx, testPlayer, domain.ToolFertilizer, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("unknown tool rejected before storage", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		_, err := f.svc.BuyTool(f.ctx, testPlayer, domain.ToolType(9), 1)
		assert.ErrorIs(t, err, domain.ErrInvalidToolType)
	})

	t.Run("purchase", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.ledger.Coins = 100
		f.expectLocked()
		f.expectCommit()
		f.expectPublish(event.ToolPurchased)

		res, err := f.svc.BuyTool(f.ctx, testPlayer, domain.ToolFertilizer, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(30), res.PointsSpent)
		assert.Equal(t, uint64(70), f.ledger.Coins)
		assert.Equal(t, domain.StartingFertilizer+3, f.ledger.Tools.Fertilizer)
	})
}

func TestGatherResource(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()
	f.expectCommit()
	got := f.expectPublish(event.ResourceGathered)

	res, err := f.svc.GatherResource(f.ctx, testPlayer, domain.ResourceWood, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingWood+5, res.NewTotal)
	assert.Equal(t, t0, f.ledger.LastGatherTime[domain.ResourceWood])

	payload := (*got)[0].Payload.(ResourceGatheredPayloadV1)
	assert.Equal(t, uint16(5), payload.Amount)
}

func TestGatherResource_InvalidType(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	_, err := f.svc.GatherResource(f.ctx, testPlayer, domain.ResourceType(4), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidResourceType)
}

func TestGatherResource_AmountRejectedBeforeLock(t *testing.T) {
	tests := []struct {
		name     string
		resource domain.ResourceType
		amount   uint16
	}{
		{"zero", domain.ResourceWood, 0},
		{"over max per action", domain.ResourceStone, 4},
		{"seeds are never gathered", domain.ResourceSeeds, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.SeasonSpring)
			_, err := f.svc.GatherResource(f.ctx, testPlayer, tt.resource, tt.amount)
			assert.ErrorIs(t, err, domain.ErrGatherAmountExceeded)
			f.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestCraftAndClaim(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.ledger.Resources.Wood = 10
	f.ledger.Resources.Stone = 5
	f.expectLocked()
	f.expectCommit()
	f.expectPublish(event.ItemCrafted)

	res, err := f.svc.CraftItem(f.ctx, testPlayer, domain.ItemCompostBin)
	require.NoError(t, err)
	assert.False(t, res.Instant)
	require.NotNil(t, f.ledger.CraftingJob)

	// claim before the job finishes
	f2 := newFixture(t, domain.SeasonSpring)
	f2.ledger = f.ledger
	f2.expectLocked()
	_, err = f2.svc.ClaimCraftedItem(f2.ctx, testPlayer)
	assert.ErrorIs(t, err, domain.ErrCraftingNotComplete)
}

func TestCraftItem_InvalidItem(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	_, err := f.svc.CraftItem(f.ctx, testPlayer, domain.ItemID(7))
	assert.ErrorIs(t, err, domain.ErrInvalidItemID)
}

func TestCollectCompost(t *testing.T) {
	t.Run("no bins", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.expectLocked()
		_, err := f.svc.CollectCompost(f.ctx, testPlayer)
		assert.ErrorIs(t, err, domain.ErrNoCompostBins)
	})

	t.Run("two bins over three days", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.ledger.Structures.CompostBins = 2
		f.ledger.LastCompostCollection = t0 - 3*domain.SecondsPerDay
		f.expectLocked()
		f.expectCommit()
		f.expectPublish(event.CompostCollected)

		res, err := f.svc.CollectCompost(f.ctx, testPlayer)
		require.NoError(t, err)
		assert.Equal(t, uint16(6), res.FertilizerGained)
		assert.Equal(t, domain.StartingFertilizer+6, f.ledger.Tools.Fertilizer)
	})
}

func TestCheckPatterns_ReadOnly(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	for _, tile := range []int{10, 11, 12} {
		f.place(tile, domain.CropWheat, t0-100)
	}
	before := f.ledger.Clone()
	f.repo.On("GetLedger", mock.Anything, testPlayer).Return(f.ledger, nil).Twice()
	got := f.expectPublish(event.PatternsPreview, event.PatternsPreview)

	first, err := f.svc.CheckPatterns(f.ctx, testPlayer, 11)
	require.NoError(t, err)
	second, err := f.svc.CheckPatterns(f.ctx, testPlayer, 11)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, f.ledger)
	assert.Equal(t, uint32(11500), first.Bonus.YieldMultiplierBP)

	payload := (*got)[0].Payload.(PatternsPreviewPayloadV1)
	assert.Equal(t, 1, payload.PatternCount)
}

func TestInitializePlayer(t *testing.T) {
	t.Run("creates ledger", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.repo.On("CreateLedger", mock.Anything, mock.MatchedBy(func(l *domain.PlayerLedger) bool {
			return l.PlayerID == testPlayer && l.Tools.WateringCanUses == domain.MaxWateringCanUses
		})).Return(nil).Once()
		f.expectPublish(event.PlayerInitialized)

		l, err := f.svc.InitializePlayer(f.ctx, testPlayer)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultWaterLevel, l.WaterLevels[24])
		assert.Equal(t, t0, l.LastCompostCollection)
	})

	t.Run("already exists", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		f.repo.On("CreateLedger", mock.Anything, mock.Anything).Return(domain.ErrPlayerAlreadyExists).Once()

		_, err := f.svc.InitializePlayer(f.ctx, testPlayer)
		assert.ErrorIs(t, err, domain.ErrPlayerAlreadyExists)
	})

	t.Run("rejects non-uuid", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		_, err := f.svc.InitializePlayer(WithCaller(context.Background(), "bob"), "bob")
		assert.ErrorIs(t, err, domain.ErrInvalidPlayerID)
	})

	t.Run("rejects other caller", func(t *testing.T) {
		f := newFixture(t, domain.SeasonSpring)
		_, err := f.svc.InitializePlayer(WithCaller(context.Background(), otherID), testPlayer)
		assert.ErrorIs(t, err, domain.ErrIdentityMismatch)
	})
}

func TestGetLedger(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.repo.On("GetLedger", mock.Anything, testPlayer).Return(f.ledger, nil).Once()

	l, err := f.svc.GetLedger(f.ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, testPlayer, l.PlayerID)

	f.repo.On("GetLedger", mock.Anything, otherID).Return(nil, domain.ErrPlayerNotFound).Once()
	_, err = f.svc.GetLedger(WithCaller(context.Background(), otherID), otherID)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestPublishFailureDoesNotFailCommand(t *testing.T) {
	f := newFixture(t, domain.SeasonSpring)
	f.expectLocked()
	f.expectCommit()
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down")).Once()

	_, err := f.svc.PlantCrop(f.ctx, testPlayer, 0, domain.CropCarrot)
	assert.NoError(t, err)
}
