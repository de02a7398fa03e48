package crafting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

const now int64 = 1_700_000_000

func newLedger() *domain.PlayerLedger {
	return domain.NewPlayerLedger("player-1", time.Unix(now, 0))
}

func TestCraft_Instant(t *testing.T) {
	l := newLedger()
	l.Tools.WateringCanUses = 2

	res, err := Craft(l, domain.ItemWateringCanRefill, now)
	require.NoError(t, err)
	assert.True(t, res.Instant)
	assert.Equal(t, domain.MaxWateringCanUses, l.Tools.WateringCanUses)
	assert.Equal(t, uint16(7), l.Resources.Wood)
	assert.Equal(t, uint16(6), l.Resources.Fiber)
	assert.Nil(t, l.CraftingJob)
}

func TestCraft_InstantFertilizer(t *testing.T) {
	l := newLedger()
	l.Resources.Seeds = 3

	_, err := Craft(l, domain.ItemFertilizer, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingFertilizer+3, l.Tools.Fertilizer)
	assert.Equal(t, uint16(3), l.Resources.Fiber)
	assert.Zero(t, l.Resources.Seeds)
}

func TestCraft_TimedJobAndClaim(t *testing.T) {
	l := newLedger()

	res, err := Craft(l, domain.ItemCompostBin, now)
	require.NoError(t, err)
	assert.False(t, res.Instant)
	assert.Equal(t, now+3600, res.ReadyAt)
	require.NotNil(t, l.CraftingJob)
	assert.Zero(t, l.Resources.Wood)
	assert.Zero(t, l.Resources.Stone)

	_, err = Claim(l, now+3599)
	assert.ErrorIs(t, err, domain.ErrCraftingNotComplete)
	assert.NotNil(t, l.CraftingJob)

	claimed, err := Claim(l, now+3600)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemCompostBin, claimed.Item)
	assert.Equal(t, uint16(1), claimed.Quantity)
	assert.Equal(t, uint8(1), l.Structures.CompostBins)
	assert.Nil(t, l.CraftingJob)

	_, err = Claim(l, now+7200)
	assert.ErrorIs(t, err, domain.ErrNoCraftingInProgress)
}

func TestCraft_SlotBusy(t *testing.T) {
	l := newLedger()
	l.Resources = domain.ResourceStock{Wood: 100, Stone: 100, Fiber: 100, Seeds: 100}

	_, err := Craft(l, domain.ItemScarecrow, now)
	require.NoError(t, err)

	before := l.Resources
	_, err = Craft(l, domain.ItemFence, now)
	assert.ErrorIs(t, err, domain.ErrCraftingInProgress)
	assert.Equal(t, before, l.Resources)

	// Instant recipes still work while a job is queued.
	_, err = Craft(l, domain.ItemFertilizer, now)
	assert.NoError(t, err)
	assert.Equal(t, domain.ItemScarecrow, l.CraftingJob.ItemID)
}

func TestCraft_RecipeAtomicity(t *testing.T) {
	tests := []struct {
		name  string
		item  domain.ItemID
		stock domain.ResourceStock
	}{
		{"sprinkler missing fiber", domain.ItemSprinkler, domain.ResourceStock{Wood: 20, Stone: 12, Fiber: 4}},
		{"fence missing wood", domain.ItemFence, domain.ResourceStock{Wood: 14, Stone: 100}},
		{"fertilizer missing seeds", domain.ItemFertilizer, domain.ResourceStock{Fiber: 50, Seeds: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger()
			l.Resources = tt.stock

			_, err := Craft(l, tt.item, now)
			assert.ErrorIs(t, err, domain.ErrInsufficientResources)
			assert.Equal(t, tt.stock, l.Resources)
			assert.Nil(t, l.CraftingJob)
		})
	}
}

func TestCraft_InvalidItem(t *testing.T) {
	_, err := Craft(newLedger(), domain.ItemID(7), now)
	assert.ErrorIs(t, err, domain.ErrInvalidItemID)
}

func TestClaim_StructureSaturates(t *testing.T) {
	l := newLedger()
	l.Structures.Fences = domain.MaxStructureCount
	l.CraftingJob = &domain.CraftingJob{ItemID: domain.ItemFence, StartedAt: now, Duration: 2700}

	_, err := Claim(l, now+2700)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxStructureCount, l.Structures.Fences)
}
