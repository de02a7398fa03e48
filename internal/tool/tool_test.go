package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

const now int64 = 1_700_000_000

func newLedger(coins uint64) *domain.PlayerLedger {
	l := domain.NewPlayerLedger("player-1", time.Unix(now, 0))
	l.Coins = coins
	return l
}

func TestBuy(t *testing.T) {
	tests := []struct {
		name      string
		tool      domain.ToolType
		qty       uint16
		coins     uint64
		wantErr   error
		wantCoins uint64
		check     func(*testing.T, *domain.PlayerLedger)
	}{
		{
			name: "fertilizer stacks", tool: domain.ToolFertilizer, qty: 3, coins: 100, wantCoins: 70,
			check: func(t *testing.T, l *domain.PlayerLedger) {
				assert.Equal(t, domain.StartingFertilizer+3, l.Tools.Fertilizer)
			},
		},
		{
			name: "watering can resets uses", tool: domain.ToolWateringCan, qty: 2, coins: 40, wantCoins: 0,
			check: func(t *testing.T, l *domain.PlayerLedger) {
				assert.Equal(t, domain.MaxWateringCanUses, l.Tools.WateringCanUses)
			},
		},
		{
			name: "premium seeds", tool: domain.ToolPremiumSeeds, qty: 1, coins: 15, wantCoins: 0,
			check: func(t *testing.T, l *domain.PlayerLedger) {
				assert.Equal(t, uint16(1), l.Tools.PremiumSeeds)
			},
		},
		{name: "short on coins", tool: domain.ToolFertilizer, qty: 3, coins: 29, wantErr: domain.ErrInsufficientPoints, wantCoins: 29},
		{name: "zero quantity", tool: domain.ToolFertilizer, qty: 0, coins: 100, wantErr: domain.ErrInvalidQuantity, wantCoins: 100},
		{name: "unknown tool", tool: domain.ToolType(3), qty: 1, coins: 100, wantErr: domain.ErrInvalidToolType, wantCoins: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(tt.coins)
			l.Tools.WateringCanUses = 1

			res, err := Buy(l, tt.tool, tt.qty)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.coins-tt.wantCoins, res.PointsSpent)
				tt.check(t, l)
			}
			assert.Equal(t, tt.wantCoins, l.Coins)
		})
	}
}

func TestRefill(t *testing.T) {
	l := newLedger(25)
	l.Tools.WateringCanUses = 0

	spent, err := Refill(l)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), spent)
	assert.Equal(t, uint64(5), l.Coins)
	assert.Equal(t, domain.MaxWateringCanUses, l.Tools.WateringCanUses)

	_, err = Refill(l)
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	assert.Equal(t, uint64(5), l.Coins)
}

func TestWater(t *testing.T) {
	l := newLedger(0)
	l.WaterLevels[3] = 70

	level, err := Water(l, 3, now)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxWaterLevel, level)
	assert.Equal(t, domain.MaxWateringCanUses-1, l.Tools.WateringCanUses)
	assert.Equal(t, now, l.LastWatered[3])

	_, err = Water(l, 3, now+domain.WateringCooldown-1)
	assert.ErrorIs(t, err, domain.ErrWateringTooFrequent)

	l.WaterLevels[3] = 10
	level, err = Water(l, 3, now+domain.WateringCooldown)
	require.NoError(t, err)
	assert.Equal(t, uint8(60), level)
}

func TestWater_Errors(t *testing.T) {
	l := newLedger(0)

	_, err := Water(l, 25, now)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotIndex)
	_, err = Water(l, -1, now)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotIndex)

	l.Tools.WateringCanUses = 0
	_, err = Water(l, 0, now)
	assert.ErrorIs(t, err, domain.ErrInsufficientToolUses)
	assert.Equal(t, domain.DefaultWaterLevel, l.WaterLevels[0])
}

func TestFertilize(t *testing.T) {
	l := newLedger(0)

	fert, err := Fertilize(l, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxFertility, fert)
	assert.Equal(t, domain.StartingFertilizer-1, l.Tools.Fertilizer)

	l.Plots[1].Fertility = 30
	fert, err = Fertilize(l, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(50), fert)

	l.Tools.Fertilizer = 0
	_, err = Fertilize(l, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFertilizer)
	assert.Equal(t, uint8(50), l.Plots[1].Fertility)
}
