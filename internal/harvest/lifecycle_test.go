package harvest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

const t0 int64 = 1_700_000_000

func newLedger() *domain.PlayerLedger {
	return domain.NewPlayerLedger("player-1", time.Unix(t0, 0))
}

func place(l *domain.PlayerLedger, row, col int, c domain.CropType, season domain.Season) {
	idx, _ := domain.Index(row, col)
	l.Plots[idx].Crop = c
	l.Plots[idx].PlantedAt = t0
	l.Plots[idx].PlantedInSeason = domain.SeasonPtr(season)
}

func TestPlant(t *testing.T) {
	l := newLedger()
	l.WaterLevels[4] = 10

	res, err := Plant(l, 4, domain.CropWheat, domain.SeasonSpring, t0+5)
	require.NoError(t, err)
	assert.False(t, res.RotationBonus)
	assert.Equal(t, domain.DefaultPlayerFertility, res.Fertility)

	p := l.Plots[4]
	assert.Equal(t, domain.CropWheat, p.Crop)
	assert.Equal(t, t0+5, p.PlantedAt)
	require.NotNil(t, p.PlantedInSeason)
	assert.Equal(t, domain.SeasonSpring, *p.PlantedInSeason)
	assert.Equal(t, domain.DefaultWaterLevel, l.WaterLevels[4])
	assert.Equal(t, t0+5, l.LastWatered[4])
}

func TestPlant_RotationAndMigration(t *testing.T) {
	l := newLedger()
	l.Plots[0].LastCrop = domain.CropCarrot
	l.Plots[1].LastCrop = domain.CropWheat
	l.Plots[2].Fertility = 0
	l.Plots[3].LastCrop = domain.CropCarrot
	l.Plots[3].Fertility = 95

	res, err := Plant(l, 0, domain.CropWheat, domain.SeasonSpring, t0)
	require.NoError(t, err)
	assert.True(t, res.RotationBonus)
	assert.Equal(t, uint8(90), res.Fertility)

	res, err = Plant(l, 1, domain.CropWheat, domain.SeasonSpring, t0)
	require.NoError(t, err)
	assert.False(t, res.RotationBonus)
	assert.Equal(t, uint8(80), res.Fertility)

	res, err = Plant(l, 2, domain.CropWheat, domain.SeasonSpring, t0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMigratedFertility, res.Fertility)

	res, err = Plant(l, 3, domain.CropWheat, domain.SeasonSpring, t0)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxFertility, res.Fertility)
}

func TestPlant_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tile    int
		crop    domain.CropType
		season  domain.Season
		prepare func(*domain.PlayerLedger)
		wantErr error
	}{
		{name: "tile out of range", tile: 25, crop: domain.CropWheat, wantErr: domain.ErrInvalidTileIndex},
		{name: "negative tile", tile: -1, crop: domain.CropWheat, wantErr: domain.ErrInvalidTileIndex},
		{name: "no crop", tile: 0, crop: domain.CropNone, wantErr: domain.ErrInvalidCropType},
		{name: "unknown crop", tile: 0, crop: domain.CropType(6), wantErr: domain.ErrInvalidCropType},
		{name: "tomato in spring", tile: 0, crop: domain.CropTomato, season: domain.SeasonSpring, wantErr: domain.ErrInvalidSeasonForCrop},
		{
			name: "occupied", tile: 0, crop: domain.CropWheat, season: domain.SeasonSpring,
			prepare: func(l *domain.PlayerLedger) { place(l, 0, 0, domain.CropCarrot, domain.SeasonSpring) },
			wantErr: domain.ErrTileNotEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger()
			if tt.prepare != nil {
				tt.prepare(l)
			}
			before := l.Clone()

			_, err := Plant(l, tt.tile, tt.crop, tt.season, t0)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, l)
		})
	}
}

func TestHarvest_Isolated(t *testing.T) {
	l := newLedger()
	_, err := Plant(l, 12, domain.CropWheat, domain.SeasonSpring, t0)
	require.NoError(t, err)

	res, err := Harvest(l, 12, t0+30)
	require.NoError(t, err)

	// 100 * 88% fertility = 88, spring wheat 1.1x = 96, water 70 = 1.0x
	assert.Equal(t, uint32(96), res.BaseYield)
	assert.Equal(t, uint32(96), res.Yield)
	assert.Empty(t, res.Patterns)
	assert.Equal(t, uint64(96), l.Coins)
	assert.Equal(t, uint16(1), l.Resources.Seeds)
	assert.Equal(t, domain.StartingFiber+2, l.Resources.Fiber)

	p := l.Plots[12]
	assert.True(t, p.Empty())
	assert.Equal(t, domain.CropWheat, p.LastCrop)
	assert.Equal(t, uint8(70), p.Fertility)
	assert.Zero(t, p.PlantedAt)
	assert.Nil(t, p.PlantedInSeason)
	assert.Equal(t, t0+30, p.FallowSince)
}

func TestHarvest_Errors(t *testing.T) {
	l := newLedger()
	_, err := Plant(l, 0, domain.CropCorn, domain.SeasonSummer, t0)
	require.NoError(t, err)
	before := l.Clone()

	_, err = Harvest(l, 0, t0+59)
	assert.ErrorIs(t, err, domain.ErrCropNotMature)
	assert.Equal(t, before, l)

	_, err = Harvest(l, 1, t0+60)
	assert.ErrorIs(t, err, domain.ErrNoActiveCrop)

	_, err = Harvest(l, 30, t0+60)
	assert.ErrorIs(t, err, domain.ErrInvalidTileIndex)
	assert.Equal(t, before, l)
}

func TestHarvest_WaterDecay(t *testing.T) {
	l := newLedger()
	_, err := Plant(l, 0, domain.CropWheat, domain.SeasonSpring, t0)
	require.NoError(t, err)

	res, err := Harvest(l, 0, t0+2*domain.SecondsPerDay)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.WaterDecayDays)
	// decayed to min yield 20, fertility 88% = 17, spring 1.1x = 18
	assert.Equal(t, uint32(18), res.Yield)
	assert.Equal(t, uint8(60), l.WaterLevels[1])
	assert.Equal(t, t0+2*domain.SecondsPerDay, l.LastWaterDecayCheck)
}

func TestHarvest_Patterns(t *testing.T) {
	t.Run("monoculture row", func(t *testing.T) {
		l := newLedger()
		for c := 0; c < 3; c++ {
			place(l, 0, c, domain.CropWheat, domain.SeasonSpring)
		}

		res, err := Harvest(l, 1, t0+30)
		require.NoError(t, err)
		assert.Equal(t, []domain.PatternType{domain.PatternMonocultureRow}, res.Patterns)
		assert.Equal(t, uint32(110), res.Yield)
		assert.Equal(t, uint64(110), l.Coins)
	})

	t.Run("cross grants a seed", func(t *testing.T) {
		l := newLedger()
		for _, rc := range [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}} {
			place(l, rc[0], rc[1], domain.CropWheat, domain.SeasonSpring)
		}

		res, err := Harvest(l, 12, t0+30)
		require.NoError(t, err)
		assert.Equal(t, []domain.PatternType{domain.PatternMonocultureRow, domain.PatternCrossPattern}, res.Patterns)
		assert.Equal(t, uint32(143), res.Yield)
		assert.Equal(t, uint16(2), res.SeedsGained)
		assert.Equal(t, uint16(2), l.Resources.Seeds)
	})

	t.Run("companion", func(t *testing.T) {
		l := newLedger()
		place(l, 2, 2, domain.CropWheat, domain.SeasonSpring)
		place(l, 2, 3, domain.CropCarrot, domain.SeasonSpring)

		res, err := Harvest(l, 12, t0+30)
		require.NoError(t, err)
		assert.Empty(t, res.Patterns)
		assert.Equal(t, domain.CropCarrot, res.Companion)
		assert.Equal(t, uint32(105), res.Yield)
	})

	t.Run("rotation sequence restores fertility", func(t *testing.T) {
		l := newLedger()
		for c, cr := range []domain.CropType{domain.CropWheat, domain.CropTomato, domain.CropCorn, domain.CropCarrot} {
			place(l, 0, c, cr, domain.SeasonSummer)
		}
		l.Plots[2].PlantedAt = t0 - 30

		res, err := Harvest(l, 0, t0+45)
		require.NoError(t, err)
		assert.Equal(t, []domain.PatternType{domain.PatternRotationSequence}, res.Patterns)
		// 88 * 0.9 summer = 79, * 1.2 = 94
		assert.Equal(t, uint32(94), res.Yield)
		assert.Equal(t, uint8(80), res.FertilityAfter)
	})
}

func TestHarvest_FertilityStaysClamped(t *testing.T) {
	l := newLedger()
	now := t0
	for i := 0; i < 20; i++ {
		_, err := Plant(l, 0, domain.CropCorn, domain.SeasonSummer, now)
		require.NoError(t, err)
		now += 60
		res, err := Harvest(l, 0, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.FertilityAfter, domain.MinFertility)
		assert.LessOrEqual(t, res.FertilityAfter, domain.MaxFertility)
	}
	assert.Equal(t, domain.MinFertility, l.Plots[0].Fertility)

	for i := 0; i < 20; i++ {
		_, err := Plant(l, 0, domain.CropLettuce, domain.SeasonSpring, now)
		require.NoError(t, err)
		now += 20
		_, err = Harvest(l, 0, now)
		require.NoError(t, err)
		assert.LessOrEqual(t, l.Plots[0].Fertility, domain.MaxFertility)
	}
}

func TestClear(t *testing.T) {
	l := newLedger()
	place(l, 0, 0, domain.CropWheat, domain.SeasonSpring)
	l.Plots[0].LastCrop = domain.CropCarrot

	require.NoError(t, Clear(l, 0, t0+10))
	p := l.Plots[0]
	assert.True(t, p.Empty())
	assert.Equal(t, domain.CropCarrot, p.LastCrop)
	assert.Equal(t, t0+10, p.FallowSince)

	assert.ErrorIs(t, Clear(l, 0, t0+20), domain.ErrNoActiveCrop)
	assert.ErrorIs(t, Clear(l, 25, t0+20), domain.ErrInvalidTileIndex)
}

func TestFallow(t *testing.T) {
	l := newLedger()
	l.Plots[0].Fertility = 50

	res, err := Fallow(l, 0, t0+3599)
	require.NoError(t, err)
	assert.Zero(t, res.FertilityGained)
	assert.Equal(t, t0, l.Plots[0].FallowSince)

	res, err = Fallow(l, 0, t0+3*3600+100)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), res.FertilityGained)
	assert.Equal(t, uint8(53), l.Plots[0].Fertility)
	assert.Equal(t, t0+3*3600, l.Plots[0].FallowSince)

	res, err = Fallow(l, 0, t0+4*3600)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), res.FertilityGained)

	l.Plots[1].Fertility = 99
	res, err = Fallow(l, 1, t0+10*3600)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), res.FertilityGained)
	assert.Equal(t, domain.MaxFertility, res.Fertility)

	place(l, 2, 2, domain.CropWheat, domain.SeasonSpring)
	_, err = Fallow(l, 12, t0+10*3600)
	assert.ErrorIs(t, err, domain.ErrTileNotEmpty)
}

func TestApplyWaterDecay(t *testing.T) {
	l := newLedger()
	l.WaterLevels[0] = 3

	assert.Zero(t, ApplyWaterDecay(l, t0+domain.SecondsPerDay-1))
	assert.Equal(t, domain.DefaultWaterLevel, l.WaterLevels[1])

	assert.Equal(t, int64(3), ApplyWaterDecay(l, t0+3*domain.SecondsPerDay+500))
	assert.Equal(t, uint8(55), l.WaterLevels[1])
	assert.Zero(t, l.WaterLevels[0])
	assert.Equal(t, t0+3*domain.SecondsPerDay, l.LastWaterDecayCheck)

	assert.Equal(t, int64(100), ApplyWaterDecay(l, t0+103*domain.SecondsPerDay))
	assert.Zero(t, l.WaterLevels[1])
}

func TestPreview_Idempotent(t *testing.T) {
	l := newLedger()
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			place(l, r, c, domain.CropWheat, domain.SeasonSpring)
		}
	}
	l.LastWaterDecayCheck = t0 - 5*domain.SecondsPerDay
	before := l.Clone()

	first, err := Preview(l, 12, t0+30)
	require.NoError(t, err)
	second, err := Preview(l, 12, t0+30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, l)
	assert.Equal(t, []domain.PatternType{domain.PatternMonocultureRow, domain.PatternMonocultureBlock, domain.PatternCrossPattern}, first.Patterns)
	assert.Equal(t, uint32(17940), first.Bonus.YieldMultiplierBP)

	_, err = Preview(l, 25, t0)
	assert.ErrorIs(t, err, domain.ErrInvalidPlotIndex)
}
