package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

func TestLookup(t *testing.T) {
	for _, c := range domain.AllCrops {
		cfg, err := Lookup(c)
		require.NoError(t, err)
		assert.Equal(t, c, cfg.Type)
		assert.Greater(t, cfg.MaxDecayTime, cfg.OptimalWindow, "%s decay window", c)
		assert.GreaterOrEqual(t, cfg.BaseYield, cfg.MinYield, "%s yield range", c)
		assert.NotEmpty(t, cfg.ValidSeasons, "%s seasons", c)
	}

	_, err := Lookup(domain.CropNone)
	assert.ErrorIs(t, err, domain.ErrInvalidCropType)
	_, err = Lookup(domain.CropType(6))
	assert.ErrorIs(t, err, domain.ErrInvalidCropType)
}

func TestConfig_PlantableIn(t *testing.T) {
	tests := []struct {
		crop    domain.CropType
		season  domain.Season
		allowed bool
	}{
		{domain.CropWheat, domain.SeasonSpring, true},
		{domain.CropWheat, domain.SeasonFall, false},
		{domain.CropTomato, domain.SeasonSummer, true},
		{domain.CropTomato, domain.SeasonSpring, false},
		{domain.CropCarrot, domain.SeasonWinter, true},
		{domain.CropLettuce, domain.SeasonWinter, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, MustLookup(tt.crop).PlantableIn(tt.season), "%s in %s", tt.crop, tt.season)
	}
}

func TestConfig_SeasonYieldBP(t *testing.T) {
	wheat := MustLookup(domain.CropWheat)

	assert.Equal(t, uint32(11000), wheat.SeasonYieldBP(nil))
	assert.Equal(t, uint32(9000), wheat.SeasonYieldBP(domain.SeasonPtr(domain.SeasonSummer)))
	assert.Equal(t, uint32(10000), wheat.SeasonYieldBP(domain.SeasonPtr(domain.Season(9))))
}

func TestIsMature(t *testing.T) {
	plot := &domain.Plot{Crop: domain.CropWheat, PlantedAt: 1000}

	assert.False(t, IsMature(plot, 1029))
	assert.True(t, IsMature(plot, 1030))
	assert.False(t, IsMature(&domain.Plot{}, 5000))
	assert.False(t, IsMature(nil, 5000))
}
