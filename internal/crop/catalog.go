package crop

import (
	"fmt"
	"slices"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Config describes growth timing, yield curve and soil behaviour for one crop.
// Per-season modifiers are in basis points indexed by domain.Season.
type Config struct {
	Type          domain.CropType
	GrowthTime    int64
	OptimalWindow int64
	MaxDecayTime  int64
	BaseYield     uint32
	MinYield      uint32
	FertilityCost uint8
	Restorative   bool
	GrowthStages  uint8
	ValidSeasons  []domain.Season
	GrowthRateBP  [domain.NumSeasons]uint32
	YieldBP       [domain.NumSeasons]uint32

	// Resources granted automatically on every harvest.
	SeedGrant  uint16
	FiberGrant uint16
}

var catalog = [...]Config{
	domain.CropWheat: {
		Type:          domain.CropWheat,
		GrowthTime:    30,
		OptimalWindow: 20,
		MaxDecayTime:  60,
		BaseYield:     100,
		MinYield:      20,
		FertilityCost: 10,
		GrowthStages:  4,
		ValidSeasons:  []domain.Season{domain.SeasonSpring, domain.SeasonSummer, domain.SeasonWinter},
		GrowthRateBP:  [domain.NumSeasons]uint32{10000, 8000, 0, 12000},
		YieldBP:       [domain.NumSeasons]uint32{11000, 9000, 0, 10000},
		SeedGrant:     1,
		FiberGrant:    2,
	},
	domain.CropTomato: {
		Type:          domain.CropTomato,
		GrowthTime:    45,
		OptimalWindow: 30,
		MaxDecayTime:  90,
		BaseYield:     300,
		MinYield:      60,
		FertilityCost: 15,
		GrowthStages:  4,
		ValidSeasons:  []domain.Season{domain.SeasonSummer},
		GrowthRateBP:  [domain.NumSeasons]uint32{0, 10000, 0, 0},
		YieldBP:       [domain.NumSeasons]uint32{0, 10000, 0, 0},
		SeedGrant:     1,
	},
	domain.CropCorn: {
		Type:          domain.CropCorn,
		GrowthTime:    60,
		OptimalWindow: 40,
		MaxDecayTime:  120,
		BaseYield:     500,
		MinYield:      100,
		FertilityCost: 20,
		GrowthStages:  4,
		ValidSeasons:  []domain.Season{domain.SeasonSummer},
		GrowthRateBP:  [domain.NumSeasons]uint32{0, 10000, 0, 0},
		YieldBP:       [domain.NumSeasons]uint32{0, 10000, 0, 0},
		SeedGrant:     2,
	},
	domain.CropCarrot: {
		Type:          domain.CropCarrot,
		GrowthTime:    25,
		OptimalWindow: 15,
		MaxDecayTime:  50,
		BaseYield:     150,
		MinYield:      30,
		FertilityCost: 5,
		Restorative:   true,
		GrowthStages:  3,
		ValidSeasons:  []domain.Season{domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall, domain.SeasonWinter},
		GrowthRateBP:  [domain.NumSeasons]uint32{10000, 10000, 11000, 10000},
		YieldBP:       [domain.NumSeasons]uint32{10000, 10000, 10000, 10000},
		SeedGrant:     1,
		FiberGrant:    1,
	},
	domain.CropLettuce: {
		Type:          domain.CropLettuce,
		GrowthTime:    20,
		OptimalWindow: 10,
		MaxDecayTime:  40,
		BaseYield:     80,
		MinYield:      16,
		FertilityCost: 5,
		Restorative:   true,
		GrowthStages:  3,
		ValidSeasons:  []domain.Season{domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall},
		GrowthRateBP:  [domain.NumSeasons]uint32{11000, 8000, 10000, 0},
		YieldBP:       [domain.NumSeasons]uint32{10000, 9000, 10000, 0},
		FiberGrant:    3,
	},
}

// Lookup returns the catalog entry for c.
func Lookup(c domain.CropType) (Config, error) {
	if !c.Valid() {
		return Config{}, fmt.Errorf("%w: %d", domain.ErrInvalidCropType, c)
	}
	return catalog[c], nil
}

// MustLookup is Lookup for callers that already validated c.
func MustLookup(c domain.CropType) Config {
	cfg, err := Lookup(c)
	if err != nil {
		panic(err)
	}
	return cfg
}

// All returns every catalog entry in identifier order.
func All() []Config {
	out := make([]Config, 0, len(domain.AllCrops))
	for _, c := range domain.AllCrops {
		out = append(out, catalog[c])
	}
	return out
}

// PlantableIn reports whether the crop may be planted during s.
func (c Config) PlantableIn(s domain.Season) bool {
	return slices.Contains(c.ValidSeasons, s)
}

// MatureAt returns the timestamp at which a crop planted at plantedAt matures.
func (c Config) MatureAt(plantedAt int64) int64 {
	return plantedAt + c.GrowthTime
}

// IsMature reports whether a crop planted at plantedAt is harvestable at now.
func (c Config) IsMature(plantedAt, now int64) bool {
	return now >= c.MatureAt(plantedAt)
}

// SeasonYieldBP returns the yield modifier for the season a crop was planted in.
// A missing season counts as spring and out-of-range indices clamp to winter.
func (c Config) SeasonYieldBP(planted *domain.Season) uint32 {
	s := domain.SeasonSpring
	if planted != nil {
		s = planted.Clamped()
	}
	return c.YieldBP[s]
}

// IsMature reports whether plot holds a crop that is harvestable at now.
// Empty plots and unknown crop ids are never mature.
func IsMature(p *domain.Plot, now int64) bool {
	if p == nil || p.Empty() {
		return false
	}
	cfg, err := Lookup(p.Crop)
	if err != nil {
		return false
	}
	return cfg.IsMature(p.PlantedAt, now)
}
