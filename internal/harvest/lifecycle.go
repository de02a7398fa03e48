// Package harvest implements the plot lifecycle: plant, harvest, clear, rest
// and preview. Every function mutates the ledger in place and leaves it
// untouched when it returns an error.
package harvest

import (
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/crop"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/pattern"
	"github.com/osse101/FarmEconomy_Go/internal/synergy"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// PlantResult reports a successful planting.
type PlantResult struct {
	Plot          int             `json:"plot"`
	Crop          domain.CropType `json:"crop"`
	RotationBonus bool            `json:"rotation_bonus"`
	Fertility     uint8           `json:"fertility"`
}

// HarvestResult reports everything a harvest changed.
type HarvestResult struct {
	Plot           int                  `json:"plot"`
	Crop           domain.CropType      `json:"crop"`
	BaseYield      uint32               `json:"base_yield"`
	Yield          uint32               `json:"yield"`
	FertilityAfter uint8                `json:"fertility_after"`
	WaterAfter     uint8                `json:"water_after"`
	Patterns       []domain.PatternType `json:"patterns"`
	Companion      domain.CropType      `json:"companion"`
	Bonus          synergy.Total        `json:"bonus"`
	SeedsGained    uint16               `json:"seeds_gained"`
	FiberGained    uint16               `json:"fiber_gained"`
	WoodGained     uint16               `json:"wood_gained"`
	WaterDecayDays int64                `json:"water_decay_days"`
}

// FallowResult reports fertility restored by resting a plot.
type FallowResult struct {
	Plot            int   `json:"plot"`
	FertilityGained uint8 `json:"fertility_gained"`
	Fertility       uint8 `json:"fertility"`
}

// PreviewResult is the read-only pattern evaluation for a plot.
type PreviewResult struct {
	Plot      int                  `json:"plot"`
	Patterns  []domain.PatternType `json:"patterns"`
	Companion domain.CropType      `json:"companion"`
	Bonus     synergy.Total        `json:"bonus"`
}

func checkTile(tile int) error {
	if !domain.ValidIndex(tile) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTileIndex, tile)
	}
	return nil
}

// Plant puts c on an empty tile during season.
func Plant(l *domain.PlayerLedger, tile int, c domain.CropType, season domain.Season, now int64) (PlantResult, error) {
	if err := checkTile(tile); err != nil {
		return PlantResult{}, err
	}
	cfg, err := crop.Lookup(c)
	if err != nil {
		return PlantResult{}, err
	}
	if !cfg.PlantableIn(season) {
		return PlantResult{}, fmt.Errorf("%w: %s in %s", domain.ErrInvalidSeasonForCrop, c, season)
	}

	p := &l.Plots[tile]
	if !p.Empty() {
		return PlantResult{}, fmt.Errorf("%w: %d holds %s", domain.ErrTileNotEmpty, tile, p.Crop)
	}

	if p.Fertility == 0 {
		p.Fertility = domain.DefaultMigratedFertility
	}
	rotation := p.LastCrop != domain.CropNone && p.LastCrop != c
	if rotation {
		p.Fertility = utils.SaturatingAdd(p.Fertility, domain.RotationBonus, domain.MaxFertility)
	}
	p.Fertility = utils.Clamp(p.Fertility, domain.MinFertility, domain.MaxFertility)

	p.Crop = c
	p.PlantedAt = now
	p.RestorativeBonusUsed = false
	p.PlantedInSeason = domain.SeasonPtr(season)

	l.WaterLevels[tile] = domain.DefaultWaterLevel
	l.LastWatered[tile] = now

	return PlantResult{Plot: tile, Crop: c, RotationBonus: rotation, Fertility: p.Fertility}, nil
}

// Harvest collects a mature crop. Patterns are evaluated on the grid as it
// stood before the crop was removed.
func Harvest(l *domain.PlayerLedger, tile int, now int64) (HarvestResult, error) {
	if err := checkTile(tile); err != nil {
		return HarvestResult{}, err
	}
	p := &l.Plots[tile]
	if p.Empty() {
		return HarvestResult{}, fmt.Errorf("%w: %d", domain.ErrNoActiveCrop, tile)
	}
	cfg, err := crop.Lookup(p.Crop)
	if err != nil {
		return HarvestResult{}, err
	}
	if !cfg.IsMature(p.PlantedAt, now) {
		return HarvestResult{}, fmt.Errorf("%w: ready at %d", domain.ErrCropNotMature, cfg.MatureAt(p.PlantedAt))
	}

	// Yield uses the moisture left after pending decay. Nothing is mutated
	// until the curve has been validated.
	_, loss := pendingDecay(l, now)
	water := utils.SaturatingSub(l.WaterLevels[tile], loss)
	elapsed := now - cfg.MatureAt(p.PlantedAt)
	base, err := crop.ComputeYield(crop.InputFor(cfg, elapsed, p.Fertility, water, p.PlantedInSeason))
	if err != nil {
		return HarvestResult{}, err
	}

	res := HarvestResult{Plot: tile, Crop: p.Crop, BaseYield: base}
	res.WaterDecayDays = ApplyWaterDecay(l, now)

	row, col := domain.Coord(tile)
	res.Patterns = pattern.Detect(&l.Plots, row, col, now)
	var companion *synergy.Bonus
	if n, ok := pattern.CheckCompanion(&l.Plots, row, col, now); ok {
		if b, ok := synergy.Companion(p.Crop, n); ok {
			companion = &b
			res.Companion = n
		}
	}
	res.Yield, res.Bonus = synergy.Apply(base, res.Patterns, companion)

	res.SeedsGained += grant(&l.Resources.Seeds, res.Bonus.Resources.Seeds, SeedGrantCap)
	res.FiberGained += grant(&l.Resources.Fiber, res.Bonus.Resources.Fiber, FiberGrantCap)
	res.WoodGained += grant(&l.Resources.Wood, res.Bonus.Resources.Wood, WoodGrantCap)
	l.Coins = utils.SaturatingAdd(l.Coins, uint64(res.Bonus.Resources.Points), utils.MaxOf[uint64]())
	l.Coins = utils.SaturatingAdd(l.Coins, uint64(res.Yield), utils.MaxOf[uint64]())

	res.SeedsGained += grant(&l.Resources.Seeds, cfg.SeedGrant, SeedGrantCap)
	res.FiberGained += grant(&l.Resources.Fiber, cfg.FiberGrant, FiberGrantCap)

	if cfg.Restorative {
		f := utils.SaturatingAdd(p.Fertility, domain.RestorativeBonus, utils.MaxOf[uint8]())
		p.Fertility = utils.Clamp(utils.SaturatingSub(f, cfg.FertilityCost), domain.MinFertility, domain.MaxFertility)
	} else {
		p.Fertility = max(utils.SaturatingSub(p.Fertility, cfg.FertilityCost), domain.MinFertility)
	}

	p.Fertility = utils.Clamp(utils.SaturatingAdd(p.Fertility, res.Bonus.FertilityBonus, domain.MaxFertility), domain.MinFertility, domain.MaxFertility)
	l.WaterLevels[tile] = utils.SaturatingAdd(l.WaterLevels[tile], res.Bonus.WaterBonus, domain.MaxWaterLevel)

	p.LastCrop = p.Crop
	p.ClearCrop(now)

	res.FertilityAfter = p.Fertility
	res.WaterAfter = l.WaterLevels[tile]
	return res, nil
}

// grant adds amount to counter up to limit and returns what was actually added.
func grant(counter *uint16, amount, limit uint16) uint16 {
	before := *counter
	if before >= limit {
		return 0
	}
	*counter = utils.SaturatingAdd(before, amount, limit)
	return *counter - before
}

// Clear removes a growing crop without harvesting it. LastCrop is kept.
func Clear(l *domain.PlayerLedger, tile int, now int64) error {
	if err := checkTile(tile); err != nil {
		return err
	}
	p := &l.Plots[tile]
	if p.Empty() {
		return fmt.Errorf("%w: %d", domain.ErrNoActiveCrop, tile)
	}
	p.ClearCrop(now)
	return nil
}

// Fallow restores one fertility point per full hour an empty plot has rested.
// Partial hours carry over to the next call.
func Fallow(l *domain.PlayerLedger, tile int, now int64) (FallowResult, error) {
	if err := checkTile(tile); err != nil {
		return FallowResult{}, err
	}
	p := &l.Plots[tile]
	if !p.Empty() {
		return FallowResult{}, fmt.Errorf("%w: %d holds %s", domain.ErrTileNotEmpty, tile, p.Crop)
	}

	res := FallowResult{Plot: tile, Fertility: p.Fertility}
	if now <= p.FallowSince {
		return res, nil
	}
	hours := (now - p.FallowSince) / domain.FallowRestoreSeconds
	if hours <= 0 {
		return res, nil
	}

	before := p.Fertility
	gain := uint8(min(hours, int64(domain.MaxFertility)))
	p.Fertility = utils.SaturatingAdd(p.Fertility, gain, domain.MaxFertility)
	if p.Fertility < domain.MinFertility {
		p.Fertility = domain.MinFertility
	}
	p.FallowSince += hours * domain.FallowRestoreSeconds

	res.FertilityGained = utils.SaturatingSub(p.Fertility, before)
	res.Fertility = p.Fertility
	return res, nil
}

// ApplyWaterDecay drains every plot by the whole days elapsed since the last
// check and returns the number of days applied.
func ApplyWaterDecay(l *domain.PlayerLedger, now int64) int64 {
	days, loss := pendingDecay(l, now)
	if days == 0 {
		return 0
	}
	for i := range l.WaterLevels {
		l.WaterLevels[i] = utils.SaturatingSub(l.WaterLevels[i], loss)
	}
	l.LastWaterDecayCheck += days * domain.SecondsPerDay
	return days
}

func pendingDecay(l *domain.PlayerLedger, now int64) (days int64, loss uint8) {
	if now <= l.LastWaterDecayCheck {
		return 0, 0
	}
	days = (now - l.LastWaterDecayCheck) / domain.SecondsPerDay
	if days <= 0 {
		return 0, 0
	}
	return days, uint8(min(days*int64(domain.WaterDecayPerDay), int64(domain.MaxWaterLevel)))
}

// Preview evaluates patterns for a plot without touching the ledger.
func Preview(l *domain.PlayerLedger, plot int, now int64) (PreviewResult, error) {
	if !domain.ValidIndex(plot) {
		return PreviewResult{}, fmt.Errorf("%w: %d", domain.ErrInvalidPlotIndex, plot)
	}
	row, col := domain.Coord(plot)
	res := PreviewResult{Plot: plot}
	res.Patterns = pattern.Detect(&l.Plots, row, col, now)

	var companion *synergy.Bonus
	if n, ok := pattern.CheckCompanion(&l.Plots, row, col, now); ok {
		if b, ok := synergy.Companion(l.Plots[plot].Crop, n); ok {
			companion = &b
			res.Companion = n
		}
	}
	res.Bonus = synergy.Aggregate(res.Patterns, companion)
	return res, nil
}
