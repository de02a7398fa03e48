package synergy

import (
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// ResourceGrant lists extra resources awarded by a pattern. Points are paid as coins.
type ResourceGrant struct {
	Seeds  uint16 `json:"seeds"`
	Fiber  uint16 `json:"fiber"`
	Wood   uint16 `json:"wood"`
	Points uint32 `json:"points"`
}

// Bonus is the reward for one matched pattern.
type Bonus struct {
	YieldMultiplierBP uint32        `json:"yield_multiplier_bp"`
	FertilityBonus    uint8         `json:"fertility_bonus"`
	WaterBonus        uint8         `json:"water_bonus"`
	Resources         ResourceGrant `json:"resources"`
	Description       string        `json:"description"`
}

var patternBonuses = [domain.NumPatternTypes]Bonus{
	domain.PatternMonocultureRow: {
		YieldMultiplierBP: 11500,
		Description:       "3+ same crops in a row: +15% yield",
	},
	domain.PatternMonocultureBlock: {
		YieldMultiplierBP: 12000,
		Description:       "2x2 block of same crop: +20% yield",
	},
	domain.PatternCompanionPlanting: {
		YieldMultiplierBP: 11000,
		Description:       "Beneficial crop pairs: +10% yield",
	},
	domain.PatternCropDiversity: {
		YieldMultiplierBP: 12500,
		FertilityBonus:    5,
		Description:       "Surrounded by different crops: +25% yield, +5 fertility",
	},
	domain.PatternCrossPattern: {
		YieldMultiplierBP: 13000,
		Resources:         ResourceGrant{Seeds: 1},
		Description:       "Cross shape of same crop: +30% yield, +1 seed",
	},
	domain.PatternCheckerboard: {
		YieldMultiplierBP: 11000,
		WaterBonus:        2,
		Description:       "Alternating crops in 3x3: +10% yield, +2 water",
	},
	domain.PatternPerimeterDefense: {
		YieldMultiplierBP: 14000,
		Description:       "Border around center crop: +40% yield",
	},
	domain.PatternRotationSequence: {
		YieldMultiplierBP: 12000,
		FertilityBonus:    10,
		Description:       "4 different crops in line: +20% yield, +10 fertility",
	},
}

// ForPattern returns the bonus for p, or ErrInvalidPatternType.
func ForPattern(p domain.PatternType) (Bonus, error) {
	if !p.Valid() {
		return Bonus{}, domain.ErrInvalidPatternType
	}
	return patternBonuses[p], nil
}

type pair struct{ a, b domain.CropType }

var companions = map[pair]Bonus{
	{domain.CropWheat, domain.CropCarrot}: {
		YieldMultiplierBP: 11000,
		Description:       "Wheat and carrot: +10% yield",
	},
	{domain.CropCorn, domain.CropLettuce}: {
		YieldMultiplierBP: 10500,
		WaterBonus:        5,
		Description:       "Corn shades lettuce: +5% yield, +5 water",
	},
}

// Companion returns the bonus for an adjacent crop pair. Order does not matter.
func Companion(a, b domain.CropType) (Bonus, bool) {
	if bonus, ok := companions[pair{a, b}]; ok {
		return bonus, true
	}
	bonus, ok := companions[pair{b, a}]
	return bonus, ok
}

// Total is the combined effect of every matched pattern plus the companion.
type Total struct {
	YieldMultiplierBP uint32        `json:"yield_multiplier_bp"`
	FertilityBonus    uint8         `json:"fertility_bonus"`
	WaterBonus        uint8         `json:"water_bonus"`
	Resources         ResourceGrant `json:"resources"`
}

// Apply multiplies baseYield through each matched pattern in order, then the
// companion, flooring after every step.
func Apply(baseYield uint32, patterns []domain.PatternType, companion *Bonus) (uint32, Total) {
	total := Total{YieldMultiplierBP: domain.BasisPoints}
	y := baseYield

	for _, p := range patterns {
		bonus, err := ForPattern(p)
		if err != nil {
			continue
		}
		y = scale(y, bonus.YieldMultiplierBP)
		total.YieldMultiplierBP = scale(total.YieldMultiplierBP, bonus.YieldMultiplierBP)
		total.FertilityBonus = utils.SaturatingAdd(total.FertilityBonus, bonus.FertilityBonus, utils.MaxOf[uint8]())
		total.WaterBonus = utils.SaturatingAdd(total.WaterBonus, bonus.WaterBonus, utils.MaxOf[uint8]())
		total.Resources = addGrant(total.Resources, bonus.Resources)
	}

	if companion != nil {
		y = scale(y, companion.YieldMultiplierBP)
		total.YieldMultiplierBP = scale(total.YieldMultiplierBP, companion.YieldMultiplierBP)
		total.WaterBonus = utils.SaturatingAdd(total.WaterBonus, companion.WaterBonus, utils.MaxOf[uint8]())
	}

	return y, total
}

// Aggregate is Apply without a yield, used by previews.
func Aggregate(patterns []domain.PatternType, companion *Bonus) Total {
	_, total := Apply(0, patterns, companion)
	return total
}

func scale(v, bp uint32) uint32 {
	r := uint64(v) * uint64(bp) / uint64(domain.BasisPoints)
	if r > uint64(utils.MaxOf[uint32]()) {
		return utils.MaxOf[uint32]()
	}
	return uint32(r)
}

func addGrant(a, b ResourceGrant) ResourceGrant {
	return ResourceGrant{
		Seeds:  utils.SaturatingAdd(a.Seeds, b.Seeds, utils.MaxOf[uint16]()),
		Fiber:  utils.SaturatingAdd(a.Fiber, b.Fiber, utils.MaxOf[uint16]()),
		Wood:   utils.SaturatingAdd(a.Wood, b.Wood, utils.MaxOf[uint16]()),
		Points: utils.SaturatingAdd(a.Points, b.Points, utils.MaxOf[uint32]()),
	}
}
