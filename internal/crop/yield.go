package crop

import (
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// Fertility modifier range, in percent.
const (
	minFertilityModifier = 40
	maxFertilityModifier = 100
)

// YieldInput carries everything ComputeYield needs. Elapsed is measured from
// maturity, not from planting.
type YieldInput struct {
	ElapsedSinceMaturity int64
	BaseYield            uint32
	OptimalWindow        int64
	MaxDecayTime         int64
	MinYield             uint32
	Fertility            uint8
	Water                uint8
	SeasonModifierBP     uint32
}

// InputFor builds a YieldInput from a catalog entry and plot state.
func InputFor(cfg Config, elapsed int64, fertility, water uint8, planted *domain.Season) YieldInput {
	return YieldInput{
		ElapsedSinceMaturity: elapsed,
		BaseYield:            cfg.BaseYield,
		OptimalWindow:        cfg.OptimalWindow,
		MaxDecayTime:         cfg.MaxDecayTime,
		MinYield:             cfg.MinYield,
		Fertility:            fertility,
		Water:                water,
		SeasonModifierBP:     cfg.SeasonYieldBP(planted),
	}
}

// ComputeYield returns the coin yield for a harvest. Every modifier floors
// immediately and the result never drops below half of MinYield.
func ComputeYield(in YieldInput) (uint32, error) {
	if in.MaxDecayTime <= in.OptimalWindow || in.MinYield > in.BaseYield {
		return 0, fmt.Errorf("%w: optimal=%d max_decay=%d base=%d min=%d",
			domain.ErrInvalidCropConfig, in.OptimalWindow, in.MaxDecayTime, in.BaseYield, in.MinYield)
	}

	y := TimeYield(in.ElapsedSinceMaturity, in.BaseYield, in.OptimalWindow, in.MaxDecayTime, in.MinYield)
	y = uint32(uint64(y) * uint64(FertilityModifier(in.Fertility)) / 100)
	y = utils.ScaleBasisPoints(y, in.SeasonModifierBP)
	y = utils.ScaleBasisPoints(y, WaterModifierBP(in.Water))

	return max(y, in.MinYield/2), nil
}

// TimeYield is the piecewise linear decay curve. Callers must ensure
// maxDecay > optimal and base >= min.
func TimeYield(elapsed int64, base uint32, optimal, maxDecay int64, floor uint32) uint32 {
	if elapsed <= optimal {
		return base
	}
	if elapsed >= maxDecay {
		return floor
	}
	loss := uint64(base-floor) * uint64(elapsed-optimal) / uint64(maxDecay-optimal)
	if loss >= uint64(base-floor) {
		return floor
	}
	return base - uint32(loss)
}

// FertilityModifier maps fertility to a percentage in [40, 100].
func FertilityModifier(fertility uint8) uint32 {
	pct := minFertilityModifier + uint32(fertility)*(maxFertilityModifier-minFertilityModifier)/100
	return min(pct, maxFertilityModifier)
}

// WaterModifierBP is the step function of soil moisture.
func WaterModifierBP(water uint8) uint32 {
	switch {
	case water >= 60:
		return 10000
	case water >= 40:
		return 8500
	case water >= 20:
		return 7000
	default:
		return 5000
	}
}
