// Package tool covers the tool shop and the watering can and fertilizer actions.
package tool

import (
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/cooldown"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// FertilizerBoost is the fertility added by one fertilizer.
const FertilizerBoost uint8 = 20

// Info is the shop entry for a tool.
type Info struct {
	Type domain.ToolType `json:"type"`
	Name string          `json:"name"`
	Cost uint64          `json:"cost"`
}

var catalog = [...]Info{
	domain.ToolWateringCan:  {Type: domain.ToolWateringCan, Name: "watering_can", Cost: 20},
	domain.ToolFertilizer:   {Type: domain.ToolFertilizer, Name: "fertilizer", Cost: 10},
	domain.ToolPremiumSeeds: {Type: domain.ToolPremiumSeeds, Name: "premium_seeds", Cost: 15},
}

// Lookup returns the shop entry for t.
func Lookup(t domain.ToolType) (Info, error) {
	if !t.Valid() {
		return Info{}, fmt.Errorf("%w: %d", domain.ErrInvalidToolType, t)
	}
	return catalog[t], nil
}

// All returns the shop in identifier order.
func All() []Info {
	return catalog[:]
}

// PurchaseResult reports a completed purchase.
type PurchaseResult struct {
	Tool        domain.ToolType `json:"tool"`
	Quantity    uint16          `json:"quantity"`
	PointsSpent uint64          `json:"points_spent"`
}

// Buy charges cost x qty coins. A watering can purchase refills the can
// instead of stacking.
func Buy(l *domain.PlayerLedger, t domain.ToolType, qty uint16) (PurchaseResult, error) {
	info, err := Lookup(t)
	if err != nil {
		return PurchaseResult{}, err
	}
	if qty == 0 {
		return PurchaseResult{}, domain.ErrInvalidQuantity
	}

	cost, ok := utils.CheckedMul(info.Cost, uint64(qty))
	if !ok {
		return PurchaseResult{}, fmt.Errorf("%w: cost overflow", domain.ErrInvalidQuantity)
	}
	if err := spend(l, cost); err != nil {
		return PurchaseResult{}, err
	}

	switch t {
	case domain.ToolWateringCan:
		l.Tools.WateringCanUses = domain.MaxWateringCanUses
	case domain.ToolFertilizer:
		l.Tools.Fertilizer = utils.SaturatingAdd(l.Tools.Fertilizer, qty, utils.MaxOf[uint16]())
	case domain.ToolPremiumSeeds:
		l.Tools.PremiumSeeds = utils.SaturatingAdd(l.Tools.PremiumSeeds, qty, utils.MaxOf[uint16]())
	}

	return PurchaseResult{Tool: t, Quantity: qty, PointsSpent: cost}, nil
}

// Refill pays the watering can price and restores every use.
func Refill(l *domain.PlayerLedger) (uint64, error) {
	cost := catalog[domain.ToolWateringCan].Cost
	if err := spend(l, cost); err != nil {
		return 0, err
	}
	l.Tools.WateringCanUses = domain.MaxWateringCanUses
	return cost, nil
}

func spend(l *domain.PlayerLedger, cost uint64) error {
	left, ok := utils.CheckedSub(l.Coins, cost)
	if !ok {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientPoints, cost, l.Coins)
	}
	l.Coins = left
	return nil
}

// Water adds moisture to a plot using one watering can charge.
func Water(l *domain.PlayerLedger, plot int, now int64) (uint8, error) {
	if !domain.ValidIndex(plot) {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidPlotIndex, plot)
	}
	if l.Tools.WateringCanUses == 0 {
		return 0, domain.ErrInsufficientToolUses
	}
	if err := cooldown.Check("water this plot", l.LastWatered[plot], now, domain.WateringCooldown, domain.ErrWateringTooFrequent); err != nil {
		return 0, err
	}

	level := utils.SaturatingAdd(l.WaterLevels[plot], domain.WateringAmount, domain.MaxWaterLevel)
	l.WaterLevels[plot] = level
	l.LastWatered[plot] = now
	l.Tools.WateringCanUses--

	return level, nil
}

// Fertilize spends one fertilizer on a plot.
func Fertilize(l *domain.PlayerLedger, plot int) (uint8, error) {
	if !domain.ValidIndex(plot) {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidPlotIndex, plot)
	}
	if l.Tools.Fertilizer == 0 {
		return 0, domain.ErrInsufficientFertilizer
	}

	p := &l.Plots[plot]
	p.Fertility = utils.Clamp(utils.SaturatingAdd(p.Fertility, FertilizerBoost, domain.MaxFertility), domain.MinFertility, domain.MaxFertility)
	l.Tools.Fertilizer--

	return p.Fertility, nil
}
