// Package resource holds the raw resource catalog and manual gathering.
package resource

import (
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/cooldown"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// Info describes stack and gathering limits for one resource.
type Info struct {
	Type         domain.ResourceType `json:"type"`
	Name         string              `json:"name"`
	MaxStack     uint16              `json:"max_stack"`
	MaxPerAction uint16              `json:"max_per_action"`
	Cooldown     int64               `json:"cooldown_seconds"`
}

var catalog = [domain.NumResourceTypes]Info{
	domain.ResourceWood:  {Type: domain.ResourceWood, Name: "wood", MaxStack: 999, MaxPerAction: 5, Cooldown: 3600},
	domain.ResourceStone: {Type: domain.ResourceStone, Name: "stone", MaxStack: 999, MaxPerAction: 3, Cooldown: 3600},
	domain.ResourceFiber: {Type: domain.ResourceFiber, Name: "fiber", MaxStack: 500, MaxPerAction: 8, Cooldown: 1800},
	// Seeds only come from harvests.
	domain.ResourceSeeds: {Type: domain.ResourceSeeds, Name: "seeds", MaxStack: 500},
}

// Lookup returns catalog data for t.
func Lookup(t domain.ResourceType) (Info, error) {
	if !t.Valid() {
		return Info{}, fmt.Errorf("%w: %d", domain.ErrInvalidResourceType, t)
	}
	return catalog[t], nil
}

// All returns the catalog in identifier order.
func All() []Info {
	return catalog[:]
}

// MaxStack returns the stack cap for t, or zero for unknown types.
func MaxStack(t domain.ResourceType) uint16 {
	if !t.Valid() {
		return 0
	}
	return catalog[t].MaxStack
}

// Grant adds amount to the stock of t, truncating at the stack cap.
func Grant(stock *domain.ResourceStock, t domain.ResourceType, amount uint16) uint16 {
	v := utils.SaturatingAdd(stock.Get(t), amount, MaxStack(t))
	stock.Set(t, v)
	return v
}

// GatherResult reports a successful gather.
type GatherResult struct {
	Type     domain.ResourceType `json:"type"`
	Amount   uint16              `json:"amount"`
	NewTotal uint16              `json:"new_total"`
}

// Gather validates limits and cooldown, then adds amount to the ledger.
// A gather that would exceed the stack cap fails instead of truncating.
func Gather(l *domain.PlayerLedger, t domain.ResourceType, amount uint16, now int64) (GatherResult, error) {
	info, err := Lookup(t)
	if err != nil {
		return GatherResult{}, err
	}
	if amount == 0 || amount > info.MaxPerAction {
		return GatherResult{}, fmt.Errorf("%w: %d %s (max %d)", domain.ErrGatherAmountExceeded, amount, info.Name, info.MaxPerAction)
	}

	if err := cooldown.Check("gather "+info.Name, l.LastGatherTime[t], now, info.Cooldown, domain.ErrGatherCooldownActive); err != nil {
		return GatherResult{}, err
	}

	total, ok := utils.CheckedAdd(l.Resources.Get(t), amount, info.MaxStack)
	if !ok {
		return GatherResult{}, fmt.Errorf("%w: %s would exceed %d", domain.ErrResourceStackOverflow, info.Name, info.MaxStack)
	}

	l.Resources.Set(t, total)
	if info.Cooldown > 0 {
		l.LastGatherTime[t] = now
	}

	return GatherResult{Type: t, Amount: amount, NewTotal: total}, nil
}
