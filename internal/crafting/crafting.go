// Package crafting consumes resources to produce tools and structures. At most
// one timed job runs per player; instant recipes bypass the queue.
package crafting

import (
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

// CraftResult describes the outcome of Craft.
type CraftResult struct {
	Item    domain.ItemID `json:"item"`
	Instant bool          `json:"instant"`
	ReadyAt int64         `json:"ready_at"`
}

// ClaimResult describes the outcome of Claim.
type ClaimResult struct {
	Item     domain.ItemID `json:"item"`
	Quantity uint16        `json:"quantity"`
}

// Craft consumes the recipe inputs for item. Instant items are granted
// immediately; timed items occupy the crafting slot.
func Craft(l *domain.PlayerLedger, item domain.ItemID, now int64) (CraftResult, error) {
	recipe, err := Lookup(item)
	if err != nil {
		return CraftResult{}, err
	}
	if l.CraftingJob != nil && !recipe.Instant() {
		return CraftResult{}, fmt.Errorf("%w: %s", domain.ErrCraftingInProgress, l.CraftingJob.ItemID)
	}

	if err := Consume(&l.Resources, recipe.Inputs); err != nil {
		return CraftResult{}, err
	}

	if recipe.Instant() {
		grant(l, recipe)
		return CraftResult{Item: item, Instant: true, ReadyAt: now}, nil
	}

	l.CraftingJob = &domain.CraftingJob{ItemID: item, StartedAt: now, Duration: recipe.Duration}
	return CraftResult{Item: item, ReadyAt: l.CraftingJob.ReadyAt()}, nil
}

// Claim grants the queued item once its timer has elapsed.
func Claim(l *domain.PlayerLedger, now int64) (ClaimResult, error) {
	job := l.CraftingJob
	if job == nil {
		return ClaimResult{}, domain.ErrNoCraftingInProgress
	}
	if now < job.ReadyAt() {
		return ClaimResult{}, fmt.Errorf("%w: "+ErrMsgJobReadyAtFmt, domain.ErrCraftingNotComplete, job.ItemID, job.ReadyAt())
	}

	recipe, err := Lookup(job.ItemID)
	if err != nil {
		return ClaimResult{}, err
	}
	grant(l, recipe)
	l.CraftingJob = nil

	return ClaimResult{Item: recipe.Item, Quantity: recipe.Output}, nil
}

// Consume deducts every input or none of them.
func Consume(stock *domain.ResourceStock, inputs []Input) error {
	for _, in := range inputs {
		if have := stock.Get(in.Resource); have < in.Amount {
			return fmt.Errorf("%w: "+ErrMsgMissingInputFmt, domain.ErrInsufficientResources, in.Resource, in.Amount, have)
		}
	}
	for _, in := range inputs {
		v, _ := utils.CheckedSub(stock.Get(in.Resource), in.Amount)
		stock.Set(in.Resource, v)
	}
	return nil
}

func grant(l *domain.PlayerLedger, r Recipe) {
	s := &l.Structures
	n := uint8(min(r.Output, uint16(domain.MaxStructureCount)))

	switch r.Item {
	case domain.ItemWateringCanRefill:
		l.Tools.WateringCanUses = domain.MaxWateringCanUses
	case domain.ItemFertilizer:
		l.Tools.Fertilizer = utils.SaturatingAdd(l.Tools.Fertilizer, r.Output, utils.MaxOf[uint16]())
	case domain.ItemCompostBin:
		s.CompostBins = utils.SaturatingAdd(s.CompostBins, n, domain.MaxStructureCount)
	case domain.ItemScarecrow:
		s.Scarecrows = utils.SaturatingAdd(s.Scarecrows, n, domain.MaxStructureCount)
	case domain.ItemFence:
		s.Fences = utils.SaturatingAdd(s.Fences, n, domain.MaxStructureCount)
	case domain.ItemSprinkler:
		s.Sprinklers = utils.SaturatingAdd(s.Sprinklers, n, domain.MaxStructureCount)
	case domain.ItemAdvancedTool:
		s.AdvancedTools = utils.SaturatingAdd(s.AdvancedTools, n, domain.MaxStructureCount)
	}
}
