package crafting

import (
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Input is one resource requirement of a recipe.
type Input struct {
	Resource domain.ResourceType `json:"resource"`
	Amount   uint16              `json:"amount"`
}

// Recipe describes what an item costs and how long it takes.
type Recipe struct {
	Item        domain.ItemID `json:"item_id"`
	Inputs      []Input       `json:"inputs"`
	Output      uint16        `json:"output"`
	Duration    int64         `json:"duration_seconds"`
	Description string        `json:"description"`
}

// Instant reports whether the item is granted as soon as it is crafted.
func (r Recipe) Instant() bool {
	return r.Duration == 0
}

var recipes = [...]Recipe{
	domain.ItemWateringCanRefill: {
		Item:        domain.ItemWateringCanRefill,
		Inputs:      []Input{{domain.ResourceWood, 3}, {domain.ResourceFiber, 2}},
		Output:      1,
		Description: DescWateringCanRefill,
	},
	domain.ItemFertilizer: {
		Item:        domain.ItemFertilizer,
		Inputs:      []Input{{domain.ResourceFiber, 5}, {domain.ResourceSeeds, 3}},
		Output:      3,
		Description: DescFertilizer,
	},
	domain.ItemCompostBin: {
		Item:        domain.ItemCompostBin,
		Inputs:      []Input{{domain.ResourceWood, 10}, {domain.ResourceStone, 5}},
		Output:      1,
		Duration:    3600,
		Description: DescCompostBin,
	},
	domain.ItemScarecrow: {
		Item:        domain.ItemScarecrow,
		Inputs:      []Input{{domain.ResourceWood, 8}, {domain.ResourceFiber, 12}},
		Output:      1,
		Duration:    1800,
		Description: DescScarecrow,
	},
	domain.ItemFence: {
		Item:        domain.ItemFence,
		Inputs:      []Input{{domain.ResourceWood, 15}, {domain.ResourceStone, 8}},
		Output:      1,
		Duration:    2700,
		Description: DescFence,
	},
	domain.ItemSprinkler: {
		Item:        domain.ItemSprinkler,
		Inputs:      []Input{{domain.ResourceWood, 20}, {domain.ResourceStone, 12}, {domain.ResourceFiber, 5}},
		Output:      1,
		Duration:    7200,
		Description: DescSprinkler,
	},
	domain.ItemAdvancedTool: {
		Item:        domain.ItemAdvancedTool,
		Inputs:      []Input{{domain.ResourceWood, 5}, {domain.ResourceStone, 3}},
		Output:      1,
		Duration:    5400,
		Description: DescAdvancedTool,
	},
}

// Lookup returns the recipe for item.
func Lookup(item domain.ItemID) (Recipe, error) {
	if !item.Valid() {
		return Recipe{}, fmt.Errorf("%w: %d", domain.ErrInvalidItemID, item)
	}
	return recipes[item], nil
}

// All returns every recipe in identifier order.
func All() []Recipe {
	return recipes[:]
}
