package domain

// CropType identifies a crop. Zero means the plot is empty.
type CropType uint8

const (
	CropNone CropType = iota
	CropWheat
	CropTomato
	CropCorn
	CropCarrot
	CropLettuce
)

// AllCrops lists every plantable crop in identifier order.
var AllCrops = []CropType{CropWheat, CropTomato, CropCorn, CropCarrot, CropLettuce}

// Valid reports whether c names a plantable crop.
func (c CropType) Valid() bool {
	return c >= CropWheat && c <= CropLettuce
}

func (c CropType) String() string {
	switch c {
	case CropWheat:
		return "wheat"
	case CropTomato:
		return "tomato"
	case CropCorn:
		return "corn"
	case CropCarrot:
		return "carrot"
	case CropLettuce:
		return "lettuce"
	default:
		return "none"
	}
}

// Season is an index into the four-season year.
type Season uint8

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonFall
	SeasonWinter
)

// NumSeasons is the length of the seasonal cycle.
const NumSeasons = 4

// Valid reports whether s is one of the four seasons.
func (s Season) Valid() bool {
	return s < NumSeasons
}

// Next returns the season that follows s.
func (s Season) Next() Season {
	return (s + 1) % NumSeasons
}

// Clamped returns s limited to the last season index.
func (s Season) Clamped() Season {
	if s >= NumSeasons {
		return SeasonWinter
	}
	return s
}

func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonFall:
		return "fall"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// SeasonPtr returns a pointer to a copy of s.
func SeasonPtr(s Season) *Season {
	return &s
}

// ResourceType identifies a raw resource counter.
type ResourceType uint8

const (
	ResourceWood ResourceType = iota
	ResourceStone
	ResourceFiber
	ResourceSeeds
)

// NumResourceTypes is the number of raw resource counters.
const NumResourceTypes = 4

// AllResources lists every resource type in identifier order.
var AllResources = []ResourceType{ResourceWood, ResourceStone, ResourceFiber, ResourceSeeds}

func (r ResourceType) Valid() bool {
	return r < NumResourceTypes
}

func (r ResourceType) String() string {
	switch r {
	case ResourceWood:
		return "wood"
	case ResourceStone:
		return "stone"
	case ResourceFiber:
		return "fiber"
	case ResourceSeeds:
		return "seeds"
	default:
		return "unknown"
	}
}

// ToolType identifies a purchasable tool.
type ToolType uint8

const (
	ToolWateringCan ToolType = iota
	ToolFertilizer
	ToolPremiumSeeds
)

// AllTools lists every tool type in identifier order.
var AllTools = []ToolType{ToolWateringCan, ToolFertilizer, ToolPremiumSeeds}

func (t ToolType) Valid() bool {
	return t <= ToolPremiumSeeds
}

func (t ToolType) String() string {
	switch t {
	case ToolWateringCan:
		return "watering_can"
	case ToolFertilizer:
		return "fertilizer"
	case ToolPremiumSeeds:
		return "premium_seeds"
	default:
		return "unknown"
	}
}

// ItemID identifies a craftable item.
type ItemID uint8

const (
	ItemWateringCanRefill ItemID = iota
	ItemFertilizer
	ItemCompostBin
	ItemScarecrow
	ItemFence
	ItemSprinkler
	ItemAdvancedTool
)

// AllItems lists every craftable item in identifier order.
var AllItems = []ItemID{
	ItemWateringCanRefill,
	ItemFertilizer,
	ItemCompostBin,
	ItemScarecrow,
	ItemFence,
	ItemSprinkler,
	ItemAdvancedTool,
}

func (i ItemID) Valid() bool {
	return i <= ItemAdvancedTool
}

func (i ItemID) String() string {
	switch i {
	case ItemWateringCanRefill:
		return "watering_can_refill"
	case ItemFertilizer:
		return "fertilizer"
	case ItemCompostBin:
		return "compost_bin"
	case ItemScarecrow:
		return "scarecrow"
	case ItemFence:
		return "fence"
	case ItemSprinkler:
		return "sprinkler"
	case ItemAdvancedTool:
		return "advanced_tool"
	default:
		return "unknown"
	}
}

// PatternType identifies a spatial synergy pattern.
type PatternType uint8

const (
	PatternMonocultureRow PatternType = iota
	PatternMonocultureBlock
	PatternCompanionPlanting
	PatternCropDiversity
	PatternCrossPattern
	PatternCheckerboard
	PatternPerimeterDefense
	PatternRotationSequence
)

// NumPatternTypes is the number of pattern identifiers, companion included.
const NumPatternTypes = 8

func (p PatternType) Valid() bool {
	return p < NumPatternTypes
}

func (p PatternType) String() string {
	switch p {
	case PatternMonocultureRow:
		return "monoculture_row"
	case PatternMonocultureBlock:
		return "monoculture_block"
	case PatternCompanionPlanting:
		return "companion_planting"
	case PatternCropDiversity:
		return "crop_diversity"
	case PatternCrossPattern:
		return "cross_pattern"
	case PatternCheckerboard:
		return "checkerboard"
	case PatternPerimeterDefense:
		return "perimeter_defense"
	case PatternRotationSequence:
		return "rotation_sequence"
	default:
		return "unknown"
	}
}
