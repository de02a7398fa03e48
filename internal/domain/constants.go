package domain

// ============================================================================
// Grid
// ============================================================================

const (
	// GridSize is the width and height of a player's farm.
	GridSize = 5

	// TileCount is the number of plots on a farm (row-major, 0..24).
	TileCount = GridSize * GridSize
)

// ============================================================================
// Fertility
// ============================================================================

const (
	MaxFertility             uint8 = 100
	MinFertility             uint8 = 20
	DefaultPlayerFertility   uint8 = 80
	DefaultMigratedFertility uint8 = 60 // applied when an uninitialized plot is planted
	RotationBonus            uint8 = 10
	RestorativeBonus         uint8 = 10

	// FallowRestoreSeconds is the rest time that restores one fertility point.
	FallowRestoreSeconds int64 = 3600
)

// ============================================================================
// Water
// ============================================================================

const (
	MaxWaterLevel      uint8 = 100
	DefaultWaterLevel  uint8 = 70
	WaterDecayPerDay   uint8 = 5
	WateringAmount     uint8 = 50
	WateringCooldown   int64 = 3600
	MaxWateringCanUses uint8 = 10
)

// ============================================================================
// Starting ledger
// ============================================================================

const (
	StartingFertilizer uint16 = 5
	StartingWood       uint16 = 10
	StartingStone      uint16 = 5
	StartingFiber      uint16 = 8
	StartingSeeds      uint16 = 0
)

// ============================================================================
// Time and arithmetic
// ============================================================================

const (
	SecondsPerDay int64 = 86400

	// BasisPoints is the fixed-point scale for multipliers (10000 = 1.0x).
	BasisPoints uint32 = 10000

	// MaxStructureCount caps every crafted structure counter.
	MaxStructureCount uint8 = 255
)
