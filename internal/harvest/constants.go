package harvest

// ============================================================================
// Harvest resource caps
// ============================================================================

// Pattern and crop grants truncate at these caps instead of failing.
const (
	SeedGrantCap  uint16 = 500
	FiberGrantCap uint16 = 500
	WoodGrantCap  uint16 = 999
)
