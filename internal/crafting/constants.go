package crafting

// ==================== Recipe Descriptions ====================

const (
	DescWateringCanRefill = "Refills watering can to 10 uses"
	DescFertilizer        = "Creates 3 fertilizers for soil boosting"
	DescCompostBin        = "Generates 1 fertilizer per day automatically"
	DescScarecrow         = "Protects crops from pests"
	DescFence             = "Marks the farm boundary"
	DescSprinkler         = "Keeps adjacent plots watered"
	DescAdvancedTool      = "An upgraded farming tool"
)

// ==================== Error Messages ====================

const (
	ErrMsgMissingInputFmt = "%s: need %d, have %d"
	ErrMsgJobReadyAtFmt   = "%s ready at %d"
)
