package farm

// ============================================================================
// Operation names (log + metrics labels)
// ============================================================================

const (
	OpInitializePlayer  = "initialize_player"
	OpPlantCrop         = "plant_crop"
	OpHarvestCrop       = "harvest_crop"
	OpClearTile         = "clear_tile"
	OpLeaveFallow       = "leave_fallow"
	OpWaterTile         = "water_tile"
	OpUseFertilizer     = "use_fertilizer"
	OpRefillWateringCan = "refill_watering_can"
	OpBuyTool           = "buy_tool"
	OpGatherResource    = "gather_resource"
	OpCraftItem         = "craft_item"
	OpClaimCraftedItem  = "claim_crafted_item"
	OpCollectCompost    = "collect_compost"
	OpCheckPatterns     = "check_patterns"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPlayerInitialized = "Player initialized"
	LogMsgOperationFailed   = "Farm operation failed"
	LogMsgOperationApplied  = "Farm operation applied"
	LogMsgPublishFailed     = "Failed to publish farm event"
)

// Log field keys
const (
	LogFieldPlayerID  = "player_id"
	LogFieldOperation = "operation"
	LogFieldEvents    = "events"
	LogFieldError     = "error"
)

// Wrapped error contexts
const (
	ErrContextBeginTx    = "failed to begin transaction"
	ErrContextLockLedger = "failed to lock ledger"
	ErrContextSaveLedger = "failed to save ledger"
	ErrContextCommit     = "failed to commit"
	ErrContextGetSeason  = "failed to read season clock"
)
