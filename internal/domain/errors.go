package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidTileIndex     = "tile index out of range"
	ErrMsgInvalidPlotIndex     = "plot index out of range"
	ErrMsgInvalidCropType      = "invalid crop type"
	ErrMsgInvalidResourceType  = "invalid resource type"
	ErrMsgInvalidItemID        = "invalid item id"
	ErrMsgInvalidToolType      = "invalid tool type"
	ErrMsgInvalidPatternType   = "invalid pattern type"
	ErrMsgInvalidSeasonIndex   = "invalid season index"
	ErrMsgInvalidQuantity      = "quantity must be positive"
	ErrMsgGatherAmountExceeded = "gather amount out of range"
	ErrMsgInvalidPlayerID      = "player id must be a UUID"

	// Plot errors
	ErrMsgTileNotEmpty           = "tile is not empty"
	ErrMsgNoActiveCrop           = "no active crop on tile"
	ErrMsgCropNotMature          = "crop is not mature"
	ErrMsgInvalidSeasonForCrop   = "crop cannot be planted this season"
	ErrMsgWateringTooFrequent    = "plot was watered too recently"
	ErrMsgInsufficientToolUses   = "watering can is empty"
	ErrMsgInsufficientFertilizer = "not enough fertilizer"

	// Economy errors
	ErrMsgInsufficientPoints    = "not enough coins"
	ErrMsgInsufficientResources = "not enough resources"

	// Gathering errors
	ErrMsgGatherCooldownActive  = "gathering is on cooldown"
	ErrMsgResourceStackOverflow = "resource stack would overflow"

	// Crafting errors
	ErrMsgCraftingInProgress   = "a crafting job is already in progress"
	ErrMsgNoCraftingInProgress = "no crafting job in progress"
	ErrMsgCraftingNotComplete  = "crafting job is not complete"
	ErrMsgNoCompostBins        = "no compost bins owned"

	// Configuration errors
	ErrMsgInvalidCropConfig   = "invalid crop configuration"
	ErrMsgInvalidSeasonLength = "season length must be positive"

	// Player errors
	ErrMsgPlayerNotFound      = "player not found"
	ErrMsgPlayerAlreadyExists = "player already exists"
	ErrMsgIdentityMismatch    = "caller does not own this ledger"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidTileIndex     = errors.New(ErrMsgInvalidTileIndex)
	ErrInvalidPlotIndex     = errors.New(ErrMsgInvalidPlotIndex)
	ErrInvalidCropType      = errors.New(ErrMsgInvalidCropType)
	ErrInvalidResourceType  = errors.New(ErrMsgInvalidResourceType)
	ErrInvalidItemID        = errors.New(ErrMsgInvalidItemID)
	ErrInvalidToolType      = errors.New(ErrMsgInvalidToolType)
	ErrInvalidPatternType   = errors.New(ErrMsgInvalidPatternType)
	ErrInvalidSeasonIndex   = errors.New(ErrMsgInvalidSeasonIndex)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)
	ErrGatherAmountExceeded = errors.New(ErrMsgGatherAmountExceeded)
	ErrInvalidPlayerID      = errors.New(ErrMsgInvalidPlayerID)

	// Plot errors
	ErrTileNotEmpty           = errors.New(ErrMsgTileNotEmpty)
	ErrNoActiveCrop           = errors.New(ErrMsgNoActiveCrop)
	ErrCropNotMature          = errors.New(ErrMsgCropNotMature)
	ErrInvalidSeasonForCrop   = errors.New(ErrMsgInvalidSeasonForCrop)
	ErrWateringTooFrequent    = errors.New(ErrMsgWateringTooFrequent)
	ErrInsufficientToolUses   = errors.New(ErrMsgInsufficientToolUses)
	ErrInsufficientFertilizer = errors.New(ErrMsgInsufficientFertilizer)

	// Economy errors
	ErrInsufficientPoints    = errors.New(ErrMsgInsufficientPoints)
	ErrInsufficientResources = errors.New(ErrMsgInsufficientResources)

	// Gathering errors
	ErrGatherCooldownActive  = errors.New(ErrMsgGatherCooldownActive)
	ErrResourceStackOverflow = errors.New(ErrMsgResourceStackOverflow)

	// Crafting errors
	ErrCraftingInProgress   = errors.New(ErrMsgCraftingInProgress)
	ErrNoCraftingInProgress = errors.New(ErrMsgNoCraftingInProgress)
	ErrCraftingNotComplete  = errors.New(ErrMsgCraftingNotComplete)
	ErrNoCompostBins        = errors.New(ErrMsgNoCompostBins)

	// Configuration errors
	ErrInvalidCropConfig   = errors.New(ErrMsgInvalidCropConfig)
	ErrInvalidSeasonLength = errors.New(ErrMsgInvalidSeasonLength)

	// Player errors
	ErrPlayerNotFound      = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerAlreadyExists = errors.New(ErrMsgPlayerAlreadyExists)
	ErrIdentityMismatch    = errors.New(ErrMsgIdentityMismatch)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
