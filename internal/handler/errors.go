package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerID       = "Missing player identity"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"

	ErrMsgCropRequired     = "crop_type or crop_name is required"
	ErrMsgToolRequired     = "tool_type or tool_name is required"
	ErrMsgResourceRequired = "resource_type or resource_name is required"
	ErrMsgItemRequired     = "item_id or item_name is required"

	ErrMsgReloadFailed = "Failed to reload configuration"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Success messages for API responses
const (
	MsgPlayerInitialized = "Farm created"
	MsgTileCleared       = "Tile cleared"
	MsgNothingRestored   = "Tile has not rested a full hour yet"
	MsgCraftingStarted   = "Crafting started"
	MsgItemCrafted       = "Item crafted"
	MsgAliasesReloaded   = "Alias configuration reloaded"
)

// Log messages
const (
	LogMsgRequestFailed    = "Request failed"
	LogMsgRequestSucceeded = "Request succeeded"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgReadinessFailed  = "Readiness check failed"
)
