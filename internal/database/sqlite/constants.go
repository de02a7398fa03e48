package sqlite

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetLedger       = "failed to get ledger"
	ErrMsgFailedToInsertLedger    = "failed to insert ledger"
	ErrMsgFailedToUpdateLedger    = "failed to update ledger"
	ErrMsgFailedToListLedgers     = "failed to list ledgers"
	ErrMsgFailedToMarshalLedger   = "failed to marshal ledger"
	ErrMsgFailedToUnmarshalLedger = "failed to unmarshal ledger"
)

// Error Messages - Season Operations
const (
	ErrMsgFailedToGetSeasonClock  = "failed to get season clock"
	ErrMsgFailedToSaveSeasonClock = "failed to save season clock"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToInsertEvent  = "failed to insert event"
	ErrMsgFailedToQueryEvents  = "failed to query events"
	ErrMsgFailedToDeleteEvents = "failed to delete events"
)

const (
	seasonClockColumns = "current_season, days_passed, season_start_day, updated_at"
	eventColumns       = "id, event_type, player_id, payload, metadata, created_at"

	ledgerLockPrefix = "ledger:"
	seasonLockKey    = "season"
)
