package snapshot

// FormatVersion is written into every header
const FormatVersion = 1

// HeaderKind identifies farm snapshots
const HeaderKind = "farm-snapshot"

// Record kinds
const (
	RecordSeason = "season"
	RecordLedger = "ledger"
)

const bufferSize = 256 * 1024

// Error messages
const (
	ErrMsgBadHeader       = "snapshot: bad header"
	ErrMsgUnsupported     = "snapshot: unsupported version %d"
	ErrMsgWrongKind       = "snapshot: expected kind %q, got %q"
	ErrMsgUnknownRecord   = "snapshot: unknown record kind %q on line %d"
	ErrMsgDecodeRecord    = "snapshot: decode line %d: %w"
	ErrMsgCountMismatch   = "snapshot: header promises %d ledgers, found %d"
	ErrMsgMissingSeason   = "snapshot: no season record"
	ErrMsgDuplicateSeason = "snapshot: more than one season record"
	ErrMsgExportLedgers   = "snapshot: list ledgers: %w"
	ErrMsgExportSeason    = "snapshot: read season clock: %w"
	ErrMsgImportLedger    = "snapshot: import ledger %s: %w"
	ErrMsgImportSeason    = "snapshot: import season clock: %w"
)

// Log messages
const (
	LogMsgExported = "Snapshot exported"
	LogMsgImported = "Snapshot imported"
)
