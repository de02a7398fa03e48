package eventlog

// JSON payload field keys
const (
	PayloadKeyPlayerID = "player_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadNotObject = "Event payload is not a JSON object, skipping log"
	LogMsgFailedToLogEvent      = "Failed to log event to database"
	LogMsgEventLogged           = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldPlayerID      = "player_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// DefaultRetentionDays applies when EVENTLOG_RETENTION_DAYS is unset
const DefaultRetentionDays = 30
