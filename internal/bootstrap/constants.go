package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Storage
// =============================================================================

// Log messages for storage initialization
const (
	LogMsgStorageReady       = "Storage ready"
	ErrMsgFailedOpenStore    = "failed to open store"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgUnsupportedStorage = "unsupported storage driver %q"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 3

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 500 * time.Millisecond
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgStreamSubscriberRegistered = "Stream subscriber registered"
	LogMsgSeasonAnnouncerEnabled     = "Discord season announcer enabled"
	LogMsgSeasonAnnouncerDisabled    = "Discord season announcer disabled, DISCORD_TOKEN or DISCORD_CHANNEL_ID not set"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
	ErrMsgFailedCreateAnnouncer      = "failed to create season announcer"
)

// =============================================================================
// Services and Scheduling
// =============================================================================

const (
	// EventLogCleanupHour is the UTC hour the event log cleanup runs
	EventLogCleanupHour = 4

	JobNameSeasonAdvance   = "season-advance"
	JobNameEventLogCleanup = "eventlog-cleanup"
)

const (
	LogMsgGameConfigReady    = "Game config ready"
	LogMsgAliasesLoaded      = "Name aliases loaded"
	LogMsgSchedulerStarted   = "Season scheduler started"
	LogMsgSchedulerDisabled  = "Season scheduler disabled, SEASON_TICK_INTERVAL is 0"
	LogMsgCleanupWorkerReady = "Event log cleanup worker scheduled"
	ErrMsgFailedLoadGame     = "failed to load game config"
	ErrMsgFailedLoadAliases  = "failed to load name aliases"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgCleanupWorkerFailed        = "Event log cleanup worker shutdown failed"
	LogMsgAnnouncerCloseFailed       = "Discord session close failed"
)
