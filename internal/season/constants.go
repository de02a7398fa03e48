package season

import "time"

// DefaultSeasonLength is the stock number of days per season.
const DefaultSeasonLength uint32 = 30

// Cache configuration
const (
	cacheKey        = "clock"
	cacheSize       = 1
	DefaultCacheTTL = 30 * time.Second
)

// Log messages
const (
	LogMsgDayAdvanced       = "Season day advanced"
	LogMsgSeasonChanged     = "Season changed"
	LogMsgSeasonSet         = "Season manually set"
	LogMsgPublishFailed     = "Failed to publish season event"
	LogMsgAdvanceJobStarted = "Starting season advance job"
	LogMsgAdvanceJobFailed  = "Season advance job failed"
)

// Log field keys
const (
	LogFieldSeason     = "season"
	LogFieldDaysPassed = "days_passed"
	LogFieldPrevious   = "previous"
	LogFieldError      = "error"
)
