package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameHarvests          = "farm_harvests_total"
	MetricNameCoinsEarned       = "farm_coins_earned_total"
	MetricNameCoinsSpent        = "farm_coins_spent_total"
	MetricNamePatternsDetected  = "farm_patterns_detected_total"
	MetricNameCropsPlanted      = "farm_crops_planted_total"
	MetricNameItemsCrafted      = "farm_items_crafted_total"
	MetricNameResourcesGathered = "farm_resources_gathered_total"
	MetricNameToolsPurchased    = "farm_tools_purchased_total"
	MetricNamePlayers           = "farm_players_initialized_total"
	MetricNameSeasonDay         = "farm_season_days_passed"
	MetricNameSeasonCurrent     = "farm_season_current"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextHarvests          = "Total number of harvests by crop"
	HelpTextCoinsEarned       = "Total coins earned from harvests"
	HelpTextCoinsSpent        = "Total coins spent on tools and refills"
	HelpTextPatternsDetected  = "Total number of synergy patterns matched on harvest"
	HelpTextCropsPlanted      = "Total number of crops planted by crop"
	HelpTextItemsCrafted      = "Total number of items crafted or claimed"
	HelpTextResourcesGathered = "Total resource units gathered by resource"
	HelpTextToolsPurchased    = "Total tool units purchased by tool"
	HelpTextPlayers           = "Total number of initialized players"
	HelpTextSeasonDay         = "Days passed on the season clock"
	HelpTextSeasonCurrent     = "Index of the current season (0 spring to 3 winter)"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelCrop     = "crop"
	LabelPattern  = "pattern"
	LabelItem     = "item"
	LabelResource = "resource"
	LabelTool     = "tool"
)

// PathUnmatched labels requests no route pattern matched, keeping cardinality bounded
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
