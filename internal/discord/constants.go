package discord

// Embed text
const (
	EmbedTitleSeasonChanged    = "%s %s has arrived"
	EmbedDescSeasonChanged     = "The farm enters **%s** on day %d."
	EmbedFieldPlantable        = "Plantable crops"
	EmbedValueNothingPlantable = "Nothing grows this season"
	EmbedFooterCalendar        = "Farm Calendar"
	EmbedFooterManual          = "Farm Calendar • set by an admin"
)

// Errors
const (
	ErrMsgCreateSession = "error creating Discord session: %w"
)

// Log messages
const (
	LogMsgSeasonAnnounced     = "Season change announced"
	LogMsgAnnounceFailed      = "Failed to send season announcement"
	LogMsgPayloadDecodeFailed = "Failed to decode season payload"
)
