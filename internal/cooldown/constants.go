package cooldown

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
