package naming

// ============================================================================
// Matching
// ============================================================================

// MinPrefixLength is the shortest input accepted as an unambiguous prefix suggestion.
const MinPrefixLength = 3

// ============================================================================
// Configuration Schema Constants
// ============================================================================

// SchemaAliases is the schema identifier for the alias configuration file
const SchemaAliases = "farm-aliases"

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrFmtUnknownName        = "%w: %q"
	ErrFmtUnknownNameSuggest = "%w: %q (did you mean %q?)"
)

// Error context messages for wrapped errors during configuration loading
const (
	ErrContextFailedToLoadAliases = "failed to load aliases"
	ErrContextFailedToParseConfig = "failed to parse config %s"
)

// Configuration validation error messages
const (
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgUnknownAliasKind    = "%s: unknown alias kind %q"
)
