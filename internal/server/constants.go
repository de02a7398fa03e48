package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgForbidden       = "Forbidden"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgInvalidPlayerID = "Invalid X-Player-ID header"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAdminAuthFailed  = "Admin authentication failed"
	LogMsgInvalidPlayerID  = "Rejected malformed player id"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAdminKey       = "X-Admin-Key"
	HeaderPlayerID       = "X-Player-ID"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// securityHeaders are set on every response
var securityHeaders = [][2]string{
	{HeaderContentType, "nosniff"},
	{HeaderFrameOptions, "SAMEORIGIN"},
	{HeaderXSSProtection, "1; mode=block"},
	{HeaderReferrerPolicy, "strict-origin-when-cross-origin"},
}

// Limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second

	// FailedAuthAlertThreshold is the per-window failure count that triggers an alert
	FailedAuthAlertThreshold = 5
	// RateLimitPerWindow is the request budget per IP per RateLimitWindow
	RateLimitPerWindow = 1000
	RateLimitWindow    = 5 * time.Minute
	// RateLimitLogEvery throttles the high-rate alert to one line per this many rejections
	RateLimitLogEvery = 100
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
}

// Paths excluded from request logging
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Headers whose values never reach the logs
var sensitiveHeaders = []string{
	HeaderAPIKey,
	HeaderAdminKey,
	HeaderAuthorization,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
