package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
)

func keyMatches(provided, want string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(want)) == 1
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires X-API-Key on every non-public path. Failures are
// counted against the client address in guard.
func AuthMiddleware(apiKey string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if !keyMatches(provided, apiKey) {
				ip := guard.ClientIP(r)
				guard.FailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"ip", ip,
					"path", r.URL.Path,
					"has_key", provided != "")
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminMiddleware guards calendar mutation and the admin routes.
// An empty adminKey rejects everything.
func AdminMiddleware(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAdminKey)
			if adminKey == "" || !keyMatches(provided, adminKey) {
				logger.FromContext(r.Context()).Warn(LogMsgAdminAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "")
				http.Error(w, ErrMsgForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityMiddleware binds X-Player-ID to the request context.
// Requests without the header pass through; the handlers decide whether
// an identity is required.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderPlayerID)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgInvalidPlayerID, "error", err)
			http.Error(w, ErrMsgInvalidPlayerID, http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r.WithContext(farm.WithCaller(r.Context(), id.String())))
	})
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets securityHeaders on every response
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range securityHeaders {
			h.Set(kv[0], kv[1])
		}
		next.ServeHTTP(w, r)
	})
}
