package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// clientWindow counts one address's traffic inside a fixed window
type clientWindow struct {
	start    time.Time
	requests int
	failures int
}

// ClientGuard keeps per-address request and failed-auth counts in fixed
// windows and resolves the client address behind trusted proxies.
type ClientGuard struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	trusted []string
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewClientGuard allows RateLimitPerWindow requests per RateLimitWindow per address
func NewClientGuard(trustedProxies []string) *ClientGuard {
	return &ClientGuard{
		clients: make(map[string]*clientWindow),
		trusted: trustedProxies,
		limit:   RateLimitPerWindow,
		window:  RateLimitWindow,
		now:     time.Now,
	}
}

// current returns ip's window, opening a new one when the old has expired.
// Expired windows of other clients are swept on the way. Caller holds mu.
func (g *ClientGuard) current(ip string) *clientWindow {
	now := g.now()
	for k, w := range g.clients {
		if now.Sub(w.start) >= g.window {
			delete(g.clients, k)
		}
	}
	w, ok := g.clients[ip]
	if !ok {
		w = &clientWindow{start: now}
		g.clients[ip] = w
	}
	return w
}

// Allow records a request from ip and reports whether it is within budget
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.current(ip)
	w.requests++
	if w.requests <= g.limit {
		return true
	}
	if (w.requests-g.limit)%RateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// FailedAuth records a rejected key from ip and returns the window's failure count
func (g *ClientGuard) FailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.current(ip)
	w.failures++
	if w.failures >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failures)
	}
	return w.failures
}

// ClientIP returns the peer address, or the rightmost X-Forwarded-For hop
// when the peer is a trusted proxy.
func (g *ClientGuard) ClientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(g.trusted, peer) {
		return peer
	}
	fwd := r.Header.Get(HeaderForwardedFor)
	if fwd == "" {
		return peer
	}
	hops := strings.Split(fwd, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// RateLimitMiddleware answers 429 once an address exceeds its window budget
func RateLimitMiddleware(guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(guard.ClientIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
