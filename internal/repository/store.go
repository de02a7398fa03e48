package repository

import "context"

// Store is the full storage surface a backend provides
type Store interface {
	Ledger
	Season
	EventLog

	// Ping reports whether the backend is reachable (readiness probe)
	Ping(ctx context.Context) error

	Close()
}
