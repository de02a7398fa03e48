package repository

import (
	"context"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Ledger persists one PlayerLedger per player id
type Ledger interface {
	// GetLedger returns a read-only copy. Missing players yield domain.ErrPlayerNotFound.
	GetLedger(ctx context.Context, playerID string) (*domain.PlayerLedger, error)

	// CreateLedger inserts a new ledger. Existing players yield domain.ErrPlayerAlreadyExists.
	CreateLedger(ctx context.Context, ledger *domain.PlayerLedger) error

	// ListLedgers returns every ledger ordered by player id (snapshot export)
	ListLedgers(ctx context.Context) ([]*domain.PlayerLedger, error)

	// Transaction support
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx serializes mutations of a single ledger
type LedgerTx interface {
	Tx

	// GetLedgerForUpdate loads the ledger and holds its row lock until commit
	GetLedgerForUpdate(ctx context.Context, playerID string) (*domain.PlayerLedger, error)

	// SaveLedger writes the ledger back and bumps UpdatedAt
	SaveLedger(ctx context.Context, ledger *domain.PlayerLedger) error

	// UpsertLedger inserts or replaces a ledger (snapshot import)
	UpsertLedger(ctx context.Context, ledger *domain.PlayerLedger) error
}
