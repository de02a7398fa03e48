// Package postgres implements the repository interfaces on PostgreSQL via pgx.
// Ledgers are stored as JSONB documents and locked with SELECT ... FOR UPDATE.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// Store implements repository.Store
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store over an open pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}

// dbError wraps a driver failure so callers can match domain.ErrDatabaseError
func dbError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, msg, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// pgTx adapts pgx.Tx to repository.Tx
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return dbError(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *pgTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (s *Store) begin(ctx context.Context) (pgTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return pgTx{}, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	return pgTx{tx: tx}, nil
}
