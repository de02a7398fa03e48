// Package sqlite implements the repository interfaces on an embedded SQLite
// file through modernc.org/sqlite. Transactions start with BEGIN IMMEDIATE and
// ledger rows are additionally serialized in-process per player.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/osse101/FarmEconomy_Go/internal/concurrency"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// Store implements repository.Store
type Store struct {
	db    *sql.DB
	locks *concurrency.LockManager
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store over an open, migrated database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, locks: concurrency.NewLockManager()}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() {
	_ = s.db.Close()
}

func dbError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, msg, err)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// toNanos stores the zero time as 0 so it survives the round trip
func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

// sqlTx adapts *sql.Tx to repository.Tx and releases held locks when it ends
type sqlTx struct {
	tx      *sql.Tx
	unlocks []func()
}

func (t *sqlTx) hold(unlock func()) {
	t.unlocks = append(t.unlocks, unlock)
}

func (t *sqlTx) release() {
	for _, unlock := range t.unlocks {
		unlock()
	}
	t.unlocks = nil
}

func (t *sqlTx) Commit(ctx context.Context) error {
	defer t.release()
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
		}
		return dbError(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *sqlTx) Rollback(ctx context.Context) error {
	defer t.release()
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("%w: %w", repository.ErrTxClosed, err)
	}
	return err
}

func (s *Store) begin(ctx context.Context) (*sqlTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, dbError(ErrMsgFailedToBeginTransaction, err)
	}
	return &sqlTx{tx: tx}, nil
}
