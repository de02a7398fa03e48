package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// querier is the subset shared by *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func decodeLedger(data string) (*domain.PlayerLedger, error) {
	var l domain.PlayerLedger
	if err := json.Unmarshal([]byte(data), &l); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalLedger, err)
	}
	return &l, nil
}

func getLedger(ctx context.Context, q querier, playerID string) (*domain.PlayerLedger, error) {
	var data string
	err := q.QueryRowContext(ctx, `SELECT ledger FROM player_ledgers WHERE player_id = ?`, playerID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, dbError(ErrMsgFailedToGetLedger, err)
	}
	return decodeLedger(data)
}

// GetLedger returns the stored ledger for playerID
func (s *Store) GetLedger(ctx context.Context, playerID string) (*domain.PlayerLedger, error) {
	return getLedger(ctx, s.db, playerID)
}

// CreateLedger inserts a new ledger
func (s *Store) CreateLedger(ctx context.Context, ledger *domain.PlayerLedger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalLedger, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO player_ledgers (player_id, ledger, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		ledger.PlayerID, string(data), toNanos(ledger.CreatedAt), toNanos(ledger.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrPlayerAlreadyExists, ledger.PlayerID)
		}
		return dbError(ErrMsgFailedToInsertLedger, err)
	}
	return nil
}

// ListLedgers returns every ledger ordered by player id
func (s *Store) ListLedgers(ctx context.Context) ([]*domain.PlayerLedger, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ledger FROM player_ledgers ORDER BY player_id`)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListLedgers, err)
	}
	defer rows.Close()

	var out []*domain.PlayerLedger
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, dbError(ErrMsgFailedToListLedgers, err)
		}
		l, err := decodeLedger(data)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToListLedgers, err)
	}
	return out, nil
}

// BeginTx starts a transaction and returns a LedgerTx
func (s *Store) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{sqlTx: tx, store: s}, nil
}

// ledgerTx implements repository.LedgerTx
type ledgerTx struct {
	*sqlTx
	store *Store
}

// GetLedgerForUpdate holds the player's lock until the transaction ends
func (t *ledgerTx) GetLedgerForUpdate(ctx context.Context, playerID string) (*domain.PlayerLedger, error) {
	t.hold(t.store.locks.Lock(ledgerLockPrefix + playerID))
	return getLedger(ctx, t.tx, playerID)
}

func (t *ledgerTx) SaveLedger(ctx context.Context, ledger *domain.PlayerLedger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalLedger, err)
	}

	res, err := t.tx.ExecContext(ctx, `
		UPDATE player_ledgers SET ledger = ?, updated_at = ?
		WHERE player_id = ?`,
		string(data), toNanos(ledger.UpdatedAt), ledger.PlayerID)
	if err != nil {
		return dbError(ErrMsgFailedToUpdateLedger, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(ErrMsgFailedToUpdateLedger, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, ledger.PlayerID)
	}
	return nil
}

func (t *ledgerTx) UpsertLedger(ctx context.Context, ledger *domain.PlayerLedger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalLedger, err)
	}

	_, err = t.tx.ExecContext(ctx, `
		INSERT INTO player_ledgers (player_id, ledger, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (player_id) DO UPDATE
		SET ledger = excluded.ledger, updated_at = excluded.updated_at`,
		ledger.PlayerID, string(data), toNanos(ledger.CreatedAt), toNanos(ledger.UpdatedAt))
	if err != nil {
		return dbError(ErrMsgFailedToUpdateLedger, err)
	}
	return nil
}
