package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// querier is the subset shared by the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanLedger(row pgx.Row, playerID string) (*domain.PlayerLedger, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, dbError(ErrMsgFailedToGetLedger, err)
	}
	return decodeLedger(data)
}

func decodeLedger(data []byte) (*domain.PlayerLedger, error) {
	var l domain.PlayerLedger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalLedger, err)
	}
	return &l, nil
}

func getLedger(ctx context.Context, q querier, playerID string, forUpdate bool) (*domain.PlayerLedger, error) {
	query := `SELECT ledger FROM player_ledgers WHERE player_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return scanLedger(q.QueryRow(ctx, query, playerID), playerID)
}

// GetLedger returns the stored ledger for playerID
func (s *Store) GetLedger(ctx context.Context, playerID string) (*domain.PlayerLedger, error) {
	return getLedger(ctx, s.db, playerID, false)
}

// CreateLedger inserts a new ledger
func (s *Store) CreateLedger(ctx context.Context, ledger *domain.PlayerLedger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalLedger, err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO player_ledgers (player_id, ledger, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		ledger.PlayerID, data, ledger.CreatedAt, ledger.UpdatedAt)
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
	rows, err := s.db.Query(ctx, `SELECT ledger FROM player_ledgers ORDER BY player_id`)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListLedgers, err)
	}
	defer rows.Close()

	var out []*domain.PlayerLedger
	for rows.Next() {
		var data []byte
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
	return &ledgerTx{pgTx: tx}, nil
}

// ledgerTx implements repository.LedgerTx
type ledgerTx struct {
	pgTx
}

func (t *ledgerTx) GetLedgerForUpdate(ctx context.Context, playerID string) (*domain.PlayerLedger, error) {
	return getLedger(ctx, t.tx, playerID, true)
}

func (t *ledgerTx) SaveLedger(ctx context.Context, ledger *domain.PlayerLedger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalLedger, err)
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE player_ledgers SET ledger = $2, updated_at = $3
		WHERE player_id = $1`,
		ledger.PlayerID, data, ledger.UpdatedAt)
	if err != nil {
		return dbError(ErrMsgFailedToUpdateLedger, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, ledger.PlayerID)
	}
	return nil
}

func (t *ledgerTx) UpsertLedger(ctx context.Context, ledger *domain.PlayerLedger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalLedger, err)
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO player_ledgers (player_id, ledger, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id) DO UPDATE
		SET ledger = EXCLUDED.ledger, updated_at = EXCLUDED.updated_at`,
		ledger.PlayerID, data, ledger.CreatedAt, ledger.UpdatedAt)
	if err != nil {
		return dbError(ErrMsgFailedToUpdateLedger, err)
	}
	return nil
}
