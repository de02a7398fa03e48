package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// Store is the storage surface export and import need
type Store interface {
	repository.Ledger
	repository.Season
}

// Export reads the full farm state
func Export(ctx context.Context, store Store) (*Snapshot, error) {
	ledgers, err := store.ListLedgers(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgExportLedgers, err)
	}
	clock, err := store.GetSeasonClock(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgExportSeason, err)
	}

	snap := &Snapshot{
		Header:  Header{CreatedAt: time.Now().UTC()},
		Season:  *clock,
		Ledgers: ledgers,
	}
	slog.Default().Info(LogMsgExported, "ledgers", len(ledgers), "days_passed", clock.DaysPassed)
	return snap, nil
}

// Import writes every ledger and then the season clock. Each ledger is
// upserted in its own transaction; an error stops the import and keeps the
// ledgers already written.
func Import(ctx context.Context, store Store, snap *Snapshot) error {
	for _, l := range snap.Ledgers {
		if err := importLedger(ctx, store, l); err != nil {
			return fmt.Errorf(ErrMsgImportLedger, l.PlayerID, err)
		}
	}

	if err := importSeason(ctx, store, snap.Season); err != nil {
		return fmt.Errorf(ErrMsgImportSeason, err)
	}

	slog.Default().Info(LogMsgImported, "ledgers", len(snap.Ledgers), "days_passed", snap.Season.DaysPassed)
	return nil
}

func importLedger(ctx context.Context, store Store, l *domain.PlayerLedger) error {
	tx, err := store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpsertLedger(ctx, l); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func importSeason(ctx context.Context, store Store, c domain.SeasonClock) error {
	tx, err := store.BeginSeasonTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	// Take the row lock so a running server cannot interleave a day advance
	if _, err := tx.GetSeasonClockForUpdate(ctx); err != nil {
		return err
	}
	if err := tx.SaveSeasonClock(ctx, &c); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
