package sqlite

import (
	"context"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

func getSeasonClock(ctx context.Context, q querier) (*domain.SeasonClock, error) {
	var (
		season                    int64
		days, startDay, updatedAt int64
	)
	row := q.QueryRowContext(ctx, `SELECT `+seasonClockColumns+` FROM season_clock WHERE id = 1`)
	if err := row.Scan(&season, &days, &startDay, &updatedAt); err != nil {
		return nil, dbError(ErrMsgFailedToGetSeasonClock, err)
	}
	return &domain.SeasonClock{
		CurrentSeason:  domain.Season(season),
		DaysPassed:     uint32(days),
		SeasonStartDay: uint32(startDay),
		UpdatedAt:      fromNanos(updatedAt),
	}, nil
}

// GetSeasonClock returns the global clock
func (s *Store) GetSeasonClock(ctx context.Context) (*domain.SeasonClock, error) {
	return getSeasonClock(ctx, s.db)
}

// BeginSeasonTx starts a transaction and returns a SeasonTx
func (s *Store) BeginSeasonTx(ctx context.Context) (repository.SeasonTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &seasonTx{sqlTx: tx, store: s}, nil
}

// seasonTx implements repository.SeasonTx
type seasonTx struct {
	*sqlTx
	store *Store
}

func (t *seasonTx) GetSeasonClockForUpdate(ctx context.Context) (*domain.SeasonClock, error) {
	t.hold(t.store.locks.Lock(seasonLockKey))
	return getSeasonClock(ctx, t.tx)
}

func (t *seasonTx) SaveSeasonClock(ctx context.Context, c *domain.SeasonClock) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE season_clock
		SET current_season = ?, days_passed = ?, season_start_day = ?, updated_at = ?
		WHERE id = 1`,
		int64(c.CurrentSeason), int64(c.DaysPassed), int64(c.SeasonStartDay), toNanos(c.UpdatedAt))
	if err != nil {
		return dbError(ErrMsgFailedToSaveSeasonClock, err)
	}
	return nil
}
