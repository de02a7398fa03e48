package postgres

import (
	"context"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

func getSeasonClock(ctx context.Context, q querier, forUpdate bool) (*domain.SeasonClock, error) {
	query := `SELECT ` + seasonClockColumns + ` FROM season_clock WHERE id = 1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		season         int16
		days, startDay int64
		c              domain.SeasonClock
	)
	// the init migration seeds the row, so ErrNoRows also means a database error
	if err := q.QueryRow(ctx, query).Scan(&season, &days, &startDay, &c.UpdatedAt); err != nil {
		return nil, dbError(ErrMsgFailedToGetSeasonClock, err)
	}
	c.CurrentSeason = domain.Season(season)
	c.DaysPassed = uint32(days)
	c.SeasonStartDay = uint32(startDay)
	return &c, nil
}

// GetSeasonClock returns the global clock
func (s *Store) GetSeasonClock(ctx context.Context) (*domain.SeasonClock, error) {
	return getSeasonClock(ctx, s.db, false)
}

// BeginSeasonTx starts a transaction and returns a SeasonTx
func (s *Store) BeginSeasonTx(ctx context.Context) (repository.SeasonTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &seasonTx{pgTx: tx}, nil
}

// seasonTx implements repository.SeasonTx
type seasonTx struct {
	pgTx
}

func (t *seasonTx) GetSeasonClockForUpdate(ctx context.Context) (*domain.SeasonClock, error) {
	return getSeasonClock(ctx, t.tx, true)
}

func (t *seasonTx) SaveSeasonClock(ctx context.Context, c *domain.SeasonClock) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE season_clock
		SET current_season = $1, days_passed = $2, season_start_day = $3, updated_at = $4
		WHERE id = 1`,
		int16(c.CurrentSeason), int64(c.DaysPassed), int64(c.SeasonStartDay), c.UpdatedAt)
	if err != nil {
		return dbError(ErrMsgFailedToSaveSeasonClock, err)
	}
	return nil
}
