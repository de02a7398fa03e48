// Package storetest is the behavioural suite every repository.Store backend must pass.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// Factory returns an empty, migrated store. Cleanup is registered on t.
type Factory func(t *testing.T) repository.Store

var base = time.Unix(1_700_000_000, 0).UTC()

// Run executes the full suite against stores produced by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("LedgerRoundTrip", func(t *testing.T) { testLedgerRoundTrip(t, newStore(t)) })
	t.Run("LedgerNotFound", func(t *testing.T) { testLedgerNotFound(t, newStore(t)) })
	t.Run("LedgerDuplicate", func(t *testing.T) { testLedgerDuplicate(t, newStore(t)) })
	t.Run("TxCommit", func(t *testing.T) { testTxCommit(t, newStore(t)) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, newStore(t)) })
	t.Run("SaveMissingLedger", func(t *testing.T) { testSaveMissing(t, newStore(t)) })
	t.Run("UpsertAndList", func(t *testing.T) { testUpsertAndList(t, newStore(t)) })
	t.Run("ConcurrentMutations", func(t *testing.T) { testConcurrentMutations(t, newStore(t)) })
	t.Run("SeasonClock", func(t *testing.T) { testSeasonClock(t, newStore(t)) })
	t.Run("EventLog", func(t *testing.T) { testEventLog(t, newStore(t)) })
	t.Run("Ping", func(t *testing.T) { assert.NoError(t, newStore(t).Ping(context.Background())) })
}

func newLedger(t *testing.T) *domain.PlayerLedger {
	t.Helper()
	l := domain.NewPlayerLedger(uuid.NewString(), base)
	l.Plots[3].Crop = domain.CropCorn
	l.Plots[3].PlantedAt = base.Unix()
	l.Plots[3].PlantedInSeason = domain.SeasonPtr(domain.SeasonSummer)
	l.CraftingJob = &domain.CraftingJob{ItemID: domain.ItemFence, StartedAt: base.Unix(), Duration: 2700}
	return l
}

// requireSameLedger compares ledgers with time fields checked by instant
func requireSameLedger(t *testing.T, want, got *domain.PlayerLedger) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated_at %v != %v", want.UpdatedAt, got.UpdatedAt)

	w, g := want.Clone(), got.Clone()
	w.CreatedAt, w.UpdatedAt = time.Time{}, time.Time{}
	g.CreatedAt, g.UpdatedAt = time.Time{}, time.Time{}
	assert.Equal(t, w, g)
}

func testLedgerRoundTrip(t *testing.T, s repository.Store) {
	ctx := context.Background()
	want := newLedger(t)
	require.NoError(t, s.CreateLedger(ctx, want))

	got, err := s.GetLedger(ctx, want.PlayerID)
	require.NoError(t, err)
	requireSameLedger(t, want, got)
	require.NotNil(t, got.Plots[3].PlantedInSeason)
	assert.Equal(t, domain.SeasonSummer, *got.Plots[3].PlantedInSeason)
}

func testLedgerNotFound(t *testing.T, s repository.Store) {
	_, err := s.GetLedger(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func testLedgerDuplicate(t *testing.T, s repository.Store) {
	ctx := context.Background()
	l := newLedger(t)
	require.NoError(t, s.CreateLedger(ctx, l))
	assert.ErrorIs(t, s.CreateLedger(ctx, l), domain.ErrPlayerAlreadyExists)
}

func testTxCommit(t *testing.T, s repository.Store) {
	ctx := context.Background()
	l := newLedger(t)
	require.NoError(t, s.CreateLedger(ctx, l))

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetLedgerForUpdate(ctx, l.PlayerID)
	require.NoError(t, err)
	locked.Coins = 250
	locked.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, tx.SaveLedger(ctx, locked))
	require.NoError(t, tx.Commit(ctx))

	got, err := s.GetLedger(ctx, l.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), got.Coins)
	assert.True(t, got.UpdatedAt.Equal(base.Add(time.Hour)))
}

func testTxRollback(t *testing.T, s repository.Store) {
	ctx := context.Background()
	l := newLedger(t)
	require.NoError(t, s.CreateLedger(ctx, l))

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetLedgerForUpdate(ctx, l.PlayerID)
	require.NoError(t, err)
	locked.Coins = 999
	require.NoError(t, tx.SaveLedger(ctx, locked))
	require.NoError(t, tx.Rollback(ctx))

	// a second rollback reports the closed transaction
	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)

	got, err := s.GetLedger(ctx, l.PlayerID)
	require.NoError(t, err)
	assert.Zero(t, got.Coins)
}

func testSaveMissing(t *testing.T, s repository.Store) {
	ctx := context.Background()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.GetLedgerForUpdate(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, tx.SaveLedger(ctx, newLedger(t)), domain.ErrPlayerNotFound)
}

func testUpsertAndList(t *testing.T, s repository.Store) {
	ctx := context.Background()
	a, b := newLedger(t), newLedger(t)
	require.NoError(t, s.CreateLedger(ctx, a))

	a.Coins = 42
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.UpsertLedger(ctx, a))
	require.NoError(t, tx.UpsertLedger(ctx, b))
	require.NoError(t, tx.Commit(ctx))

	all, err := s.ListLedgers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].PlayerID, all[1].PlayerID)

	got, err := s.GetLedger(ctx, a.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.Coins)
}

func testConcurrentMutations(t *testing.T, s repository.Store) {
	ctx := context.Background()
	l := newLedger(t)
	require.NoError(t, s.CreateLedger(ctx, l))

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- increment(ctx, s, l.PlayerID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := s.GetLedger(ctx, l.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, uint64(workers), got.Coins, "lost update under concurrent mutation")
}

func increment(ctx context.Context, s repository.Store, playerID string) error {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	l, err := tx.GetLedgerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}
	l.Coins++
	if err := tx.SaveLedger(ctx, l); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func testSeasonClock(t *testing.T, s repository.Store) {
	ctx := context.Background()

	c, err := s.GetSeasonClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonSpring, c.CurrentSeason)
	assert.Zero(t, c.DaysPassed)

	tx, err := s.BeginSeasonTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetSeasonClockForUpdate(ctx)
	require.NoError(t, err)
	locked.CurrentSeason = domain.SeasonFall
	locked.DaysPassed = 64
	locked.SeasonStartDay = 60
	locked.UpdatedAt = base
	require.NoError(t, tx.SaveSeasonClock(ctx, locked))
	require.NoError(t, tx.Commit(ctx))

	c, err = s.GetSeasonClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonFall, c.CurrentSeason)
	assert.Equal(t, uint32(64), c.DaysPassed)
	assert.Equal(t, uint32(60), c.SeasonStartDay)
	assert.True(t, c.UpdatedAt.Equal(base))
}

func testEventLog(t *testing.T, s repository.Store) {
	ctx := context.Background()
	alice, bob := uuid.NewString(), uuid.NewString()

	for i, e := range []struct {
		typ    string
		player *string
	}{
		{"farm.crop_planted", &alice},
		{"farm.crop_harvested", &alice},
		{"farm.crop_planted", &bob},
		{"season.day_advanced", nil},
	} {
		payload := map[string]interface{}{"n": float64(i)}
		require.NoError(t, s.LogEvent(ctx, e.typ, e.player, payload, map[string]interface{}{"source": "test"}))
	}

	byAlice, err := s.GetEvents(ctx, repository.EventLogFilter{PlayerID: &alice})
	require.NoError(t, err)
	require.Len(t, byAlice, 2)
	// newest first
	assert.Equal(t, "farm.crop_harvested", byAlice[0].EventType)
	assert.Equal(t, float64(1), byAlice[0].Payload["n"])
	assert.Equal(t, "test", byAlice[0].Metadata["source"])
	require.NotNil(t, byAlice[0].PlayerID)
	assert.Equal(t, alice, *byAlice[0].PlayerID)

	planted := "farm.crop_planted"
	byType, err := s.GetEvents(ctx, repository.EventLogFilter{EventType: &planted})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	limited, err := s.GetEvents(ctx, repository.EventLogFilter{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, limited, 3)
	assert.Nil(t, limited[0].PlayerID)

	future := time.Now().Add(time.Hour)
	none, err := s.GetEvents(ctx, repository.EventLogFilter{Since: &future})
	require.NoError(t, err)
	assert.Empty(t, none)

	deleted, err := s.CleanupOldEvents(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, deleted, "fresh events survive a one day retention")
}
