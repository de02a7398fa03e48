package snapshot

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/database"
	"github.com/osse101/FarmEconomy_Go/internal/database/sqlite"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
	"github.com/osse101/FarmEconomy_Go/mocks"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func compress(t *testing.T, lines ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.Bytes()
}

func sampleSnapshot() *Snapshot {
	a := domain.NewPlayerLedger("0b5c3f52-4f8e-4f61-9f0e-2c7a6a0d9e11", base)
	a.Coins = 120
	a.Plots[4].Crop = domain.CropTomato
	a.Plots[4].PlantedAt = base.Unix()
	b := domain.NewPlayerLedger("7d0e8b0a-3a1c-4f2e-8d9b-5e6f7a8b9c0d", base)
	b.Tools.Fertilizer = 9

	return &Snapshot{
		Header:  Header{CreatedAt: base},
		Season:  domain.SeasonClock{CurrentSeason: domain.SeasonFall, DaysPassed: 64, SeasonStartDay: 60, UpdatedAt: base},
		Ledgers: []*domain.PlayerLedger{a, b},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot()))

	got, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, got.Header.Version)
	assert.Equal(t, HeaderKind, got.Header.Kind)
	assert.Equal(t, 2, got.Header.Ledgers)
	assert.True(t, base.Equal(got.Header.CreatedAt))

	assert.Equal(t, domain.SeasonFall, got.Season.CurrentSeason)
	assert.Equal(t, uint32(64), got.Season.DaysPassed)
	assert.Equal(t, uint32(60), got.Season.SeasonStartDay)

	require.Len(t, got.Ledgers, 2)
	assert.Equal(t, uint64(120), got.Ledgers[0].Coins)
	assert.Equal(t, domain.CropTomato, got.Ledgers[0].Plots[4].Crop)
	assert.Equal(t, uint16(9), got.Ledgers[1].Tools.Fertilizer)
}

func TestWriteFile_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "farm.jsonl.zst")
	require.NoError(t, WriteFile(path, sampleSnapshot()))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got.Ledgers, 2)
}

func TestRead_Rejects(t *testing.T) {
	const header = `{"version":1,"kind":"farm-snapshot","ledgers":0}`
	const season = `{"kind":"season","season":{"current_season":0}}`

	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{"not zstd", []byte("plain text"), ""},
		{"wrong kind", compress(t, `{"version":1,"kind":"other"}`, season), "expected kind"},
		{"future version", compress(t, `{"version":9,"kind":"farm-snapshot"}`, season), "unsupported version 9"},
		{"missing season", compress(t, header), ErrMsgMissingSeason},
		{"duplicate season", compress(t, header, season, season), ErrMsgDuplicateSeason},
		{"unknown record", compress(t, header, season, `{"kind":"barn"}`), `unknown record kind "barn" on line 3`},
		{"count mismatch", compress(t, `{"version":1,"kind":"farm-snapshot","ledgers":2}`, season), "promises 2 ledgers, found 0"},
		{"truncated record", compress(t, header, `{"kind":"season",`), "decode line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tt.data))
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func newSQLiteStore(t *testing.T) repository.Store {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "farm.db"))
	require.NoError(t, err)
	_, err = database.Migrate(context.Background(), db, database.DialectSQLite)
	require.NoError(t, err)

	s := sqlite.NewStore(db)
	t.Cleanup(s.Close)
	return s
}

func TestExportImport_SQLite(t *testing.T) {
	ctx := context.Background()
	src := newSQLiteStore(t)
	dst := newSQLiteStore(t)

	for _, l := range sampleSnapshot().Ledgers {
		require.NoError(t, src.CreateLedger(ctx, l))
	}
	tx, err := src.BeginSeasonTx(ctx)
	require.NoError(t, err)
	_, err = tx.GetSeasonClockForUpdate(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveSeasonClock(ctx, &domain.SeasonClock{
		CurrentSeason: domain.SeasonWinter, DaysPassed: 95, SeasonStartDay: 90, UpdatedAt: base,
	}))
	require.NoError(t, tx.Commit(ctx))

	snap, err := Export(ctx, src)
	require.NoError(t, err)
	require.Len(t, snap.Ledgers, 2)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap))
	decoded, err := Read(&buf)
	require.NoError(t, err)

	require.NoError(t, Import(ctx, dst, decoded))
	// Importing twice upserts instead of failing on existing players
	require.NoError(t, Import(ctx, dst, decoded))

	clock, err := dst.GetSeasonClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SeasonWinter, clock.CurrentSeason)
	assert.Equal(t, uint32(95), clock.DaysPassed)
	assert.Equal(t, uint32(90), clock.SeasonStartDay)

	for _, want := range snap.Ledgers {
		got, err := dst.GetLedger(ctx, want.PlayerID)
		require.NoError(t, err)
		assert.Equal(t, want.Coins, got.Coins)
		assert.Equal(t, want.Tools.Fertilizer, got.Tools.Fertilizer)
		assert.Equal(t, want.Plots[4].Crop, got.Plots[4].Crop)
	}
}

type mockStore struct {
	*mocks.MockLedgerRepository
	*mocks.MockSeasonRepository
}

func TestImport_StopsOnLedgerError(t *testing.T) {
	ledgers := mocks.NewMockLedgerRepository(t)
	seasons := mocks.NewMockSeasonRepository(t)
	ledgers.On("BeginTx", mock.Anything).Return(nil, errors.New("disk full")).Once()

	snap := sampleSnapshot()
	err := Import(context.Background(), mockStore{ledgers, seasons}, snap)

	require.Error(t, err)
	assert.Contains(t, err.Error(), snap.Ledgers[0].PlayerID)
	assert.Contains(t, err.Error(), "disk full")
	seasons.AssertNotCalled(t, "BeginSeasonTx", mock.Anything)
}

func TestExport_PropagatesErrors(t *testing.T) {
	ledgers := mocks.NewMockLedgerRepository(t)
	seasons := mocks.NewMockSeasonRepository(t)
	ledgers.On("ListLedgers", mock.Anything).Return([]*domain.PlayerLedger{}, nil)
	seasons.On("GetSeasonClock", mock.Anything).Return(nil, domain.ErrDatabaseError)

	_, err := Export(context.Background(), mockStore{ledgers, seasons})
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}
