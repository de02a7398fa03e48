package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/eventlog"
	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
	"github.com/osse101/FarmEconomy_Go/internal/season"
	"github.com/osse101/FarmEconomy_Go/internal/server"
	"github.com/osse101/FarmEconomy_Go/internal/stream"
	"github.com/osse101/FarmEconomy_Go/mocks"
)

const (
	testAPIKey   = "api-key"
	testAdminKey = "admin-key"
	testPlayer   = "6f1c2a4e-9d3b-4c5e-8f7a-1b2c3d4e5f60"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type fixture struct {
	farm   *mocks.MockFarmService
	season *mocks.MockSeasonService
	router http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	names, err := naming.NewResolver("")
	require.NoError(t, err)

	f := &fixture{
		farm:   mocks.NewMockFarmService(t),
		season: mocks.NewMockSeasonService(t),
	}
	f.router = server.NewRouter(server.Config{
		APIKey:      testAPIKey,
		AdminAPIKey: testAdminKey,
	}, server.Deps{
		Store:    okPinger{},
		Farm:     f.farm,
		Season:   f.season,
		EventLog: eventlog.NewService(mocks.NewMockEventLogRepository(t)),
		Names:    names,
		Hub:      stream.NewHub(),
	})
	return f
}

func (f *fixture) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := f.do(http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/v1/season", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodGet, "/api/v1/season", map[string]string{server.HeaderAPIKey: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_GetLedger(t *testing.T) {
	f := newFixture(t)
	f.farm.On("GetLedger", mock.Anything, testPlayer).Return(&domain.PlayerLedger{PlayerID: testPlayer, Coins: 40}, nil)

	w := f.do(http.MethodGet, "/api/v1/farm", map[string]string{
		server.HeaderAPIKey:   testAPIKey,
		server.HeaderPlayerID: testPlayer,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var ledger domain.PlayerLedger
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ledger))
	assert.Equal(t, testPlayer, ledger.PlayerID)
	assert.Equal(t, uint64(40), ledger.Coins)
}

func TestRouter_PlayerIdentity(t *testing.T) {
	tests := []struct {
		name           string
		playerID       string
		expectedStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			headers := map[string]string{server.HeaderAPIKey: testAPIKey}
			if tt.playerID != "" {
				headers[server.HeaderPlayerID] = tt.playerID
			}
			w := f.do(http.MethodGet, "/api/v1/farm", headers)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_AdminRoutes(t *testing.T) {
	t.Run("rejects missing admin key", func(t *testing.T) {
		f := newFixture(t)
		w := f.do(http.MethodPost, "/api/v1/season/advance", map[string]string{server.HeaderAPIKey: testAPIKey})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("advances with admin key", func(t *testing.T) {
		f := newFixture(t)
		f.season.On("AdvanceDay", mock.Anything).Return(&domain.SeasonClock{DaysPassed: 1}, nil)
		f.season.On("Lengths").Return(season.DefaultLengths())

		w := f.do(http.MethodPost, "/api/v1/season/advance", map[string]string{
			server.HeaderAPIKey:   testAPIKey,
			server.HeaderAdminKey: testAdminKey,
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("season read needs no admin key", func(t *testing.T) {
		f := newFixture(t)
		f.season.On("GetSeason", mock.Anything).Return(&domain.SeasonClock{}, nil)
		f.season.On("Lengths").Return(season.DefaultLengths())

		w := f.do(http.MethodGet, "/api/v1/season", map[string]string{server.HeaderAPIKey: testAPIKey})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_GzipCatalog(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/v1/catalog", map[string]string{
		server.HeaderAPIKey: testAPIKey,
		"Accept-Encoding":   "gzip",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestIdentityMiddleware_Canonicalizes(t *testing.T) {
	var got string
	h := server.IdentityMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = farm.CallerFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(server.HeaderPlayerID, "6F1C2A4E-9D3B-4C5E-8F7A-1B2C3D4E5F60")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, testPlayer, got)
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		configured     string
		provided       string
		expectedStatus int
	}{
		{"matching key", "k", "k", http.StatusOK},
		{"wrong key", "k", "x", http.StatusForbidden},
		{"missing key", "k", "", http.StatusForbidden},
		{"unconfigured rejects all", "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := server.AdminMiddleware(tt.configured)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.provided != "" {
				req.Header.Set(server.HeaderAdminKey, tt.provided)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
