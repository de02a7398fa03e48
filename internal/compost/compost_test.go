package compost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/utils"
)

const start int64 = 1_700_000_000

func TestEngine_Collect(t *testing.T) {
	tests := []struct {
		name        string
		bins        uint8
		elapsed     int64
		fertilizer  uint16
		wantGained  uint16
		wantDays    int64
		wantAdvance bool
	}{
		{"one bin one day", 1, domain.SecondsPerDay, 5, 1, 1, true},
		{"three bins two and a half days", 3, domain.SecondsPerDay*2 + domain.SecondsPerDay/2, 5, 6, 2, true},
		{"under a day is a no-op", 4, domain.SecondsPerDay - 1, 5, 0, 0, false},
		{"saturates", 255, domain.SecondsPerDay * 1000, 65000, 535, 1000, true},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := domain.NewPlayerLedger("p", time.Unix(start, 0))
			l.Structures.CompostBins = tt.bins
			l.Tools.Fertilizer = tt.fertilizer

			res, err := engine.Collect(l, start+tt.elapsed)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGained, res.FertilizerGained)
			assert.Equal(t, tt.wantDays, res.DaysElapsed)
			assert.Equal(t, utils.SaturatingAdd(tt.fertilizer, tt.wantGained, utils.MaxOf[uint16]()), l.Tools.Fertilizer)
			if tt.wantAdvance {
				assert.Equal(t, start+tt.elapsed, l.LastCompostCollection)
			} else {
				assert.Equal(t, start, l.LastCompostCollection)
			}
		})
	}
}

func TestEngine_CollectWithoutBins(t *testing.T) {
	l := domain.NewPlayerLedger("p", time.Unix(start, 0))

	_, err := NewEngine().Collect(l, start+domain.SecondsPerDay*3)
	assert.ErrorIs(t, err, domain.ErrNoCompostBins)
	assert.Equal(t, start, l.LastCompostCollection)
}

func TestEngine_DaysSinceClockSkew(t *testing.T) {
	assert.Zero(t, NewEngine().DaysSince(start, start-100))
}
