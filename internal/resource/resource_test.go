package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
)

// Timestamps are offset from a non-zero base because zero means "never gathered".
const base int64 = 1_700_000_000

func newLedger() *domain.PlayerLedger {
	return domain.NewPlayerLedger("player-1", time.Unix(base, 0))
}

func TestGather_Cooldown(t *testing.T) {
	l := newLedger()

	res, err := Gather(l, domain.ResourceWood, 5, base)
	require.NoError(t, err)
	assert.Equal(t, uint16(15), res.NewTotal)

	_, err = Gather(l, domain.ResourceWood, 5, base+3000)
	assert.ErrorIs(t, err, domain.ErrGatherCooldownActive)
	assert.Equal(t, uint16(15), l.Resources.Wood)

	res, err = Gather(l, domain.ResourceWood, 5, base+3600)
	require.NoError(t, err)
	assert.Equal(t, uint16(20), res.NewTotal)
	assert.Equal(t, base+3600, l.LastGatherTime[domain.ResourceWood])
}

func TestGather_ZeroTimestampMeansNeverGathered(t *testing.T) {
	l := newLedger()

	_, err := Gather(l, domain.ResourceWood, 5, 0)
	require.NoError(t, err)
	assert.Zero(t, l.LastGatherTime[domain.ResourceWood])

	// a gather at t=0 leaves no cooldown behind
	res, err := Gather(l, domain.ResourceWood, 5, 3000)
	require.NoError(t, err)
	assert.Equal(t, uint16(20), res.NewTotal)

	_, err = Gather(l, domain.ResourceWood, 5, 3100)
	assert.ErrorIs(t, err, domain.ErrGatherCooldownActive)
}

func TestGather_CooldownsAreIndependent(t *testing.T) {
	l := newLedger()

	_, err := Gather(l, domain.ResourceWood, 1, base)
	require.NoError(t, err)
	_, err = Gather(l, domain.ResourceStone, 3, base+1)
	require.NoError(t, err)
	_, err = Gather(l, domain.ResourceFiber, 8, base+2)
	require.NoError(t, err)

	_, err = Gather(l, domain.ResourceFiber, 8, base+1802)
	assert.NoError(t, err)
}

func TestGather_Validation(t *testing.T) {
	tests := []struct {
		name     string
		resource domain.ResourceType
		amount   uint16
		wantErr  error
	}{
		{"zero amount", domain.ResourceWood, 0, domain.ErrGatherAmountExceeded},
		{"over per action", domain.ResourceStone, 4, domain.ErrGatherAmountExceeded},
		{"seeds cannot be gathered", domain.ResourceSeeds, 1, domain.ErrGatherAmountExceeded},
		{"unknown resource", domain.ResourceType(9), 1, domain.ErrInvalidResourceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger()
			before := l.Resources

			_, err := Gather(l, tt.resource, tt.amount, base)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, l.Resources)
			assert.Equal(t, [domain.NumResourceTypes]int64{}, l.LastGatherTime)
		})
	}
}

func TestGather_StackOverflow(t *testing.T) {
	l := newLedger()
	l.Resources.Fiber = 495

	_, err := Gather(l, domain.ResourceFiber, 8, base)
	assert.ErrorIs(t, err, domain.ErrResourceStackOverflow)
	assert.Equal(t, uint16(495), l.Resources.Fiber)
	assert.Zero(t, l.LastGatherTime[domain.ResourceFiber])

	res, err := Gather(l, domain.ResourceFiber, 5, base)
	require.NoError(t, err)
	assert.Equal(t, uint16(500), res.NewTotal)
}

func TestGrant_Truncates(t *testing.T) {
	stock := domain.ResourceStock{Seeds: 499, Wood: 998}

	assert.Equal(t, uint16(500), Grant(&stock, domain.ResourceSeeds, 3))
	assert.Equal(t, uint16(999), Grant(&stock, domain.ResourceWood, 10))
	assert.Equal(t, uint16(999), stock.Wood)
}
