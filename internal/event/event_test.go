package event

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(CropHarvested, func(ctx context.Context, e Event) error {
		assert.Equal(t, CropHarvested, e.Type)
		assert.Equal(t, "payload", e.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}
	bus.Subscribe(TileCleared, handler)
	bus.Subscribe(TileCleared, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Type: TileCleared}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: SeasonChanged}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	secondRan := false

	bus.Subscribe(WaterApplied, func(ctx context.Context, e Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(WaterApplied, func(ctx context.Context, e Event) error {
		secondRan = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: WaterApplied})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, secondRan, "later handlers still run after a failure")
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}

	SubscribeAll(bus, func(ctx context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes() {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}

	assert.Len(t, seen, len(AllTypes()))
	for typ, n := range seen {
		assert.Equal(t, 1, n, typ)
	}
}

func TestAllTypes_Namespaced(t *testing.T) {
	for _, typ := range AllTypes() {
		s := string(typ)
		assert.True(t,
			strings.HasPrefix(s, "farm.") || strings.HasPrefix(s, "season.") || strings.HasPrefix(s, "player."),
			s)
	}
}

func TestGetMetadataValue(t *testing.T) {
	e := Event{Metadata: map[string]interface{}{"request_id": "abc"}}
	assert.Equal(t, "abc", e.GetMetadataValue("request_id"))
	assert.Nil(t, e.GetMetadataValue("missing"))
	assert.Nil(t, Event{}.GetMetadataValue("request_id"))
}

func TestDecodePayload(t *testing.T) {
	type payload struct {
		Plot int    `json:"plot"`
		Crop string `json:"crop"`
	}

	direct, err := DecodePayload[payload](payload{Plot: 3, Crop: "corn"})
	require.NoError(t, err)
	assert.Equal(t, 3, direct.Plot)

	fromMap, err := DecodePayload[payload](map[string]interface{}{"plot": 7, "crop": "wheat"})
	require.NoError(t, err)
	assert.Equal(t, payload{Plot: 7, Crop: "wheat"}, fromMap)
}

func TestReadDeadLetters(t *testing.T) {
	path := t.TempDir() + "/dl.jsonl"
	w, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(Event{Type: CropPlanted}, 3, errors.New("boom")))
	require.NoError(t, w.Write(Event{Type: SeasonChanged}, 1, nil))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	entries, err := ReadDeadLetters(f)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, CropPlanted, entries[0].Event.Type)
	assert.Equal(t, "boom", entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Empty(t, entries[1].LastError)
}

func TestReadDeadLetters_Malformed(t *testing.T) {
	_, err := ReadDeadLetters(strings.NewReader("{\"event\":{}}\n\nnot json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
