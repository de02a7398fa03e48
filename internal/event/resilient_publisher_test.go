package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBusDown = errors.New("bus down")

// flakyBus fails the first failFor publishes, or every publish when failFor < 0
type flakyBus struct {
	mu      sync.Mutex
	failFor int
	events  []Event
}

func (b *flakyBus) Publish(_ context.Context, e Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	if b.failFor < 0 || len(b.events) <= b.failFor {
		return errBusDown
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

func harvestEvent(plot int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: map[string]any{"player_id": "p1", "plot": plot, "yield": 110},
	}
}

func deadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	entries, err := ReadDeadLetters(f)
	require.NoError(t, err)
	return entries
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		base    time.Duration
		attempt int
		want    time.Duration
	}{
		{100 * time.Millisecond, 1, 100 * time.Millisecond},
		{100 * time.Millisecond, 2, 200 * time.Millisecond},
		{100 * time.Millisecond, 3, 400 * time.Millisecond},
		{100 * time.Millisecond, 5, 1600 * time.Millisecond},
		{RetryInitialDelaySeconds * time.Second, 1, RetryInitialDelaySeconds * time.Second},
		{2 * time.Second, 2, 4 * time.Second},
		{2 * time.Second, 5, 32 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRetryDelay(tt.base, tt.attempt), "base %s attempt %d", tt.base, tt.attempt)
	}
}

func TestResilientPublisher_FirstAttemptSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), harvestEvent(4))
	assert.Equal(t, 1, bus.calls(), "the first attempt is synchronous")

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_RetryRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failFor: 1}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), harvestEvent(4))
	require.Eventually(t, func() bool { return bus.calls() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Equal(t, 2, bus.calls())
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_ExhaustedRetriesDeadLetter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failFor: -1}
	rp, err := NewResilientPublisher(bus, 2, 5*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), harvestEvent(7))
	// initial attempt plus two retries
	require.Eventually(t, func() bool { return bus.calls() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := deadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, CropHarvested, entries[0].Event.Type)
	assert.Equal(t, 2, entries[0].Attempts)
	assert.Equal(t, errBusDown.Error(), entries[0].LastError)
}

func TestResilientPublisher_FullQueueDeadLettersImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no retry worker, so the single queue slot stays occupied
	rp := &ResilientPublisher{
		bus:        &flakyBus{failFor: -1},
		retryQueue: make(chan retryEntry, 1),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for plot := 0; plot < 3; plot++ {
		rp.PublishWithRetry(context.Background(), harvestEvent(plot))
	}

	entries := deadLetters(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Attempts)
	assert.Len(t, rp.retryQueue, 1)
	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_ShutdownFlushesPendingRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failFor: 3}
	// retries would wait an hour; shutdown must not
	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	for plot := 0; plot < 3; plot++ {
		rp.PublishWithRetry(context.Background(), harvestEvent(plot))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 6, bus.calls(), "each event gets one final attempt")
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, "")
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for plot := 0; plot < 5; plot++ {
				rp.PublishWithRetry(context.Background(), harvestEvent(plot))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, bus.calls())
}

func TestResilientPublisher_NoDeadLetterPath(t *testing.T) {
	bus := &flakyBus{failFor: -1}
	rp, err := NewResilientPublisher(bus, 1, 5*time.Millisecond, "")
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), Event{Type: TileCleared})
	require.Eventually(t, func() bool { return bus.calls() == 2 }, time.Second, 5*time.Millisecond)

	assert.NoError(t, rp.Shutdown(context.Background()))
	assert.NoError(t, rp.Shutdown(context.Background()), "second shutdown is a no-op")
}

func TestResilientPublisher_ImplementsBus(t *testing.T) {
	inner := NewMemoryBus()
	rp, err := NewResilientPublisher(inner, 1, 10*time.Millisecond, "")
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	var bus Bus = rp
	got := make(chan Event, 1)
	bus.Subscribe(CropPlanted, func(ctx context.Context, e Event) error {
		got <- e
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Type: CropPlanted, Version: EventSchemaVersion}))

	select {
	case e := <-got:
		assert.Equal(t, CropPlanted, e.Type)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}
