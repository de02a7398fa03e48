package eventlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/eventlog"
	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
	"github.com/osse101/FarmEconomy_Go/mocks"
)

const playerID = "8b1f0a8e-2f4b-4c51-9b4e-1f0c2d3e4a5b"

func TestService_SubscribeAllTypes(t *testing.T) {
	mockBus := mocks.NewMockBus(t)
	for _, et := range event.AllTypes() {
		mockBus.On("Subscribe", et, mock.Anything).Return().Once()
	}

	err := eventlog.NewService(mocks.NewMockEventLogRepository(t)).Subscribe(mockBus)
	assert.NoError(t, err)
}

func TestService_HandleEvent_TypedPayload(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	hooks := eventlog.NewTestHooks(eventlog.NewService(mockRepo))

	evt := farm.NewTileClearedEvent(playerID, 7, 1_700_000_000)

	mockRepo.On("LogEvent", mock.Anything, string(event.TileCleared),
		mock.MatchedBy(func(pid *string) bool { return pid != nil && *pid == playerID }),
		mock.MatchedBy(func(p map[string]interface{}) bool {
			// numbers come back from JSON as float64
			return p["plot"] == float64(7) && p["timestamp"] == float64(1_700_000_000)
		}),
		mock.Anything,
	).Return(nil).Once()

	require.NoError(t, hooks.HandleEvent(context.Background(), evt))
}

func TestService_HandleEvent_MapPayloadAndMetadata(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	hooks := eventlog.NewTestHooks(eventlog.NewService(mockRepo))

	payload := map[string]interface{}{"days_passed": 3}
	meta := map[string]interface{}{"source": "scheduler"}
	evt := event.Event{Type: event.SeasonDayAdvanced, Payload: payload, Metadata: meta}

	mockRepo.On("LogEvent", mock.Anything, string(event.SeasonDayAdvanced), (*string)(nil), payload, meta).Return(nil).Once()

	require.NoError(t, hooks.HandleEvent(context.Background(), evt))
}

func TestService_HandleEvent_NonObjectSkipped(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	hooks := eventlog.NewTestHooks(eventlog.NewService(mockRepo))

	for _, payload := range []interface{}{nil, "text", []int{1, 2}} {
		assert.NoError(t, hooks.HandleEvent(context.Background(), event.Event{Type: event.CropPlanted, Payload: payload}))
	}
	mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	hooks := eventlog.NewTestHooks(eventlog.NewService(mockRepo))

	mockRepo.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrDatabaseError).Once()

	err := hooks.HandleEvent(context.Background(), event.Event{Type: event.CropPlanted, Payload: map[string]interface{}{}})
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestService_EndToEndThroughMemoryBus(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	bus := event.NewMemoryBus()
	require.NoError(t, eventlog.NewService(mockRepo).Subscribe(bus))

	mockRepo.On("LogEvent", mock.Anything, string(event.PlayerInitialized), mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, bus.Publish(context.Background(), farm.NewPlayerInitializedEvent(playerID, 1)))
}

func TestService_GetEventsAndCleanup(t *testing.T) {
	mockRepo := mocks.NewMockEventLogRepository(t)
	svc := eventlog.NewService(mockRepo)
	ctx := context.Background()

	pid := playerID
	filter := repository.EventLogFilter{PlayerID: &pid, Limit: 10}
	mockRepo.On("GetEvents", ctx, filter).Return([]repository.EventLogEntry{{ID: 1, EventType: "farm.crop_planted"}}, nil).Once()
	mockRepo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil).Once()

	entries, err := svc.GetEvents(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	count, err := svc.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
