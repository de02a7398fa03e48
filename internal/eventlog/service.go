// Package eventlog persists every published domain event to the farm_events table.
package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// GetEvents queries the stored log
	GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	event.SubscribeAll(bus, s.handleEvent)
	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := toObject(evt.Payload)
	if !ok {
		log.Debug(LogMsgEventPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}

	var playerID *string
	if pid, ok := payload[PayloadKeyPlayerID].(string); ok && pid != "" {
		playerID = &pid
	}

	metadata, _ := evt.Metadata.(map[string]interface{})

	if err := s.repo.LogEvent(ctx, string(evt.Type), playerID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldPlayerID, playerID)
	return nil
}

// toObject flattens typed payload structs into the JSON object form stored in the log
func toObject(payload interface{}) (map[string]interface{}, bool) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, true
	}
	if payload == nil {
		return nil, false
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return m, true
}

func (s *service) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
