package season

import (
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
)

// DayAdvancedPayloadV1 is the typed payload for season.day_advanced
type DayAdvancedPayloadV1 struct {
	DaysPassed uint32        `json:"days_passed"`
	Season     domain.Season `json:"season"`
	Timestamp  int64         `json:"timestamp"`
}

// ChangedPayloadV1 is the typed payload for season.changed
type ChangedPayloadV1 struct {
	Season     domain.Season `json:"season"`
	SeasonName string        `json:"season_name"`
	DaysPassed uint32        `json:"days_passed"`
	Manual     bool          `json:"manual"`
	Timestamp  int64         `json:"timestamp"`
}

// NewDayAdvancedEvent creates a season.day_advanced event
func NewDayAdvancedEvent(t Transition, ts int64) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SeasonDayAdvanced,
		Payload: DayAdvancedPayloadV1{
			DaysPassed: t.DaysPassed,
			Season:     t.Season,
			Timestamp:  ts,
		},
	}
}

// NewChangedEvent creates a season.changed event
func NewChangedEvent(t Transition, ts int64) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SeasonChanged,
		Payload: ChangedPayloadV1{
			Season:     t.Season,
			SeasonName: naming.Display(t.Season.String()),
			DaysPassed: t.DaysPassed,
			Manual:     t.Manual,
			Timestamp:  ts,
		},
	}
}

// eventsFor maps a transition to the events it produces. A manual set that
// lands on the current season still reports the change so the restart is visible.
func eventsFor(t Transition, ts int64) []event.Event {
	var events []event.Event
	if !t.Manual {
		events = append(events, NewDayAdvancedEvent(t, ts))
	}
	if t.Changed || t.Manual {
		events = append(events, NewChangedEvent(t, ts))
	}
	return events
}
