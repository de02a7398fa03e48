package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// LogEvent stores an event in the database
func (s *Store) LogEvent(ctx context.Context, eventType string, playerID *string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var metadataJSON sql.NullString
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		metadataJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO farm_events (event_type, player_id, payload, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		eventType, playerID, string(payloadJSON), metadataJSON, time.Now().UTC().UnixNano())
	if err != nil {
		return dbError(ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (s *Store) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventColumns + ` FROM farm_events WHERE 1=1`)

	args := []interface{}{}
	if filter.PlayerID != nil {
		queryBuilder.WriteString(" AND player_id = ?")
		args = append(args, *filter.PlayerID)
	}
	if filter.EventType != nil {
		queryBuilder.WriteString(" AND event_type = ?")
		args = append(args, *filter.EventType)
	}
	if filter.Since != nil {
		queryBuilder.WriteString(" AND created_at >= ?")
		args = append(args, filter.Since.UnixNano())
	}
	if filter.Until != nil {
		queryBuilder.WriteString(" AND created_at <= ?")
		args = append(args, filter.Until.UnixNano())
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		queryBuilder.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (s *Store) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour).UnixNano()

	res, err := s.db.ExecContext(ctx, `DELETE FROM farm_events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, dbError(ErrMsgFailedToDeleteEvents, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, dbError(ErrMsgFailedToDeleteEvents, err)
	}
	return n, nil
}

func scanEvents(rows *sql.Rows) ([]repository.EventLogEntry, error) {
	var events []repository.EventLogEntry

	for rows.Next() {
		var (
			evt       repository.EventLogEntry
			playerID  sql.NullString
			payload   string
			metadata  sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&evt.ID, &evt.EventType, &playerID, &payload, &metadata, &createdAt); err != nil {
			return nil, dbError(ErrMsgFailedToQueryEvents, err)
		}

		if playerID.Valid {
			id := playerID.String
			evt.PlayerID = &id
		}
		if err := json.Unmarshal([]byte(payload), &evt.Payload); err != nil {
			return nil, err
		}
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &evt.Metadata); err != nil {
				return nil, err
			}
		}
		evt.CreatedAt = fromNanos(createdAt)

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToQueryEvents, err)
	}
	return events, nil
}
