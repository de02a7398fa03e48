package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// LogEvent stores an event in the database
func (s *Store) LogEvent(ctx context.Context, eventType string, playerID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO farm_events (event_type, player_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return err
		}
	}

	if _, err = s.db.Exec(ctx, query, eventType, playerID, payloadJSON, metadataJSON); err != nil {
		return dbError(ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria
func (s *Store) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + eventColumns + `
		FROM farm_events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.PlayerID != nil {
		fmt.Fprintf(&queryBuilder, " AND player_id = $%d", argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dbError(ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (s *Store) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM farm_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := s.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, dbError(ErrMsgFailedToDeleteEvents, err)
	}

	return result.RowsAffected(), nil
}

// scanEvents scans rows into EventLogEntry structs
func scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	var events []repository.EventLogEntry

	for rows.Next() {
		var evt repository.EventLogEntry
		var payloadJSON, metadataJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&evt.PlayerID,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, dbError(ErrMsgFailedToQueryEvents, err)
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToQueryEvents, err)
	}

	return events, nil
}
