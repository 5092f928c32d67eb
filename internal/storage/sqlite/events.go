package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"fieldagenda/internal/models"
	"fieldagenda/internal/storage"
)

const eventColumns = `id, title, type, date, start_time, end_time, status,
	location, description, owner_id, linked_ticket_id, recurrence`

func (s *Store) CreateEvent(ev models.Event) ([]models.Event, error) {
	occurrences, err := storage.ExpandOccurrences(ev)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, occ := range occurrences {
		recJSON := ""
		if occ.Recurrence != nil {
			b, err := json.Marshal(occ.Recurrence)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal recurrence: %w", err)
			}
			recJSON = string(b)
		}
		_, err = tx.Exec(`
			INSERT INTO events (`+eventColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			occ.ID, occ.Title, occ.Type, occ.Date, occ.StartTime, occ.EndTime, occ.Status,
			occ.Location, occ.Description, occ.OwnerID, occ.LinkedTicketID, recJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert event %s: %w", occ.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit event creation: %w", err)
	}
	return occurrences, nil
}

func (s *Store) GetEvent(id string) (models.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return models.Event{}, storage.ErrNotFound
	}
	return ev, err
}

func (s *Store) GetEventsForRange(filter storage.EventFilter, rangeStart, rangeEnd string) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE date >= ? AND date <= ?`
	args := []interface{}{rangeStart, rangeEnd}

	switch {
	case filter.OwnerID != "":
		query += ` AND owner_id = ?`
		args = append(args, filter.OwnerID)
	case len(filter.OwnerIDs) > 0:
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.OwnerIDs)), ",")
		query += ` AND owner_id IN (` + placeholders + `)`
		for _, id := range filter.OwnerIDs {
			args = append(args, id)
		}
	}
	query += ` ORDER BY date, start_time`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *Store) UpdateEvent(ev models.Event) error {
	recJSON := ""
	if ev.Recurrence != nil {
		b, err := json.Marshal(ev.Recurrence)
		if err != nil {
			return fmt.Errorf("failed to marshal recurrence: %w", err)
		}
		recJSON = string(b)
	}

	res, err := s.db.Exec(`
		UPDATE events SET title = ?, type = ?, date = ?, start_time = ?, end_time = ?,
			status = ?, location = ?, description = ?, owner_id = ?, linked_ticket_id = ?, recurrence = ?
		WHERE id = ?`,
		ev.Title, ev.Type, ev.Date, ev.StartTime, ev.EndTime,
		ev.Status, ev.Location, ev.Description, ev.OwnerID, ev.LinkedTicketID, recJSON,
		ev.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, ev.ID)
}

func (s *Store) UpdateEventStatus(id string, status models.EventStatus) error {
	res, err := s.db.Exec(`UPDATE events SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

// DeleteEvent removes the event together with its participants and reminders
// in one transaction. Either everything goes or nothing does.
func (s *Store) DeleteEvent(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM participants WHERE event_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM reminders WHERE event_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete reminders: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if err := requireRow(res, id); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var ev models.Event
	var recJSON string
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Type, &ev.Date, &ev.StartTime, &ev.EndTime, &ev.Status,
		&ev.Location, &ev.Description, &ev.OwnerID, &ev.LinkedTicketID, &recJSON,
	)
	if err != nil {
		return models.Event{}, err
	}
	if recJSON != "" {
		var rec models.Recurrence
		if err := json.Unmarshal([]byte(recJSON), &rec); err == nil {
			ev.Recurrence = &rec
		}
	}
	return ev, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event with id %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
