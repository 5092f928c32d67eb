package postgres

import (
	"database/sql"
	"fmt"

	"fieldagenda/internal/models"
	"fieldagenda/internal/storage"
)

func (s *Store) AddParticipant(p models.Participant) error {
	_, err := s.db.Exec(`
		INSERT INTO participants (id, event_id, name, contact)
		VALUES ($1, $2, $3, $4)`,
		p.ID, p.EventID, p.Name, p.Contact,
	)
	return err
}

func (s *Store) GetParticipants(eventID string) ([]models.Participant, error) {
	rows, err := s.db.Query(`
		SELECT id, event_id, name, contact FROM participants
		WHERE event_id = $1 ORDER BY name`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.Contact); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) AddReminder(r models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, event_id, remind_at, channel)
		VALUES ($1, $2, $3, $4)`,
		r.ID, r.EventID, r.RemindAt, r.Channel,
	)
	return err
}

func (s *Store) GetReminders(eventID string) ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, event_id, remind_at, channel FROM reminders
		WHERE event_id = $1 ORDER BY remind_at`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Reminder
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.EventID, &r.RemindAt, &r.Channel); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) AddTicket(t models.Ticket) error {
	_, err := s.db.Exec(`
		INSERT INTO tickets (id, client_name, motive, location)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET client_name = EXCLUDED.client_name,
			motive = EXCLUDED.motive, location = EXCLUDED.location`,
		t.ID, t.ClientName, t.Motive, t.Location,
	)
	return err
}

func (s *Store) GetTicket(id string) (models.Ticket, error) {
	var t models.Ticket
	err := s.db.QueryRow(`
		SELECT id, client_name, motive, location FROM tickets WHERE id = $1`, id).
		Scan(&t.ID, &t.ClientName, &t.Motive, &t.Location)
	if err == sql.ErrNoRows {
		return models.Ticket{}, fmt.Errorf("ticket with id %s: %w", id, storage.ErrNotFound)
	}
	return t, err
}

func (s *Store) GetSettings() (models.Settings, error) {
	var st models.Settings
	err := s.db.QueryRow(`SELECT week_start, default_owner_id FROM settings WHERE id = 1`).
		Scan(&st.WeekStart, &st.DefaultOwnerID)
	if err == sql.ErrNoRows {
		return models.Settings{}, nil
	}
	return st, err
}

func (s *Store) SaveSettings(st models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, week_start, default_owner_id) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET week_start = EXCLUDED.week_start,
			default_owner_id = EXCLUDED.default_owner_id`,
		st.WeekStart, st.DefaultOwnerID,
	)
	return err
}
