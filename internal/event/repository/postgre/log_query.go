package postgre

const createTableQuery = `
CREATE TABLE IF NOT EXISTS event_log (
	id BIGSERIAL PRIMARY KEY,
	received_at TIMESTAMPTZ NOT NULL,
	text TEXT NOT NULL,
	email TEXT NOT NULL,
	title TEXT NOT NULL,
	event_date TEXT NOT NULL,
	event_time TEXT NOT NULL,
	description TEXT NOT NULL,
	recurrence TEXT NOT NULL,
	calendar_url TEXT NOT NULL,
	ics_url TEXT NOT NULL
)`

const insertRowQuery = `
INSERT INTO event_log (received_at, text, email, title, event_date, event_time, description, recurrence, calendar_url, ics_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
