// Package sqlite implements the domain repositories on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"eventregistration/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id       INTEGER PRIMARY KEY,
	title    TEXT NOT NULL,
	date     TEXT NOT NULL,
	location TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS registrations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	phone      TEXT NOT NULL,
	year       TEXT NOT NULL,
	branch     TEXT NOT NULL,
	after_note TEXT,
	event_id   INTEGER NOT NULL REFERENCES events(id),
	created_at TEXT NOT NULL
);
`

// Open opens the SQLite database at path with foreign keys enforced.
// A single connection serialises writers so concurrent requests never see "database is locked".
func Open(ctx context.Context, path string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the events and registrations tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// translateError maps constraint violations to domain errors and returns other errors unchanged.
func translateError(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return domain.ErrDuplicateEmail
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return domain.ErrEventNotFound
	}
	if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		if strings.Contains(sqliteErr.Error(), "FOREIGN KEY") {
			return domain.ErrEventNotFound
		}
		if strings.Contains(sqliteErr.Error(), "UNIQUE") {
			return domain.ErrDuplicateEmail
		}
	}
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
