package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"eventregistration/internal/domain"
)

// Postgres error codes the repositories translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id       BIGINT PRIMARY KEY,
	title    VARCHAR(100) NOT NULL,
	date     DATE NOT NULL,
	location VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS registrations (
	id         BIGSERIAL PRIMARY KEY,
	name       VARCHAR(100) NOT NULL,
	email      VARCHAR(120) NOT NULL UNIQUE,
	phone      VARCHAR(15) NOT NULL,
	year       VARCHAR(10) NOT NULL,
	branch     VARCHAR(50) NOT NULL,
	after_note TEXT,
	event_id   BIGINT NOT NULL REFERENCES events(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(30 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
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
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return domain.ErrDuplicateEmail
		case codeForeignKeyViolation:
			return domain.ErrEventNotFound
		}
	}
	return err
}
