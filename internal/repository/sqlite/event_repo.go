package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventregistration/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, title, date, location FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT id, title, date, location FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) SeedIfEmpty(ctx context.Context, events []*domain.Event) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	for _, e := range events {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO events (id, title, date, location) VALUES (?, ?, ?, ?)`,
			e.ID, e.Title, e.FormattedDate(), e.Location,
		)
		if err != nil {
			return false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var date string
	if err := s.Scan(&e.ID, &e.Title, &date, &e.Location); err != nil {
		return nil, err
	}
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse event date %q: %w", date, err)
	}
	e.Date = d
	return e, nil
}
