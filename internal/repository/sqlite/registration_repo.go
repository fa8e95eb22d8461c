package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventregistration/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO registrations (name, email, phone, year, branch, after_note, event_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.Name, reg.Email, reg.Phone, reg.Year, reg.Branch, reg.AfterNote, reg.EventID, formatTime(reg.CreatedAt),
	)
	if err != nil {
		return translateError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translateError(err)
	}
	reg.ID = id
	return nil
}

func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, phone, year, branch, after_note, event_id, created_at
		FROM registrations
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var note sql.NullString
		var created string
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Year, &reg.Branch, &note, &reg.EventID, &created); err != nil {
			return nil, err
		}
		if err := fillRegistration(reg, note, created); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) ListWithEvents(ctx context.Context) ([]*domain.RegistrationWithEvent, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.name, r.email, r.phone, r.year, r.branch, r.after_note, r.event_id, r.created_at,
		       e.id, e.title, e.date, e.location
		FROM registrations r
		LEFT JOIN events e ON e.id = r.event_id
		ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.RegistrationWithEvent, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var note sql.NullString
		var created string
		var eventID sql.NullInt64
		var title, date, location sql.NullString
		if err := rows.Scan(
			&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Year, &reg.Branch, &note, &reg.EventID, &created,
			&eventID, &title, &date, &location,
		); err != nil {
			return nil, err
		}
		if err := fillRegistration(reg, note, created); err != nil {
			return nil, err
		}
		item := &domain.RegistrationWithEvent{Registration: reg}
		if eventID.Valid {
			ev := &domain.Event{ID: eventID.Int64, Title: title.String, Location: location.String}
			if d, err := time.Parse(domain.DateLayout, date.String); err == nil {
				ev.Date = d
			}
			item.Event = ev
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *registrationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *registrationRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func fillRegistration(reg *domain.Registration, note sql.NullString, created string) error {
	if note.Valid {
		reg.AfterNote = &note.String
	}
	t, err := parseTime(created)
	if err != nil {
		return fmt.Errorf("parse created_at %q: %w", created, err)
	}
	reg.CreatedAt = t
	return nil
}
