package postgres

import (
	"context"
	"database/sql"

	"eventregistration/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO registrations (name, email, phone, year, branch, after_note, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		reg.Name, reg.Email, reg.Phone, reg.Year, reg.Branch, reg.AfterNote, reg.EventID, reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		return translateError(err)
	}
	return translateError(tx.Commit())
}

func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	query := `
		SELECT id, name, email, phone, year, branch, after_note, event_id, created_at
		FROM registrations
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var note sql.NullString
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Year, &reg.Branch, &note, &reg.EventID, &reg.CreatedAt); err != nil {
			return nil, err
		}
		if note.Valid {
			reg.AfterNote = &note.String
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) ListWithEvents(ctx context.Context) ([]*domain.RegistrationWithEvent, error) {
	query := `
		SELECT r.id, r.name, r.email, r.phone, r.year, r.branch, r.after_note, r.event_id, r.created_at,
		       e.id, e.title, e.date, e.location
		FROM registrations r
		LEFT JOIN events e ON e.id = r.event_id
		ORDER BY r.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.RegistrationWithEvent, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var note sql.NullString
		var eventID sql.NullInt64
		var title, location sql.NullString
		var date sql.NullTime
		if err := rows.Scan(
			&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Year, &reg.Branch, &note, &reg.EventID, &reg.CreatedAt,
			&eventID, &title, &date, &location,
		); err != nil {
			return nil, err
		}
		if note.Valid {
			reg.AfterNote = &note.String
		}
		item := &domain.RegistrationWithEvent{Registration: reg}
		if eventID.Valid {
			item.Event = &domain.Event{ID: eventID.Int64, Title: title.String, Date: date.Time, Location: location.String}
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

	res, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
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
