package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

type EventRepository struct {
	db *sql.DB
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event, fields []domain.FieldDefinition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO events (id, title, description, location, starts_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.Location,
		toMillis(e.StartsAt), toMillis(e.CreatedAt), toMillis(e.UpdatedAt),
	); err != nil {
		return classify("insert event", err)
	}

	if err = insertFields(ctx, tx, fields); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return classify("commit", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, location, starts_at, created_at, updated_at
		 FROM events WHERE id = ?`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, classify("get event", err)
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, location, starts_at, created_at, updated_at
		 FROM events ORDER BY starts_at DESC`)
	if err != nil {
		return nil, classify("list events", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event, changes domain.FieldChangeSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE events
		 SET title = ?, description = ?, location = ?, starts_at = ?, updated_at = ?
		 WHERE id = ?`,
		e.Title, e.Description, e.Location, toMillis(e.StartsAt), toMillis(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return classify("update event", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify("event rows affected", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	if len(changes.Delete) > 0 {
		args := append([]any{e.ID}, stringArgs(changes.Delete)...)
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM event_fields WHERE event_id = ? AND id IN (`+placeholders(len(changes.Delete))+`)`,
			args...,
		); err != nil {
			return classify("delete fields", err)
		}
	}

	for i := range changes.Update {
		f := &changes.Update[i]
		options, config, err := encodeField(f)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx,
			`UPDATE event_fields
			 SET field_type = ?, label = ?, description = ?, required = ?,
			     sort_order = ?, options = ?, config = ?, updated_at = ?
			 WHERE id = ? AND event_id = ?`,
			string(f.Type), f.Label, nullString(f.Description), f.Required,
			f.SortOrder, options, config, toMillis(f.UpdatedAt),
			f.ID, f.EventID,
		); err != nil {
			return classify("update field", err)
		}
	}

	if err = insertFields(ctx, tx, changes.Insert); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return classify("commit", err)
	}
	return nil
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e                              domain.Event
		startsAt, createdAt, updatedAt int64
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &startsAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.StartsAt = fromMillis(startsAt)
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return &e, nil
}
