package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create stores the event together with its initial field set.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, fields []domain.FieldDefinition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, title, description, location, starts_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, query, e.ID, e.Title, e.Description,
		e.Location, e.StartsAt, e.CreatedAt, e.UpdatedAt,
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
	query := `SELECT id, title, description, location, starts_at, created_at, updated_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify("get event", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location,
		&e.StartsAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, classify("scan event", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, location, starts_at, created_at, updated_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, classify("list events", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location,
			&e.StartsAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// Update rewrites the event attributes and applies the field change set in
// one transaction. Deleted fields take their responses with them.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event, changes domain.FieldChangeSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET title = $2, description = $3, location = $4, starts_at = $5, updated_at = $6
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, e.ID, e.Title, e.Description, e.Location, e.StartsAt, e.UpdatedAt)
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
		// Ответы удаляются каскадом
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM event_fields WHERE event_id = $1 AND id = ANY($2)`,
			e.ID, pq.Array(changes.Delete),
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
			 SET field_type = $3, label = $4, description = $5, required = $6,
			     sort_order = $7, options = $8, config = $9, updated_at = $10
			 WHERE id = $1 AND event_id = $2`,
			f.ID, f.EventID, f.Type, f.Label, f.Description, f.Required,
			f.SortOrder, options, config, f.UpdatedAt,
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

func insertFields(ctx context.Context, tx *sql.Tx, fields []domain.FieldDefinition) error {
	query := `INSERT INTO event_fields (` + fieldColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for i := range fields {
		f := &fields[i]
		options, config, err := encodeField(f)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query,
			f.ID, f.EventID, f.Type, f.Label, f.Description, f.Required,
			f.SortOrder, options, config, f.CreatedAt, f.UpdatedAt,
		); err != nil {
			return classify("insert field", err)
		}
	}
	return nil
}
