package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

const fieldColumns = `id, event_id, field_type, label, description, required,
	sort_order, options, config, created_at, updated_at`

type FieldRepository struct {
	db *sql.DB
}

func (r *FieldRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.FieldDefinition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+fieldColumns+` FROM event_fields WHERE event_id = ? ORDER BY sort_order, label`,
		eventID)
	if err != nil {
		return nil, classify("list fields by event", err)
	}
	defer rows.Close()

	return scanFields(rows)
}

func (r *FieldRepository) ListByType(ctx context.Context, fieldType domain.FieldType) ([]domain.FieldDefinition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+fieldColumns+` FROM event_fields WHERE field_type = ? ORDER BY event_id, sort_order`,
		string(fieldType))
	if err != nil {
		return nil, classify("list fields by type", err)
	}
	defer rows.Close()

	return scanFields(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanField(row rowScanner) (domain.FieldDefinition, error) {
	var (
		f                    domain.FieldDefinition
		fieldType            string
		description          sql.NullString
		options, config      string
		createdAt, updatedAt int64
	)
	if err := row.Scan(
		&f.ID, &f.EventID, &fieldType, &f.Label, &description, &f.Required,
		&f.SortOrder, &options, &config, &createdAt, &updatedAt,
	); err != nil {
		return f, err
	}
	f.Type = domain.FieldType(fieldType)
	if description.Valid {
		f.Description = &description.String
	}
	if err := json.Unmarshal([]byte(options), &f.Options); err != nil {
		return f, fmt.Errorf("decode options: %w", err)
	}
	if err := json.Unmarshal([]byte(config), &f.Config); err != nil {
		return f, fmt.Errorf("decode config: %w", err)
	}
	f.CreatedAt = fromMillis(createdAt)
	f.UpdatedAt = fromMillis(updatedAt)
	return f, nil
}

func scanFields(rows *sql.Rows) ([]domain.FieldDefinition, error) {
	var res []domain.FieldDefinition
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		res = append(res, f)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate fields", err)
	}
	return res, nil
}

func encodeField(f *domain.FieldDefinition) (string, string, error) {
	opts := f.Options
	if opts == nil {
		opts = []string{}
	}
	options, err := json.Marshal(opts)
	if err != nil {
		return "", "", fmt.Errorf("encode options: %w", err)
	}
	config, err := json.Marshal(f.Config)
	if err != nil {
		return "", "", fmt.Errorf("encode config: %w", err)
	}
	return string(options), string(config), nil
}

func insertFields(ctx context.Context, tx *sql.Tx, fields []domain.FieldDefinition) error {
	for i := range fields {
		f := &fields[i]
		options, config, err := encodeField(f)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO event_fields (`+fieldColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID, f.EventID, string(f.Type), f.Label, nullString(f.Description), f.Required,
			f.SortOrder, options, config, toMillis(f.CreatedAt), toMillis(f.UpdatedAt),
		); err != nil {
			return classify("insert field", err)
		}
	}
	return nil
}
