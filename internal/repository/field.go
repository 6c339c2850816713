package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const fieldColumns = `id, event_id, field_type, label, description, required,
		sort_order, options, config, created_at, updated_at`

type FieldRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFieldRepo(db *dbpg.DB) *FieldRepository {
	return &FieldRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FieldRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.FieldDefinition, error) {
	query := `SELECT ` + fieldColumns + `
			  FROM event_fields
			  WHERE event_id = $1
			  ORDER BY sort_order, label`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, classify("list fields by event", err)
	}
	defer rows.Close()

	return scanFields(rows)
}

func (r *FieldRepository) ListByType(ctx context.Context, fieldType domain.FieldType) ([]domain.FieldDefinition, error) {
	query := `SELECT ` + fieldColumns + `
			  FROM event_fields
			  WHERE field_type = $1
			  ORDER BY event_id, sort_order`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, fieldType)
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
		f           domain.FieldDefinition
		description sql.NullString
		options     []byte
		config      []byte
	)
	if err := row.Scan(
		&f.ID, &f.EventID, &f.Type, &f.Label, &description, &f.Required,
		&f.SortOrder, &options, &config, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return f, err
	}
	if description.Valid {
		f.Description = &description.String
	}
	if err := json.Unmarshal(options, &f.Options); err != nil {
		return f, fmt.Errorf("decode options: %w", err)
	}
	if err := json.Unmarshal(config, &f.Config); err != nil {
		return f, fmt.Errorf("decode config: %w", err)
	}
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

// encodeField returns the JSONB payloads of options and config.
func encodeField(f *domain.FieldDefinition) ([]byte, []byte, error) {
	opts := f.Options
	if opts == nil {
		opts = []string{}
	}
	options, err := json.Marshal(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("encode options: %w", err)
	}
	config, err := json.Marshal(f.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("encode config: %w", err)
	}
	return options, config, nil
}
