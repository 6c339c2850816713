package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ResponseRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewResponseRepo(db *dbpg.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Submit upserts the guest's responses in one transaction. Signup fields
// touched by the submission are locked FOR UPDATE before the claims of other
// guests are counted, so two guests racing for the last slot of an option
// are serialized and the second one sees the first one's claim.
func (r *ResponseRepository) Submit(
	ctx context.Context,
	guestID string,
	responses []domain.Response,
	enforcer ports.ClaimEnforcer,
) error {
	if len(responses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	defer tx.Rollback()

	fieldIDs := make([]string, 0, len(responses))
	for _, resp := range responses {
		fieldIDs = append(fieldIDs, resp.FieldID)
	}

	// Блокируем signup-поля в едином порядке, чтобы избежать дедлоков
	signups, err := lockSignupFields(ctx, tx, fieldIDs)
	if err != nil {
		return err
	}

	var problems []domain.Problem
	for _, resp := range responses {
		field, ok := signups[resp.FieldID]
		if !ok {
			continue
		}
		others, err := listOtherClaims(ctx, tx, field.ID, guestID)
		if err != nil {
			return err
		}
		problems = append(problems, enforcer.Enforce(field, guestID, resp.Value, others)...)
	}
	if len(problems) > 0 {
		return domain.NewValidationError(domain.KindCapacity, problems)
	}

	query := `INSERT INTO event_field_responses (id, field_id, guest_id, value, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (field_id, guest_id)
			  DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	for _, resp := range responses {
		if _, err = tx.ExecContext(ctx, query,
			resp.ID, resp.FieldID, guestID, resp.Value, resp.CreatedAt, resp.UpdatedAt,
		); err != nil {
			return classify("upsert response", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return classify("commit", err)
	}
	return nil
}

func lockSignupFields(ctx context.Context, tx *sql.Tx, fieldIDs []string) (map[string]*domain.FieldDefinition, error) {
	query := `SELECT ` + fieldColumns + `
			  FROM event_fields
			  WHERE id = ANY($1) AND field_type = $2
			  ORDER BY id
			  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, pq.Array(fieldIDs), domain.FieldTypeSignup)
	if err != nil {
		return nil, classify("lock signup fields", err)
	}
	defer rows.Close()

	fields, err := scanFields(rows)
	if err != nil {
		return nil, err
	}

	res := make(map[string]*domain.FieldDefinition, len(fields))
	for i := range fields {
		res[fields[i].ID] = &fields[i]
	}
	return res, nil
}

func listOtherClaims(ctx context.Context, tx *sql.Tx, fieldID, guestID string) ([]domain.Response, error) {
	query := `SELECT id, field_id, guest_id, value, created_at, updated_at
			  FROM event_field_responses
			  WHERE field_id = $1 AND guest_id <> $2`

	rows, err := tx.QueryContext(ctx, query, fieldID, guestID)
	if err != nil {
		return nil, classify("list claims", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

func (r *ResponseRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.GuestResponse, error) {
	query := `SELECT r.id, r.field_id, r.guest_id, r.value, r.created_at, r.updated_at, g.name
			  FROM event_field_responses r
			  JOIN event_fields f ON f.id = r.field_id
			  JOIN guests g ON g.id = r.guest_id
			  WHERE f.event_id = $1
			  ORDER BY r.created_at, g.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, classify("list responses by event", err)
	}
	defer rows.Close()

	var res []domain.GuestResponse
	for rows.Next() {
		var gr domain.GuestResponse
		if err = rows.Scan(
			&gr.ID, &gr.FieldID, &gr.GuestID, &gr.Value,
			&gr.CreatedAt, &gr.UpdatedAt, &gr.GuestName,
		); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		res = append(res, gr)
	}

	return res, rows.Err()
}

func (r *ResponseRepository) ListByGuest(ctx context.Context, guestID string) ([]domain.Response, error) {
	query := `SELECT id, field_id, guest_id, value, created_at, updated_at
			  FROM event_field_responses
			  WHERE guest_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, guestID)
	if err != nil {
		return nil, classify("list responses by guest", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

func (r *ResponseRepository) ListByField(ctx context.Context, fieldID string) ([]domain.Response, error) {
	query := `SELECT id, field_id, guest_id, value, created_at, updated_at
			  FROM event_field_responses
			  WHERE field_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, fieldID)
	if err != nil {
		return nil, classify("list responses by field", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

func scanResponses(rows *sql.Rows) ([]domain.Response, error) {
	var res []domain.Response
	for rows.Next() {
		var resp domain.Response
		if err := rows.Scan(
			&resp.ID, &resp.FieldID, &resp.GuestID, &resp.Value,
			&resp.CreatedAt, &resp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		res = append(res, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate responses", err)
	}
	return res, nil
}
