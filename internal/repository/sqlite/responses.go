package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
)

const responseColumns = `id, field_id, guest_id, value, created_at, updated_at`

type ResponseRepository struct {
	db *sql.DB
}

// Submit checks claims and upserts the guest's responses in one immediate
// transaction. All reads inside go through tx: the pool holds a single
// connection and a second checkout would block forever.
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

	signups, err := signupFields(ctx, tx, fieldIDs)
	if err != nil {
		return err
	}

	var problems []domain.Problem
	for _, resp := range responses {
		field, ok := signups[resp.FieldID]
		if !ok {
			continue
		}
		others, err := otherClaims(ctx, tx, field.ID, guestID)
		if err != nil {
			return err
		}
		problems = append(problems, enforcer.Enforce(field, guestID, resp.Value, others)...)
	}
	if len(problems) > 0 {
		return domain.NewValidationError(domain.KindCapacity, problems)
	}

	for _, resp := range responses {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO event_field_responses (`+responseColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (field_id, guest_id)
			 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			resp.ID, resp.FieldID, guestID, resp.Value,
			toMillis(resp.CreatedAt), toMillis(resp.UpdatedAt),
		); err != nil {
			return classify("upsert response", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return classify("commit", err)
	}
	return nil
}

func signupFields(ctx context.Context, tx *sql.Tx, fieldIDs []string) (map[string]*domain.FieldDefinition, error) {
	args := append([]any{string(domain.FieldTypeSignup)}, stringArgs(fieldIDs)...)
	rows, err := tx.QueryContext(ctx,
		`SELECT `+fieldColumns+` FROM event_fields
		 WHERE field_type = ? AND id IN (`+placeholders(len(fieldIDs))+`)`,
		args...)
	if err != nil {
		return nil, classify("load signup fields", err)
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

func otherClaims(ctx context.Context, tx *sql.Tx, fieldID, guestID string) ([]domain.Response, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT `+responseColumns+` FROM event_field_responses WHERE field_id = ? AND guest_id <> ?`,
		fieldID, guestID)
	if err != nil {
		return nil, classify("list claims", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

func (r *ResponseRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.GuestResponse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.field_id, r.guest_id, r.value, r.created_at, r.updated_at, g.name
		 FROM event_field_responses r
		 JOIN event_fields f ON f.id = r.field_id
		 JOIN guests g ON g.id = r.guest_id
		 WHERE f.event_id = ?
		 ORDER BY r.created_at, g.name`,
		eventID)
	if err != nil {
		return nil, classify("list responses by event", err)
	}
	defer rows.Close()

	var res []domain.GuestResponse
	for rows.Next() {
		var (
			gr                   domain.GuestResponse
			createdAt, updatedAt int64
		)
		if err = rows.Scan(&gr.ID, &gr.FieldID, &gr.GuestID, &gr.Value, &createdAt, &updatedAt, &gr.GuestName); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		gr.CreatedAt = fromMillis(createdAt)
		gr.UpdatedAt = fromMillis(updatedAt)
		res = append(res, gr)
	}
	return res, rows.Err()
}

func (r *ResponseRepository) ListByGuest(ctx context.Context, guestID string) ([]domain.Response, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+responseColumns+` FROM event_field_responses WHERE guest_id = ? ORDER BY created_at`,
		guestID)
	if err != nil {
		return nil, classify("list responses by guest", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

func (r *ResponseRepository) ListByField(ctx context.Context, fieldID string) ([]domain.Response, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+responseColumns+` FROM event_field_responses WHERE field_id = ? ORDER BY created_at`,
		fieldID)
	if err != nil {
		return nil, classify("list responses by field", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

func scanResponses(rows *sql.Rows) ([]domain.Response, error) {
	var res []domain.Response
	for rows.Next() {
		var (
			resp                 domain.Response
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&resp.ID, &resp.FieldID, &resp.GuestID, &resp.Value, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		resp.CreatedAt = fromMillis(createdAt)
		resp.UpdatedAt = fromMillis(updatedAt)
		res = append(res, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate responses", err)
	}
	return res, nil
}
