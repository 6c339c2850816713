package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

type GuestRepository struct {
	db *sql.DB
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO guests (id, event_id, name, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.EventID, g.Name, g.Email, toMillis(g.CreatedAt),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEventNotFound
		}
		return classify("insert guest", err)
	}
	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, name, email, created_at FROM guests WHERE id = ?`, id)

	g, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, classify("get guest", err)
	}
	return g, nil
}

func (r *GuestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, name, email, created_at FROM guests WHERE event_id = ? ORDER BY created_at`,
		eventID)
	if err != nil {
		return nil, classify("list guests", err)
	}
	defer rows.Close()

	var res []*domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, g)
	}
	return res, rows.Err()
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	var (
		g         domain.Guest
		createdAt int64
	)
	if err := row.Scan(&g.ID, &g.EventID, &g.Name, &g.Email, &createdAt); err != nil {
		return nil, err
	}
	g.CreatedAt = fromMillis(createdAt)
	return &g, nil
}
