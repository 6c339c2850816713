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

type GuestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGuestRepo(db *dbpg.DB) *GuestRepository {
	return &GuestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `INSERT INTO guests (id, event_id, name, email, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, g.ID, g.EventID, g.Name, g.Email, g.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return classify("insert guest", err)
	}

	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT id, event_id, name, email, created_at
			  FROM guests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify("get guest", err)
	}

	var g domain.Guest
	if err = row.Scan(&g.ID, &g.EventID, &g.Name, &g.Email, &g.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, classify("scan guest", err)
	}

	return &g, nil
}

func (r *GuestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	query := `SELECT id, event_id, name, email, created_at
			  FROM guests
			  WHERE event_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, classify("list guests", err)
	}
	defer rows.Close()

	var res []*domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err = rows.Scan(&g.ID, &g.EventID, &g.Name, &g.Email, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, &g)
	}

	return res, rows.Err()
}
