package ports

import (
	"context"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

type GuestRepo interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Guest, error)
}
