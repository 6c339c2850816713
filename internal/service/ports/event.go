package ports

import (
	"context"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, fields []domain.FieldDefinition) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event, changes domain.FieldChangeSet) error
}
