package ports

import (
	"context"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

type FieldRepo interface {
	ListByEvent(ctx context.Context, eventID string) ([]domain.FieldDefinition, error)
	ListByType(ctx context.Context, fieldType domain.FieldType) ([]domain.FieldDefinition, error)
}
