package ports

import (
	"context"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

// ClaimEnforcer decides whether a guest may hold the options in value given
// the responses of all other guests to the same signup field.
type ClaimEnforcer interface {
	Enforce(field *domain.FieldDefinition, guestID, value string, others []domain.Response) []domain.Problem
}

type ResponseRepo interface {
	// Submit upserts all responses of one guest atomically. For every signup
	// field touched, the claims of other guests are re-read and checked with
	// enforcer inside the same transaction; any problem aborts the whole
	// submission with a *domain.ValidationError of kind capacity.
	Submit(ctx context.Context, guestID string, responses []domain.Response, enforcer ClaimEnforcer) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.GuestResponse, error)
	ListByGuest(ctx context.Context, guestID string) ([]domain.Response, error)
	ListByField(ctx context.Context, fieldID string) ([]domain.Response, error)
}
