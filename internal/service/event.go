package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo      ports.EventRepo
	fieldRepo ports.FieldRepo
	results   ports.ResultsInvalidator
	logger    logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	fieldRepo ports.FieldRepo,
	results ports.ResultsInvalidator,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:      repo,
		fieldRepo: fieldRepo,
		results:   results,
		logger:    logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventDetails, error) {
	if err := validateEventAttrs(input.Title, input.StartsAt); err != nil {
		return nil, err
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if problems := customfield.ValidateDefinitions(input.Fields); len(problems) > 0 {
		return nil, domain.NewValidationError(domain.KindSchema, problems)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// on create every draft is new, whatever id it carries
	changes := customfield.Diff(nil, customfield.NormalizeDefinitions(event.ID, input.Fields), now)

	if err := s.repo.Create(ctx, event, changes.Insert); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.Int("fields", len(changes.Insert)),
	)

	return &domain.EventDetails{Event: *event, Fields: sortFields(changes.Insert)}, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.EventDetails, error) {
	if err := validateEventAttrs(input.Title, input.StartsAt); err != nil {
		return nil, err
	}
	if problems := customfield.ValidateDefinitions(input.Fields); len(problems) > 0 {
		return nil, domain.NewValidationError(domain.KindSchema, problems)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing, err := s.fieldRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	now := time.Now().UTC()
	changes := customfield.Diff(existing, customfield.NormalizeDefinitions(id, input.Fields), now)

	event.Title = strings.TrimSpace(input.Title)
	event.Description = input.Description
	event.Location = input.Location
	event.StartsAt = input.StartsAt.UTC()
	event.UpdatedAt = now

	if err = s.repo.Update(ctx, event, changes); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.results.Invalidate(id)

	s.logger.Info("event updated",
		logger.String("event_id", id),
		logger.Int("fields_inserted", len(changes.Insert)),
		logger.Int("fields_updated", len(changes.Update)),
		logger.Int("fields_deleted", len(changes.Delete)),
	)

	fields := make([]domain.FieldDefinition, 0, len(changes.Update)+len(changes.Insert))
	fields = append(fields, changes.Update...)
	fields = append(fields, changes.Insert...)

	return &domain.EventDetails{Event: *event, Fields: sortFields(fields)}, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := s.fieldRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	return &domain.EventDetails{Event: *event, Fields: sortFields(fields)}, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func validateEventAttrs(title string, startsAt time.Time) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if startsAt.IsZero() {
		return fmt.Errorf("%w: starts_at is required", domain.ErrValidation)
	}
	return nil
}

func sortFields(fields []domain.FieldDefinition) []domain.FieldDefinition {
	out := make([]domain.FieldDefinition, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}
