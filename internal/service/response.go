package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/metrics"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultSubmitAttempts = 3

type ResponseService struct {
	fieldRepo    ports.FieldRepo
	guestRepo    ports.GuestRepo
	responseRepo ports.ResponseRepo
	enforcer     ports.ClaimEnforcer
	results      ports.ResultsInvalidator
	metrics      *metrics.Metrics
	logger       logger.Logger
	attempts     uint
}

func NewResponseService(
	fieldRepo ports.FieldRepo,
	guestRepo ports.GuestRepo,
	responseRepo ports.ResponseRepo,
	enforcer ports.ClaimEnforcer,
	results ports.ResultsInvalidator,
	metrics *metrics.Metrics,
	logger logger.Logger,
	attempts uint,
) *ResponseService {
	if attempts == 0 {
		attempts = defaultSubmitAttempts
	}
	return &ResponseService{
		fieldRepo:    fieldRepo,
		guestRepo:    guestRepo,
		responseRepo: responseRepo,
		enforcer:     enforcer,
		results:      results,
		metrics:      metrics,
		logger:       logger,
		attempts:     attempts,
	}
}

// Submit validates and stores one guest's answers. Either all answers are
// stored or none. A storage conflict re-runs the whole sequence from freshly
// read definitions and claims.
func (s *ResponseService) Submit(ctx context.Context, input domain.SubmitResponsesInput) (*domain.SubmissionResult, error) {
	guest, err := s.guest(ctx, input.EventID, input.GuestID)
	if err != nil {
		return nil, err
	}

	attempt := 0
	op := func() (*domain.SubmissionResult, error) {
		attempt++
		res, err := s.submitOnce(ctx, guest, input.Responses)
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.ObserveConflictRetry()
			s.logger.Warn("response submission conflict",
				logger.String("guest_id", guest.ID),
				logger.Int("attempt", attempt),
				logger.String("error", err.Error()),
			)
			return nil, err
		}
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return res, nil
	}

	res, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(newSubmitBackOff()),
		backoff.WithMaxTries(s.attempts),
	)
	s.observe(err)
	if err != nil {
		return nil, fmt.Errorf("submit responses: %w", err)
	}

	s.results.Invalidate(guest.EventID)

	s.logger.Info("responses submitted",
		logger.String("event_id", guest.EventID),
		logger.String("guest_id", guest.ID),
		logger.Int("responses", len(res.Responses)),
	)

	return res, nil
}

func (s *ResponseService) submitOnce(ctx context.Context, guest *domain.Guest, inputs []domain.ResponseInput) (*domain.SubmissionResult, error) {
	fields, err := s.fieldRepo.ListByEvent(ctx, guest.EventID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	answers, problems := customfield.ValidateResponses(inputs, fields)
	if len(problems) > 0 {
		// report capacity problems of the otherwise valid answers in the same pass
		capacity, err := s.precheckClaims(ctx, guest.ID, fields, answers)
		if err != nil {
			return nil, err
		}
		return nil, domain.NewValidationError(domain.KindResponse, append(problems, capacity...))
	}

	res := &domain.SubmissionResult{GuestID: guest.ID, Responses: make([]domain.Answer, 0, len(answers))}
	res.Responses = append(res.Responses, answers...)
	if len(answers) == 0 {
		return res, nil
	}

	now := time.Now().UTC()
	responses := make([]domain.Response, 0, len(answers))
	for _, a := range answers {
		responses = append(responses, domain.Response{
			ID:        uuid.New().String(),
			FieldID:   a.FieldID,
			GuestID:   guest.ID,
			Value:     a.Value,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err = s.responseRepo.Submit(ctx, guest.ID, responses, s.enforcer); err != nil {
		return nil, err
	}

	return res, nil
}

// precheckClaims runs the claim check without locking. Only used to enrich
// an already failing submission, never to admit one.
func (s *ResponseService) precheckClaims(ctx context.Context, guestID string, fields []domain.FieldDefinition, answers []domain.Answer) ([]domain.Problem, error) {
	byID := make(map[string]*domain.FieldDefinition, len(fields))
	for i := range fields {
		byID[fields[i].ID] = &fields[i]
	}

	var problems []domain.Problem
	for _, a := range answers {
		field, ok := byID[a.FieldID]
		if !ok || field.Type != domain.FieldTypeSignup || a.Value == "" {
			continue
		}
		others, err := s.responseRepo.ListByField(ctx, field.ID)
		if err != nil {
			return nil, fmt.Errorf("list claims: %w", err)
		}
		problems = append(problems, s.enforcer.Enforce(field, guestID, a.Value, others)...)
	}
	return problems, nil
}

func (s *ResponseService) ListForGuest(ctx context.Context, eventID, guestID string) ([]domain.Response, error) {
	guest, err := s.guest(ctx, eventID, guestID)
	if err != nil {
		return nil, err
	}
	return s.responseRepo.ListByGuest(ctx, guest.ID)
}

func (s *ResponseService) guest(ctx context.Context, eventID, guestID string) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	if guest.EventID != eventID {
		return nil, fmt.Errorf("get guest: %w", domain.ErrGuestNotFound)
	}
	return guest, nil
}

func (s *ResponseService) observe(err error) {
	var vErr *domain.ValidationError
	switch {
	case err == nil:
		s.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	case errors.As(err, &vErr) && vErr.HasCapacity():
		n := 0
		for _, p := range vErr.Problems {
			if p.Code == domain.CodeFullyClaimed {
				n++
			}
		}
		s.metrics.ObserveCapacityRejections(n)
		s.metrics.ObserveSubmission(metrics.OutcomeCapacity)
	case errors.As(err, &vErr):
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
	case errors.Is(err, domain.ErrConflict):
		s.metrics.ObserveSubmission(metrics.OutcomeConflict)
	default:
		s.metrics.ObserveSubmission(metrics.OutcomeError)
	}
}

func newSubmitBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	return b
}
