package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/metrics"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	return metrics.New(prometheus.NewRegistry())
}

type responseFixture struct {
	svc          *ResponseService
	fieldRepo    *mocks.MockFieldRepo
	guestRepo    *mocks.MockGuestRepo
	responseRepo *mocks.MockResponseRepo
	results      *mocks.MockResultsInvalidator
}

func newResponseFixture(t *testing.T, attempts uint) *responseFixture {
	t.Helper()
	f := &responseFixture{
		fieldRepo:    mocks.NewMockFieldRepo(t),
		guestRepo:    mocks.NewMockGuestRepo(t),
		responseRepo: mocks.NewMockResponseRepo(t),
		results:      mocks.NewMockResultsInvalidator(t),
	}
	f.svc = NewResponseService(
		f.fieldRepo, f.guestRepo, f.responseRepo,
		customfield.NewClaimLimiter(), f.results,
		newTestMetrics(t), newTestLogger(t), attempts,
	)
	return f
}

func potluckFields() []domain.FieldDefinition {
	return []domain.FieldDefinition{
		{ID: "f-bring", EventID: "e1", Type: domain.FieldTypeSignup, Label: "Bring",
			Options: []string{"Chips", "Salad"}, Config: domain.FieldConfig{MaxClaimsPerItem: 1}},
		{ID: "f-day", EventID: "e1", Type: domain.FieldTypePoll, Label: "Day", SortOrder: 1,
			Options: []string{"Fri", "Sat"}, Config: domain.FieldConfig{MultiSelect: true}},
	}
}

func TestResponseService_Submit_Success(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(potluckFields(), nil)

	var stored []domain.Response
	f.responseRepo.EXPECT().Submit(mock.Anything, "g1", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, responses []domain.Response, _ ports.ClaimEnforcer) {
			stored = responses
		}).
		Return(nil)
	f.results.EXPECT().Invalidate("e1").Return()

	res, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{
		EventID: "e1",
		GuestID: "g1",
		Responses: []domain.ResponseInput{
			{FieldID: "f-bring", Value: "chips"},
			{FieldID: "f-day", Value: "sat, Fri"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "g1", res.GuestID)
	require.Len(t, stored, 2)
	assert.Equal(t, "Chips", stored[0].Value)
	assert.Equal(t, "Sat, Fri", stored[1].Value)
	for _, r := range stored {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "g1", r.GuestID)
	}
}

func TestResponseService_Submit_EmptySubmission(t *testing.T) {
	f := newResponseFixture(t, 3)

	fields := potluckFields()
	fields[0].Required = true

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(fields, nil)
	f.results.EXPECT().Invalidate("e1").Return()

	res, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{EventID: "e1", GuestID: "g1"})

	require.NoError(t, err)
	assert.Empty(t, res.Responses)
}

func TestResponseService_Submit_GuestOfOtherEvent(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "other"}, nil)

	_, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{EventID: "e1", GuestID: "g1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
}

func TestResponseService_Submit_AccumulatesCapacityWithOtherProblems(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(potluckFields(), nil)
	f.responseRepo.EXPECT().ListByField(mock.Anything, "f-bring").Return([]domain.Response{
		{FieldID: "f-bring", GuestID: "g2", Value: "Chips"},
	}, nil)

	_, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{
		EventID: "e1",
		GuestID: "g1",
		Responses: []domain.ResponseInput{
			{FieldID: "f-bring", Value: "Chips"},
			{FieldID: "f-day", Value: "Sun"},
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.KindResponse, vErr.Kind)
	assert.ErrorIs(t, err, domain.ErrCapacity)

	codes := make([]domain.ProblemCode, 0, len(vErr.Problems))
	for _, p := range vErr.Problems {
		codes = append(codes, p.Code)
	}
	assert.ElementsMatch(t, []domain.ProblemCode{domain.CodeInvalidOption, domain.CodeFullyClaimed}, codes)
}

func TestResponseService_Submit_CapacityFromStore(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(potluckFields(), nil)
	f.responseRepo.EXPECT().Submit(mock.Anything, "g1", mock.Anything, mock.Anything).
		Return(domain.NewValidationError(domain.KindCapacity, []domain.Problem{
			{Code: domain.CodeFullyClaimed, FieldID: "f-bring", Option: "Chips", Message: `"Bring": option "Chips" is fully claimed`},
		})).Once()

	_, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{
		EventID:   "e1",
		GuestID:   "g1",
		Responses: []domain.ResponseInput{{FieldID: "f-bring", Value: "Chips"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacity)
	assert.Contains(t, err.Error(), `option "Chips" is fully claimed`)
}

func TestResponseService_Submit_RetriesConflict(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(potluckFields(), nil).Times(2)
	f.responseRepo.EXPECT().Submit(mock.Anything, "g1", mock.Anything, mock.Anything).
		Return(fmt.Errorf("submit: %w", domain.ErrConflict)).Once()
	f.responseRepo.EXPECT().Submit(mock.Anything, "g1", mock.Anything, mock.Anything).
		Return(nil).Once()
	f.results.EXPECT().Invalidate("e1").Return()

	_, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{
		EventID:   "e1",
		GuestID:   "g1",
		Responses: []domain.ResponseInput{{FieldID: "f-bring", Value: "Salad"}},
	})

	require.NoError(t, err)
}

func TestResponseService_Submit_ConflictExhausted(t *testing.T) {
	f := newResponseFixture(t, 2)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(potluckFields(), nil).Times(2)
	f.responseRepo.EXPECT().Submit(mock.Anything, "g1", mock.Anything, mock.Anything).
		Return(domain.ErrConflict).Times(2)

	_, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{
		EventID:   "e1",
		GuestID:   "g1",
		Responses: []domain.ResponseInput{{FieldID: "f-bring", Value: "Salad"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestResponseService_Submit_PersistenceNotRetried(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(potluckFields(), nil).Once()
	f.responseRepo.EXPECT().Submit(mock.Anything, "g1", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: disk full", domain.ErrPersistence)).Once()

	_, err := f.svc.Submit(context.Background(), domain.SubmitResponsesInput{
		EventID:   "e1",
		GuestID:   "g1",
		Responses: []domain.ResponseInput{{FieldID: "f-bring", Value: "Salad"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestResponseService_ListForGuest(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", EventID: "e1"}, nil)
	f.responseRepo.EXPECT().ListByGuest(mock.Anything, "g1").Return([]domain.Response{{ID: "r1"}}, nil)

	responses, err := f.svc.ListForGuest(context.Background(), "e1", "g1")

	require.NoError(t, err)
	assert.Len(t, responses, 1)
}

func TestResponseService_ListForGuest_GuestNotFound(t *testing.T) {
	f := newResponseFixture(t, 3)

	f.guestRepo.EXPECT().GetByID(mock.Anything, "g1").Return(nil, domain.ErrGuestNotFound)

	_, err := f.svc.ListForGuest(context.Background(), "e1", "g1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGuestNotFound))
}
