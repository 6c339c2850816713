package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/rodionsteshenko/shindig-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockFieldRepo, *mocks.MockResultsInvalidator) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	fieldRepo := mocks.NewMockFieldRepo(t)
	results := mocks.NewMockResultsInvalidator(t)
	return NewEventService(eventRepo, fieldRepo, results, newTestLogger(t)), eventRepo, fieldRepo, results
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo, _, _ := newEventService(t)

	var stored []domain.FieldDefinition
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Event, fields []domain.FieldDefinition) {
			stored = fields
		}).
		Return(nil)

	input := domain.CreateEventInput{
		Title:       "  Potluck ",
		Description: "Bring food",
		StartsAt:    time.Now().Add(24 * time.Hour),
		Fields: []domain.FieldDraft{
			{Type: "signup", Label: "Bring", Options: []any{"Chips", "Salad"}},
			{ID: "client-id", Type: "poll", Label: "Day", Options: []any{"Fri", "Sat"}, Config: domain.FieldDraftConfig{MultiSelect: true}},
		},
	}

	details, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Potluck", details.Event.Title)
	assert.NotEmpty(t, details.Event.ID)
	require.Len(t, details.Fields, 2)
	require.Len(t, stored, 2)
	assert.Equal(t, "Bring", details.Fields[0].Label)
	assert.Equal(t, 1, details.Fields[0].Config.MaxClaimsPerItem)
	assert.True(t, details.Fields[1].Config.MultiSelect)
	assert.NotEqual(t, "client-id", details.Fields[1].ID)
	for _, f := range stored {
		assert.Equal(t, details.Event.ID, f.EventID)
	}
}

func TestEventService_CreateEvent_EmptyTitle(t *testing.T) {
	svc, _, _, _ := newEventService(t)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		StartsAt: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_PastDate(t *testing.T) {
	svc, _, _, _ := newEventService(t)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "Old",
		StartsAt: time.Now().Add(-time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_InvalidFields(t *testing.T) {
	svc, _, _, _ := newEventService(t)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "Party",
		StartsAt: time.Now().Add(time.Hour),
		Fields: []domain.FieldDraft{
			{Type: "dropdown", Label: "Color"},
			{Type: "poll", Label: "Day", Options: []any{"Fri"}},
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.KindSchema, vErr.Kind)
	assert.Len(t, vErr.Problems, 2)
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	svc, eventRepo, _, _ := newEventService(t)

	repoErr := errors.New("db error")
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "Party",
		StartsAt: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_UpdateEvent_SyncsFields(t *testing.T) {
	svc, eventRepo, fieldRepo, results := newEventService(t)

	created := time.Now().Add(-48 * time.Hour).UTC()
	event := &domain.Event{ID: "e1", Title: "Party", StartsAt: time.Now().Add(time.Hour)}
	existing := []domain.FieldDefinition{
		{ID: "f1", EventID: "e1", Type: domain.FieldTypeText, Label: "Notes", CreatedAt: created},
		{ID: "f2", EventID: "e1", Type: domain.FieldTypePoll, Label: "Day", Options: []string{"Fri", "Sat"}, CreatedAt: created},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(existing, nil)

	var changes domain.FieldChangeSet
	eventRepo.EXPECT().Update(mock.Anything, event, mock.Anything).
		Run(func(_ context.Context, _ *domain.Event, c domain.FieldChangeSet) {
			changes = c
		}).
		Return(nil)
	results.EXPECT().Invalidate("e1").Return()

	details, err := svc.UpdateEvent(context.Background(), "e1", domain.UpdateEventInput{
		Title:    "Party v2",
		StartsAt: event.StartsAt,
		Fields: []domain.FieldDraft{
			{ID: "f1", Type: "text", Label: "Allergies"},
			{Type: "signup", Label: "Bring", Options: []any{"Chips", "Salad"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Party v2", details.Event.Title)
	require.Len(t, changes.Update, 1)
	assert.Equal(t, "Allergies", changes.Update[0].Label)
	assert.Equal(t, created, changes.Update[0].CreatedAt)
	require.Len(t, changes.Insert, 1)
	assert.Equal(t, domain.FieldTypeSignup, changes.Insert[0].Type)
	assert.Equal(t, []string{"f2"}, changes.Delete)
	assert.Len(t, details.Fields, 2)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	svc, eventRepo, _, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.UpdateEvent(context.Background(), "missing", domain.UpdateEventInput{
		Title:    "Party",
		StartsAt: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetDetails_Success(t *testing.T) {
	svc, eventRepo, fieldRepo, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Title: "Party"}, nil)
	fieldRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return([]domain.FieldDefinition{
		{ID: "f2", Label: "Second", SortOrder: 1},
		{ID: "f1", Label: "First", SortOrder: 0},
	}, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
	require.Len(t, details.Fields, 2)
	assert.Equal(t, "f1", details.Fields[0].ID)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, eventRepo, _, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_Success(t *testing.T) {
	svc, eventRepo, _, _ := newEventService(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1"},
		{ID: "e2", Title: "Event 2"},
	}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestEventService_List_Error(t *testing.T) {
	svc, eventRepo, _, _ := newEventService(t)

	eventRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}
