package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rodionsteshenko/shindig-sub000/internal/customfield"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "shindig.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedEvent(t *testing.T, store *Store, fields ...domain.FieldDefinition) *domain.Event {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	event := &domain.Event{
		ID:        "e1",
		Title:     "Potluck",
		StartsAt:  now.Add(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range fields {
		fields[i].EventID = event.ID
		fields[i].CreatedAt = now
		fields[i].UpdatedAt = now
	}
	require.NoError(t, store.Events().Create(context.Background(), event, fields))
	return event
}

func seedGuest(t *testing.T, store *Store, id string) {
	t.Helper()
	require.NoError(t, store.Guests().Create(context.Background(), &domain.Guest{
		ID:        id,
		EventID:   "e1",
		Name:      "Guest " + id,
		CreatedAt: time.Now().UTC(),
	}))
}

func signupField(maxClaims int) domain.FieldDefinition {
	return domain.FieldDefinition{
		ID:      "f-bring",
		Type:    domain.FieldTypeSignup,
		Label:   "Bring",
		Options: []string{"Chips", "Salad"},
		Config:  domain.FieldConfig{MaxClaimsPerItem: maxClaims},
	}
}

func claim(guestID, value string) []domain.Response {
	now := time.Now().UTC()
	return []domain.Response{{
		ID:        uuid.New().String(),
		FieldID:   "f-bring",
		GuestID:   guestID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}}
}

func TestStore_EventLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	desc := "what to bring"
	event := seedEvent(t, store,
		domain.FieldDefinition{ID: "f-notes", Type: domain.FieldTypeText, Label: "Notes", Description: &desc, SortOrder: 1},
		signupField(2),
	)

	got, err := store.Events().GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Potluck", got.Title)
	assert.True(t, event.StartsAt.Equal(got.StartsAt))

	fields, err := store.Fields().ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "f-bring", fields[0].ID)
	assert.Equal(t, []string{"Chips", "Salad"}, fields[0].Options)
	assert.Equal(t, 2, fields[0].Config.MaxClaimsPerItem)
	require.NotNil(t, fields[1].Description)
	assert.Equal(t, desc, *fields[1].Description)

	signups, err := store.Fields().ListByType(ctx, domain.FieldTypeSignup)
	require.NoError(t, err)
	assert.Len(t, signups, 1)

	seedGuest(t, store, "g1")
	require.NoError(t, store.Responses().Submit(ctx, "g1", claim("g1", "Chips"), customfield.NewClaimLimiter()))

	// dropping the signup field removes its responses
	notes := fields[1]
	notes.Label = "Allergies"
	notes.UpdatedAt = time.Now().UTC()
	got.Title = "Potluck v2"
	require.NoError(t, store.Events().Update(ctx, got, domain.FieldChangeSet{
		Update: []domain.FieldDefinition{notes},
		Delete: []string{"f-bring"},
	}))

	fields, err = store.Fields().ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Allergies", fields[0].Label)

	responses, err := store.Responses().ListByGuest(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.Events().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = store.Guests().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrGuestNotFound)

	err = store.Guests().Create(ctx, &domain.Guest{ID: "g1", EventID: "missing", Name: "Ann"})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	err = store.Events().Update(ctx, &domain.Event{ID: "missing"}, domain.FieldChangeSet{})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestResponseRepository_Submit_Resubmission(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	seedEvent(t, store, signupField(1))
	seedGuest(t, store, "g1")
	seedGuest(t, store, "g2")

	limiter := customfield.NewClaimLimiter()
	require.NoError(t, store.Responses().Submit(ctx, "g1", claim("g1", "Chips"), limiter))

	// the holder may re-confirm and then switch
	require.NoError(t, store.Responses().Submit(ctx, "g1", claim("g1", "Chips"), limiter))
	require.NoError(t, store.Responses().Submit(ctx, "g1", claim("g1", "Salad"), limiter))

	// the released option is free again
	require.NoError(t, store.Responses().Submit(ctx, "g2", claim("g2", "Chips"), limiter))

	err := store.Responses().Submit(ctx, "g2", claim("g2", "Salad"), limiter)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacity)

	all, err := store.Responses().ListByEvent(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	values := map[string]string{}
	for _, r := range all {
		values[r.GuestName] = r.Value
	}
	assert.Equal(t, map[string]string{"Guest g1": "Salad", "Guest g2": "Chips"}, values)
}

func TestResponseRepository_Submit_UpsertKeepsSingleRow(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	seedEvent(t, store, signupField(1))
	seedGuest(t, store, "g1")

	limiter := customfield.NewClaimLimiter()
	first := claim("g1", "Chips")
	first[0].CreatedAt = first[0].CreatedAt.Add(-time.Minute).Truncate(time.Millisecond)
	first[0].UpdatedAt = first[0].CreatedAt
	require.NoError(t, store.Responses().Submit(ctx, "g1", first, limiter))

	stored, err := store.Responses().ListByGuest(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	original := stored[0]

	// same answer again, later, under a fresh response id
	again := claim("g1", "Chips")
	again[0].CreatedAt = original.CreatedAt.Add(time.Second)
	again[0].UpdatedAt = again[0].CreatedAt
	require.NoError(t, store.Responses().Submit(ctx, "g1", again, limiter))

	stored, err = store.Responses().ListByGuest(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, original.ID, stored[0].ID)
	assert.True(t, original.CreatedAt.Equal(stored[0].CreatedAt))
	assert.True(t, stored[0].UpdatedAt.After(original.UpdatedAt))
	assert.Equal(t, "Chips", stored[0].Value)
}

func TestResponseRepository_Submit_ConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	seedEvent(t, store, signupField(2))

	const guests = 12
	for i := 0; i < guests; i++ {
		seedGuest(t, store, fmt.Sprintf("g%d", i))
	}

	limiter := customfield.NewClaimLimiter()
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		accepted  int
		rejected  int
		unexpects []error
	)
	for i := 0; i < guests; i++ {
		wg.Add(1)
		go func(guestID string) {
			defer wg.Done()
			err := store.Responses().Submit(ctx, guestID, claim(guestID, "Chips"), limiter)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, domain.ErrCapacity):
				rejected++
			default:
				unexpects = append(unexpects, err)
			}
		}(fmt.Sprintf("g%d", i))
	}
	wg.Wait()

	require.Empty(t, unexpects)
	assert.Equal(t, 2, accepted)
	assert.Equal(t, guests-2, rejected)

	claims, err := store.Responses().ListByField(ctx, "f-bring")
	require.NoError(t, err)
	assert.Len(t, claims, 2)

	field := signupField(2)
	assert.Empty(t, customfield.FindViolations(&field, claims))
}
