package customfield

import (
	"testing"
	"time"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	existing := []domain.FieldDefinition{
		{ID: "keep", EventID: "e1", Label: "Old label", CreatedAt: created},
		{ID: "drop", EventID: "e1", Label: "Gone", CreatedAt: created},
	}
	incoming := []domain.FieldDefinition{
		{ID: "keep", EventID: "e1", Label: "New label"},
		{ID: "", EventID: "e1", Label: "Fresh"},
		{ID: "other-event-field", EventID: "e1", Label: "Foreign"},
		{ID: "keep", EventID: "e1", Label: "Repeated id"},
	}

	changes := Diff(existing, incoming, now)

	require.Len(t, changes.Update, 1)
	assert.Equal(t, "keep", changes.Update[0].ID)
	assert.Equal(t, "New label", changes.Update[0].Label)
	assert.Equal(t, created, changes.Update[0].CreatedAt)
	assert.Equal(t, now, changes.Update[0].UpdatedAt)

	require.Len(t, changes.Insert, 3)
	ids := map[string]bool{}
	for _, f := range changes.Insert {
		assert.NotEmpty(t, f.ID)
		assert.NotEqual(t, "keep", f.ID)
		assert.NotEqual(t, "other-event-field", f.ID)
		assert.Equal(t, now, f.CreatedAt)
		ids[f.ID] = true
	}
	assert.Len(t, ids, 3)

	assert.Equal(t, []string{"drop"}, changes.Delete)
	assert.False(t, changes.Empty())
}

func TestDiff_EmptyIncomingDeletesAll(t *testing.T) {
	existing := []domain.FieldDefinition{{ID: "a"}, {ID: "b"}}

	changes := Diff(existing, nil, time.Now())

	assert.Empty(t, changes.Insert)
	assert.Empty(t, changes.Update)
	assert.Equal(t, []string{"a", "b"}, changes.Delete)
}
