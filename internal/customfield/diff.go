package customfield

import (
	"time"

	"github.com/google/uuid"
	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

// Diff computes the declarative sync of an event's field set. Incoming
// definitions whose ID names an existing field of the same event update it;
// all others become inserts with a fresh ID, so a host can never take over
// a field of another event. Existing fields absent from incoming are
// deleted, which cascades to their responses.
func Diff(existing, incoming []domain.FieldDefinition, now time.Time) domain.FieldChangeSet {
	current := make(map[string]domain.FieldDefinition, len(existing))
	for _, f := range existing {
		current[f.ID] = f
	}

	var changes domain.FieldChangeSet
	kept := make(map[string]struct{}, len(incoming))

	for _, f := range incoming {
		old, known := current[f.ID]
		if _, taken := kept[f.ID]; f.ID == "" || !known || taken {
			f.ID = uuid.New().String()
			f.CreatedAt = now
			f.UpdatedAt = now
			changes.Insert = append(changes.Insert, f)
			continue
		}

		kept[f.ID] = struct{}{}
		f.EventID = old.EventID
		f.CreatedAt = old.CreatedAt
		f.UpdatedAt = now
		changes.Update = append(changes.Update, f)
	}

	for _, f := range existing {
		if _, ok := kept[f.ID]; !ok {
			changes.Delete = append(changes.Delete, f.ID)
		}
	}

	return changes
}
