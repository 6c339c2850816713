package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EventDetails struct {
	Event  Event             `json:"event"`
	Fields []FieldDefinition `json:"fields"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Fields      []FieldDraft
}

// UpdateEventInput replaces the event attributes and declaratively syncs
// the whole field set: drafts with a known ID are updated, drafts without
// one are inserted, existing fields missing from Fields are deleted.
type UpdateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Fields      []FieldDraft
}
