package domain

import "time"

type Response struct {
	ID        string    `json:"id"`
	FieldID   string    `json:"field_id"`
	GuestID   string    `json:"guest_id"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GuestResponse is a stored response joined with the name of the guest
// who gave it.
type GuestResponse struct {
	Response
	GuestName string `json:"guest_name"`
}

// ResponseInput is one raw answer from a guest submission. Value is kept
// untyped so a non-string payload can be reported instead of rejected
// wholesale by the decoder.
type ResponseInput struct {
	FieldID string
	Value   any
}

// Answer is a validated, normalized answer ready to be upserted.
type Answer struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}

type SubmitResponsesInput struct {
	EventID   string
	GuestID   string
	Responses []ResponseInput
}

type SubmissionResult struct {
	GuestID   string   `json:"guest_id"`
	Responses []Answer `json:"responses"`
}
