package dto

import (
	"time"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartsAt    string `json:"starts_at"`
	CreatedAt   string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event  EventResponse   `json:"event"`
	Fields []FieldResponse `json:"custom_fields"`
}

type FieldResponse struct {
	ID          string             `json:"id"`
	Type        string             `json:"field_type"`
	Label       string             `json:"label"`
	Description *string            `json:"description,omitempty"`
	Required    bool               `json:"required"`
	SortOrder   int                `json:"sort_order"`
	Options     []string           `json:"options"`
	Config      domain.FieldConfig `json:"config"`
}

type GuestResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AnswerResponse struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}

type SubmissionResponse struct {
	Valid     bool             `json:"valid"`
	GuestID   string           `json:"guest_id"`
	Responses []AnswerResponse `json:"custom_responses"`
}

type StoredResponse struct {
	FieldID   string `json:"field_id"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}

// ValidationErrorResponse carries the plain messages for display plus the
// structured problems for clients that branch on codes.
// ValidationResultResponse is the body of a successful validation; errors is
// always present so clients can read both outcomes the same way.
type ValidationResultResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type ValidationErrorResponse struct {
	Valid    bool             `json:"valid"`
	Kind     string           `json:"kind"`
	Errors   []string         `json:"errors"`
	Problems []domain.Problem `json:"problems"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt.Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	fields := make([]FieldResponse, 0, len(d.Fields))
	for i := range d.Fields {
		fields = append(fields, ToFieldResponse(&d.Fields[i]))
	}

	return EventDetailsResponse{
		Event:  ToEventResponse(&d.Event),
		Fields: fields,
	}
}

func ToFieldResponse(f *domain.FieldDefinition) FieldResponse {
	var options []string
	if f.Type.HasOptions() {
		options = f.Options
	}
	return FieldResponse{
		ID:          f.ID,
		Type:        string(f.Type),
		Label:       f.Label,
		Description: f.Description,
		Required:    f.Required,
		SortOrder:   f.SortOrder,
		Options:     options,
		Config:      f.Config,
	}
}

func ToGuestResponse(g *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		EventID:   g.EventID,
		Name:      g.Name,
		Email:     g.Email,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
}

func ToSubmissionResponse(res *domain.SubmissionResult) SubmissionResponse {
	answers := make([]AnswerResponse, 0, len(res.Responses))
	for _, a := range res.Responses {
		answers = append(answers, AnswerResponse{FieldID: a.FieldID, Value: a.Value})
	}
	return SubmissionResponse{Valid: true, GuestID: res.GuestID, Responses: answers}
}

func ToStoredResponses(responses []domain.Response) []StoredResponse {
	out := make([]StoredResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, StoredResponse{
			FieldID:   r.FieldID,
			Value:     r.Value,
			UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func ToValidationErrorResponse(err *domain.ValidationError) ValidationErrorResponse {
	return ValidationErrorResponse{
		Valid:    false,
		Kind:     string(err.Kind),
		Errors:   err.Messages(),
		Problems: err.Problems,
	}
}
