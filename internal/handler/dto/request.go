package dto

import "github.com/rodionsteshenko/shindig-sub000/internal/domain"

type EventRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	StartsAt    string         `json:"starts_at" binding:"required"`
	Fields      []FieldRequest `json:"custom_fields"`
}

// FieldRequest keeps options untyped so that non-string entries reach the
// field validator instead of failing JSON binding.
type FieldRequest struct {
	ID          string             `json:"id"`
	Type        string             `json:"field_type"`
	TypeAlias   string             `json:"type"`
	Label       string             `json:"label"`
	Description *string            `json:"description"`
	Required    bool               `json:"required"`
	SortOrder   *int               `json:"sort_order"`
	Options     []any              `json:"options"`
	Config      FieldConfigRequest `json:"config"`
}

type FieldConfigRequest struct {
	MaxClaimsPerItem *int `json:"max_claims_per_item"`
	MultiSelect      bool `json:"multi_select"`
}

type ValidateFieldsRequest struct {
	Fields []FieldRequest `json:"custom_fields"`
}

type CreateGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type SubmitResponsesRequest struct {
	Responses []ResponseItem `json:"custom_responses"`
}

type ResponseItem struct {
	FieldID string `json:"field_id"`
	Value   any    `json:"value"`
}

// fieldType prefers field_type and falls back to the shorter type key.
func (f FieldRequest) fieldType() string {
	if f.Type != "" {
		return f.Type
	}
	return f.TypeAlias
}

func ToFieldDrafts(fields []FieldRequest) []domain.FieldDraft {
	drafts := make([]domain.FieldDraft, 0, len(fields))
	for _, f := range fields {
		drafts = append(drafts, domain.FieldDraft{
			ID:          f.ID,
			Type:        f.fieldType(),
			Label:       f.Label,
			Description: f.Description,
			Required:    f.Required,
			SortOrder:   f.SortOrder,
			Options:     f.Options,
			Config: domain.FieldDraftConfig{
				MaxClaimsPerItem: f.Config.MaxClaimsPerItem,
				MultiSelect:      f.Config.MultiSelect,
			},
		})
	}
	return drafts
}

func ToResponseInputs(items []ResponseItem) []domain.ResponseInput {
	inputs := make([]domain.ResponseInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, domain.ResponseInput{FieldID: it.FieldID, Value: it.Value})
	}
	return inputs
}
