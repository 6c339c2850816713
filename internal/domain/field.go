package domain

import (
	"strings"
	"time"
)

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypePoll   FieldType = "poll"
	FieldTypeSignup FieldType = "signup"
)

var FieldTypes = []FieldType{FieldTypeText, FieldTypePoll, FieldTypeSignup}

const (
	MaxFieldsPerEvent       = 10
	MaxLabelLength          = 200
	MinFieldOptions         = 2
	MaxFieldOptions         = 20
	MaxTextResponseLength   = 1000
	DefaultMaxClaimsPerItem = 1
)

// ParseFieldType accepts the wire names of the field types, ignoring case
// and surrounding whitespace.
func ParseFieldType(s string) (FieldType, bool) {
	switch t := FieldType(strings.ToLower(strings.TrimSpace(s))); t {
	case FieldTypeText, FieldTypePoll, FieldTypeSignup:
		return t, true
	default:
		return "", false
	}
}

// HasOptions reports whether answers to the type are picked from a list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypePoll, FieldTypeSignup:
		return true
	case FieldTypeText:
		return false
	default:
		return false
	}
}

type FieldConfig struct {
	MaxClaimsPerItem int  `json:"max_claims_per_item,omitempty"`
	MultiSelect      bool `json:"multi_select,omitempty"`
}

type FieldDefinition struct {
	ID          string      `json:"id"`
	EventID     string      `json:"event_id"`
	Type        FieldType   `json:"type"`
	Label       string      `json:"label"`
	Description *string     `json:"description,omitempty"`
	Required    bool        `json:"required"`
	SortOrder   int         `json:"sort_order"`
	Options     []string    `json:"options"`
	Config      FieldConfig `json:"config"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MaxClaims is the number of distinct guests allowed to hold one option of
// a signup field.
func (f *FieldDefinition) MaxClaims() int {
	if f.Config.MaxClaimsPerItem > 0 {
		return f.Config.MaxClaimsPerItem
	}
	return DefaultMaxClaimsPerItem
}

// FieldDraft is an unvalidated field definition as submitted by a host.
// Options stay untyped until validation proves every entry is a string.
type FieldDraft struct {
	ID          string
	Type        string
	Label       string
	Description *string
	Required    bool
	SortOrder   *int
	Options     []any
	Config      FieldDraftConfig
}

type FieldDraftConfig struct {
	MaxClaimsPerItem *int
	MultiSelect      bool
}

// FieldChangeSet is the result of diffing submitted drafts against the
// stored definitions of one event.
type FieldChangeSet struct {
	Insert []FieldDefinition
	Update []FieldDefinition
	Delete []string
}

func (c FieldChangeSet) Empty() bool {
	return len(c.Insert) == 0 && len(c.Update) == 0 && len(c.Delete) == 0
}
