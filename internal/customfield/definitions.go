package customfield

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

// ValidateDefinitions checks a whole batch of drafts and returns every
// problem found. An empty result means the batch may be persisted.
func ValidateDefinitions(drafts []domain.FieldDraft) []domain.Problem {
	var problems []domain.Problem

	if len(drafts) > domain.MaxFieldsPerEvent {
		problems = append(problems, domain.Problem{
			Code:    domain.CodeMaxFields,
			Message: fmt.Sprintf("Maximum %d custom fields allowed", domain.MaxFieldsPerEvent),
		})
	}

	for i, d := range drafts {
		problems = append(problems, validateDraft(i, d)...)
	}

	return problems
}

func validateDraft(pos int, d domain.FieldDraft) []domain.Problem {
	var problems []domain.Problem
	label := strings.TrimSpace(d.Label)
	ref := draftRef(pos, label)
	add := func(code domain.ProblemCode, option, format string, args ...any) {
		problems = append(problems, domain.Problem{
			Code:    code,
			FieldID: d.ID,
			Label:   label,
			Option:  option,
			Message: ref + ": " + fmt.Sprintf(format, args...),
		})
	}

	fieldType, ok := domain.ParseFieldType(d.Type)
	if !ok {
		add(domain.CodeInvalidType, "", "type %q is not one of text, poll, signup", d.Type)
	}

	switch {
	case label == "":
		add(domain.CodeLabelRequired, "", "label is required")
	case utf8.RuneCountInString(label) > domain.MaxLabelLength:
		add(domain.CodeLabelTooLong, "", "label must be at most %d characters", domain.MaxLabelLength)
	}

	if !ok || !fieldType.HasOptions() {
		return problems
	}

	if d.Options == nil {
		add(domain.CodeOptionsRequired, "", "options are required for %s fields", fieldType)
	} else {
		if n := len(d.Options); n < domain.MinFieldOptions || n > domain.MaxFieldOptions {
			add(domain.CodeOptionsCount, "", "must have between %d and %d options, got %d",
				domain.MinFieldOptions, domain.MaxFieldOptions, n)
		}

		idx := newOptionIndex(nil)
		seen := make(map[string]struct{}, len(d.Options))
		for i, raw := range d.Options {
			s, isString := raw.(string)
			opt := strings.TrimSpace(s)
			if !isString || opt == "" {
				add(domain.CodeEmptyOption, "", "option %d must be a non-empty string", i+1)
				continue
			}
			if strings.Contains(opt, ",") {
				add(domain.CodeOptionComma, opt, "option %q must not contain a comma", opt)
			}
			key := idx.key(opt)
			if _, dup := seen[key]; dup {
				add(domain.CodeDuplicateOption, opt, "duplicate option %q", opt)
				continue
			}
			seen[key] = struct{}{}
		}
	}

	if fieldType == domain.FieldTypeSignup && d.Config.MaxClaimsPerItem != nil && *d.Config.MaxClaimsPerItem < 1 {
		add(domain.CodeInvalidConfig, "", "max_claims_per_item must be at least 1")
	}

	return problems
}

func draftRef(pos int, label string) string {
	if label == "" {
		return fmt.Sprintf("Field %d", pos+1)
	}
	return fmt.Sprintf("Field %d (%q)", pos+1, label)
}

// NormalizeDefinitions turns drafts that passed ValidateDefinitions into
// definitions of eventID. IDs are copied as given; Diff decides which ones
// are kept.
func NormalizeDefinitions(eventID string, drafts []domain.FieldDraft) []domain.FieldDefinition {
	defs := make([]domain.FieldDefinition, 0, len(drafts))
	for i, d := range drafts {
		fieldType, _ := domain.ParseFieldType(d.Type)

		def := domain.FieldDefinition{
			ID:        d.ID,
			EventID:   eventID,
			Type:      fieldType,
			Label:     strings.TrimSpace(d.Label),
			Required:  d.Required,
			SortOrder: i,
		}
		if d.SortOrder != nil {
			def.SortOrder = *d.SortOrder
		}
		if d.Description != nil {
			if desc := strings.TrimSpace(*d.Description); desc != "" {
				def.Description = &desc
			}
		}

		switch fieldType {
		case domain.FieldTypePoll:
			def.Options = stringOptions(d.Options)
			def.Config.MultiSelect = d.Config.MultiSelect
		case domain.FieldTypeSignup:
			def.Options = stringOptions(d.Options)
			def.Config.MaxClaimsPerItem = domain.DefaultMaxClaimsPerItem
			if d.Config.MaxClaimsPerItem != nil {
				def.Config.MaxClaimsPerItem = *d.Config.MaxClaimsPerItem
			}
		case domain.FieldTypeText:
			// text fields never carry options
		}

		defs = append(defs, def)
	}
	return defs
}

func stringOptions(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
