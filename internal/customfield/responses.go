package customfield

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

// ValidateResponses checks a guest submission against the event's field
// definitions. It returns the normalized answers for every input that
// passed on its own, plus all problems found; callers must persist nothing
// unless problems is empty.
//
// Required fields are only enforced when the submission carries at least
// one response.
func ValidateResponses(inputs []domain.ResponseInput, fields []domain.FieldDefinition) ([]domain.Answer, []domain.Problem) {
	byID := make(map[string]*domain.FieldDefinition, len(fields))
	for i := range fields {
		byID[fields[i].ID] = &fields[i]
	}

	var (
		answers  []domain.Answer
		problems []domain.Problem
	)
	present := make(map[string]bool, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, in := range inputs {
		field, ok := byID[in.FieldID]
		if !ok {
			problems = append(problems, domain.Problem{
				Code:    domain.CodeUnknownField,
				FieldID: in.FieldID,
				Message: fmt.Sprintf("Unknown field reference: %q", in.FieldID),
			})
			continue
		}
		if seen[field.ID] {
			problems = append(problems, fieldProblem(field, domain.CodeDuplicateResponse, "",
				"%q was answered more than once", field.Label))
			continue
		}
		seen[field.ID] = true

		value, isString := in.Value.(string)
		if !isString {
			present[field.ID] = in.Value != nil
			problems = append(problems, fieldProblem(field, domain.CodeInvalidValue, "",
				"%q: value must be a string", field.Label))
			continue
		}

		if isBlank(field, value) {
			answers = append(answers, domain.Answer{FieldID: field.ID, Value: ""})
			continue
		}
		present[field.ID] = true

		answer, fieldProblems := validateValue(field, value)
		if len(fieldProblems) > 0 {
			problems = append(problems, fieldProblems...)
			continue
		}
		answers = append(answers, answer)
	}

	if len(inputs) > 0 {
		problems = append(problems, missingRequired(fields, present)...)
	}

	return answers, problems
}

// isBlank reports whether value carries no answer. For choice fields a value
// made only of separators, like " , ", holds no option and counts as blank.
func isBlank(field *domain.FieldDefinition, value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	return field.Type.HasOptions() && len(ParseSelection(value)) == 0
}

func validateValue(field *domain.FieldDefinition, value string) (domain.Answer, []domain.Problem) {
	switch field.Type {
	case domain.FieldTypeText:
		if utf8.RuneCountInString(value) > domain.MaxTextResponseLength {
			return domain.Answer{}, []domain.Problem{fieldProblem(field, domain.CodeTooLong, "",
				"%q must be at most %d characters", field.Label, domain.MaxTextResponseLength)}
		}
		return domain.Answer{FieldID: field.ID, Value: value}, nil

	case domain.FieldTypePoll, domain.FieldTypeSignup:
		var problems []domain.Problem
		matched, unknown := newOptionIndex(field.Options).resolve(ParseSelection(value))
		for _, token := range unknown {
			problems = append(problems, fieldProblem(field, domain.CodeInvalidOption, token,
				"Invalid option %q for %q", token, field.Label))
		}
		if field.Type == domain.FieldTypePoll && !field.Config.MultiSelect && len(matched) > 1 {
			problems = append(problems, fieldProblem(field, domain.CodeSingleSelect, "",
				"%q accepts only one option", field.Label))
		}
		if len(problems) > 0 {
			return domain.Answer{}, problems
		}
		return domain.Answer{FieldID: field.ID, Value: JoinSelection(matched)}, nil

	default:
		return domain.Answer{}, []domain.Problem{fieldProblem(field, domain.CodeInvalidValue, "",
			"%q has unsupported type %q", field.Label, field.Type)}
	}
}

func missingRequired(fields []domain.FieldDefinition, present map[string]bool) []domain.Problem {
	ordered := sortedFields(fields)
	var problems []domain.Problem
	for i := range ordered {
		f := &ordered[i]
		if f.Required && !present[f.ID] {
			problems = append(problems, fieldProblem(f, domain.CodeMissingRequired, "",
				"%q is required", f.Label))
		}
	}
	return problems
}

func fieldProblem(f *domain.FieldDefinition, code domain.ProblemCode, option, format string, args ...any) domain.Problem {
	return domain.Problem{
		Code:    code,
		FieldID: f.ID,
		Label:   f.Label,
		Option:  option,
		Message: fmt.Sprintf(format, args...),
	}
}

// sortedFields returns a copy ordered by sort order, then label.
func sortedFields(fields []domain.FieldDefinition) []domain.FieldDefinition {
	out := make([]domain.FieldDefinition, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Label < out[j].Label
	})
	return out
}
