package customfield

import (
	"strings"
	"testing"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() []domain.FieldDefinition {
	return []domain.FieldDefinition{
		{ID: "text", Type: domain.FieldTypeText, Label: "Notes", SortOrder: 0},
		{ID: "poll", Type: domain.FieldTypePoll, Label: "Day", Options: []string{"Fri", "Sat"}, Config: domain.FieldConfig{MultiSelect: true}, SortOrder: 1},
		{ID: "single", Type: domain.FieldTypePoll, Label: "Main", Options: []string{"Fish", "Veg"}, SortOrder: 2},
		{ID: "signup", Type: domain.FieldTypeSignup, Label: "Bring", Options: []string{"Chips", "Salsa"}, Required: true, Config: domain.FieldConfig{MaxClaimsPerItem: 1}, SortOrder: 3},
	}
}

func TestValidateResponses_NormalizesChoices(t *testing.T) {
	inputs := []domain.ResponseInput{
		{FieldID: "text", Value: "  no nuts please "},
		{FieldID: "poll", Value: "sat, FRI ,fri"},
		{FieldID: "signup", Value: "chips"},
	}

	answers, problems := ValidateResponses(inputs, testFields())

	require.Empty(t, problems)
	assert.Equal(t, []domain.Answer{
		{FieldID: "text", Value: "  no nuts please "},
		{FieldID: "poll", Value: "Sat, Fri"},
		{FieldID: "signup", Value: "Chips"},
	}, answers)
}

func TestValidateResponses_EmptySubmissionSkipsRequired(t *testing.T) {
	answers, problems := ValidateResponses(nil, testFields())

	assert.Empty(t, problems)
	assert.Empty(t, answers)

	answers, problems = ValidateResponses([]domain.ResponseInput{}, testFields())

	assert.Empty(t, problems)
	assert.Empty(t, answers)
}

func TestValidateResponses_RequiredWhenAnyResponse(t *testing.T) {
	inputs := []domain.ResponseInput{{FieldID: "text", Value: "hi"}}

	_, problems := ValidateResponses(inputs, testFields())

	require.Len(t, problems, 1)
	assert.Equal(t, domain.CodeMissingRequired, problems[0].Code)
	assert.Equal(t, "signup", problems[0].FieldID)
	assert.Equal(t, `"Bring" is required`, problems[0].Message)
}

func TestValidateResponses_BlankRequired(t *testing.T) {
	inputs := []domain.ResponseInput{{FieldID: "signup", Value: "   "}}

	_, problems := ValidateResponses(inputs, testFields())

	require.Len(t, problems, 1)
	assert.Equal(t, domain.CodeMissingRequired, problems[0].Code)
}

func TestValidateResponses_SeparatorsOnlyIsBlank(t *testing.T) {
	inputs := []domain.ResponseInput{
		{FieldID: "signup", Value: " , "},
		{FieldID: "poll", Value: ",,"},
	}

	answers, problems := ValidateResponses(inputs, testFields())

	require.Len(t, problems, 1)
	assert.Equal(t, domain.CodeMissingRequired, problems[0].Code)
	assert.Equal(t, "signup", problems[0].FieldID)
	assert.Contains(t, answers, domain.Answer{FieldID: "poll", Value: ""})
}

func TestValidateResponses_BlankOptionalClearsAnswer(t *testing.T) {
	inputs := []domain.ResponseInput{
		{FieldID: "signup", Value: "Salsa"},
		{FieldID: "poll", Value: ""},
	}

	answers, problems := ValidateResponses(inputs, testFields())

	require.Empty(t, problems)
	assert.Contains(t, answers, domain.Answer{FieldID: "poll", Value: ""})
}

func TestValidateResponses_AccumulatesProblems(t *testing.T) {
	inputs := []domain.ResponseInput{
		{FieldID: "missing-1", Value: "x"},
		{FieldID: "missing-2", Value: "y"},
		{FieldID: "text", Value: strings.Repeat("a", 1001)},
		{FieldID: "poll", Value: "Fri, Sun"},
		{FieldID: "single", Value: "Fish, Veg"},
		{FieldID: "signup", Value: 42.0},
	}

	answers, problems := ValidateResponses(inputs, testFields())

	assert.Empty(t, answers)
	assert.Equal(t, []domain.ProblemCode{
		domain.CodeUnknownField,
		domain.CodeUnknownField,
		domain.CodeTooLong,
		domain.CodeInvalidOption,
		domain.CodeSingleSelect,
		domain.CodeInvalidValue,
	}, codes(problems))

	assert.Equal(t, `Unknown field reference: "missing-1"`, problems[0].Message)
	assert.Equal(t, "Sun", problems[3].Option)
	assert.Contains(t, problems[3].Message, `"Sun"`)
	assert.Contains(t, problems[3].Message, `"Day"`)
}

func TestValidateResponses_TextLengthBoundary(t *testing.T) {
	inputs := []domain.ResponseInput{
		{FieldID: "text", Value: strings.Repeat("ж", 1000)},
		{FieldID: "signup", Value: "Chips"},
	}

	_, problems := ValidateResponses(inputs, testFields())

	assert.Empty(t, problems)
}

func TestValidateResponses_DuplicateField(t *testing.T) {
	inputs := []domain.ResponseInput{
		{FieldID: "signup", Value: "Chips"},
		{FieldID: "signup", Value: "Salsa"},
	}

	answers, problems := ValidateResponses(inputs, testFields())

	require.Len(t, problems, 1)
	assert.Equal(t, domain.CodeDuplicateResponse, problems[0].Code)
	assert.Len(t, answers, 1)
}

func TestParseSelection(t *testing.T) {
	assert.Equal(t, []string{"A", "B c"}, ParseSelection(" A ,, B c ,"))
	assert.Empty(t, ParseSelection(""))
	assert.Equal(t, "A, B", JoinSelection([]string{"A", "B"}))
}
