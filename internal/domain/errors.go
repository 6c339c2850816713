package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrGuestNotFound = errors.New("guest not found")
	ErrFieldNotFound = errors.New("field not found")
)

var (
	ErrValidation = errors.New("validation error")
	ErrCapacity   = errors.New("option fully claimed")
)

// Store failures. ErrConflict is transient and the whole unit of work may be
// retried from fresh state; ErrPersistence marks any other storage failure.
var (
	ErrConflict    = errors.New("concurrent update conflict")
	ErrPersistence = errors.New("persistence failure")
)

type ValidationKind string

const (
	KindSchema   ValidationKind = "schema"
	KindResponse ValidationKind = "response"
	KindCapacity ValidationKind = "capacity"
)

type ProblemCode string

const (
	CodeMaxFields         ProblemCode = "max_fields"
	CodeInvalidType       ProblemCode = "invalid_type"
	CodeLabelRequired     ProblemCode = "label_required"
	CodeLabelTooLong      ProblemCode = "label_too_long"
	CodeOptionsRequired   ProblemCode = "options_required"
	CodeOptionsCount      ProblemCode = "options_count"
	CodeEmptyOption       ProblemCode = "empty_option"
	CodeDuplicateOption   ProblemCode = "duplicate_option"
	CodeOptionComma       ProblemCode = "option_comma"
	CodeInvalidConfig     ProblemCode = "invalid_config"
	CodeMissingRequired   ProblemCode = "missing_required"
	CodeUnknownField      ProblemCode = "unknown_field"
	CodeDuplicateResponse ProblemCode = "duplicate_response"
	CodeInvalidValue      ProblemCode = "invalid_value"
	CodeTooLong           ProblemCode = "too_long"
	CodeInvalidOption     ProblemCode = "invalid_option"
	CodeSingleSelect      ProblemCode = "single_select"
	CodeFullyClaimed      ProblemCode = "fully_claimed"
)

// Problem is one user-facing validation failure. Message always names the
// field by label (or position for unlabeled drafts) and the option where
// one is involved.
type Problem struct {
	Code    ProblemCode `json:"code"`
	FieldID string      `json:"field_id,omitempty"`
	Label   string      `json:"label,omitempty"`
	Option  string      `json:"option,omitempty"`
	Message string      `json:"message"`
}

type ValidationError struct {
	Kind     ValidationKind
	Problems []Problem
}

func NewValidationError(kind ValidationKind, problems []Problem) *ValidationError {
	return &ValidationError{Kind: kind, Problems: problems}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Message)
	}
	return msgs
}

func (e *ValidationError) HasCapacity() bool {
	for _, p := range e.Problems {
		if p.Code == CodeFullyClaimed {
			return true
		}
	}
	return false
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrCapacity:
		return e.HasCapacity()
	default:
		return false
	}
}
