package customfield

import "github.com/rodionsteshenko/shindig-sub000/internal/domain"

// ClaimLimiter enforces max_claims_per_item on signup fields. Stores call
// Enforce inside the transaction that writes the guest's response, with
// others read in that same transaction.
type ClaimLimiter struct{}

func NewClaimLimiter() ClaimLimiter {
	return ClaimLimiter{}
}

// Enforce reports every option in value that is already held by as many
// distinct guests as the field allows. Responses of guestID are ignored, so
// a guest may re-confirm or change their own claim.
func (ClaimLimiter) Enforce(field *domain.FieldDefinition, guestID, value string, others []domain.Response) []domain.Problem {
	if field.Type != domain.FieldTypeSignup {
		return nil
	}

	idx := newOptionIndex(field.Options)
	selected, _ := idx.resolve(ParseSelection(value))
	if len(selected) == 0 {
		return nil
	}

	holders := holdersByOption(idx, others, guestID)
	limit := field.MaxClaims()

	var problems []domain.Problem
	for _, opt := range selected {
		if len(holders[opt]) >= limit {
			problems = append(problems, fieldProblem(field, domain.CodeFullyClaimed, opt,
				"%q: option %q is fully claimed", field.Label, opt))
		}
	}
	return problems
}

// FindViolations recounts a signup field from persisted responses and
// returns every option held by more guests than allowed.
func FindViolations(field *domain.FieldDefinition, responses []domain.Response) []domain.ClaimViolation {
	if field.Type != domain.FieldTypeSignup {
		return nil
	}

	holders := holdersByOption(newOptionIndex(field.Options), responses, "")
	limit := field.MaxClaims()

	var violations []domain.ClaimViolation
	for _, opt := range field.Options {
		if n := len(holders[opt]); n > limit {
			violations = append(violations, domain.ClaimViolation{
				FieldID: field.ID,
				Label:   field.Label,
				Option:  opt,
				Claims:  n,
				Max:     limit,
			})
		}
	}
	return violations
}

// holdersByOption maps each defined option to the set of distinct guests
// holding it, skipping responses of exclude.
func holdersByOption(idx *optionIndex, responses []domain.Response, exclude string) map[string]map[string]struct{} {
	holders := make(map[string]map[string]struct{})
	for _, r := range responses {
		if exclude != "" && r.GuestID == exclude {
			continue
		}
		matched, _ := idx.resolve(ParseSelection(r.Value))
		for _, opt := range matched {
			if holders[opt] == nil {
				holders[opt] = make(map[string]struct{})
			}
			holders[opt][r.GuestID] = struct{}{}
		}
	}
	return holders
}
