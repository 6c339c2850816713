package customfield

import (
	"strings"

	"github.com/rodionsteshenko/shindig-sub000/internal/domain"
)

// PrivateResults builds the host view of an event's answers. Responses are
// expected in the order they should be listed for text fields.
func PrivateResults(fields []domain.FieldDefinition, responses []domain.GuestResponse) domain.PrivateResults {
	res := domain.PrivateResults{
		Polls:   make([]domain.PollResult, 0),
		Signups: make([]domain.SignupResult, 0),
		Texts:   make([]domain.TextResult, 0),
	}
	byField := groupByField(responses)

	for _, f := range sortedFields(fields) {
		rs := byField[f.ID]
		switch f.Type {
		case domain.FieldTypePoll:
			res.Polls = append(res.Polls, pollResult(&f, rs))
		case domain.FieldTypeSignup:
			res.Signups = append(res.Signups, signupResult(&f, rs))
		case domain.FieldTypeText:
			res.Texts = append(res.Texts, textResult(&f, rs))
		}
	}

	return res
}

// PublicResults builds the unauthenticated view: counts and remaining
// capacity only. Text fields are always left out.
func PublicResults(fields []domain.FieldDefinition, responses []domain.GuestResponse) domain.PublicResults {
	res := domain.PublicResults{
		Polls:   make([]domain.PollResult, 0),
		Signups: make([]domain.PublicSignupResult, 0),
	}
	byField := groupByField(responses)

	for _, f := range sortedFields(fields) {
		rs := byField[f.ID]
		switch f.Type {
		case domain.FieldTypePoll:
			res.Polls = append(res.Polls, pollResult(&f, rs))
		case domain.FieldTypeSignup:
			s := signupResult(&f, rs)
			remaining := make(map[string]int, len(s.Options))
			for _, opt := range s.Options {
				remaining[opt] = max(s.MaxClaimsPerItem-s.Claims[opt], 0)
			}
			res.Signups = append(res.Signups, domain.PublicSignupResult{
				FieldID:          s.FieldID,
				Label:            s.Label,
				Options:          s.Options,
				MaxClaimsPerItem: s.MaxClaimsPerItem,
				Claims:           s.Claims,
				Remaining:        remaining,
				Full:             s.Full,
			})
		case domain.FieldTypeText:
		}
	}

	return res
}

func groupByField(responses []domain.GuestResponse) map[string][]domain.GuestResponse {
	out := make(map[string][]domain.GuestResponse)
	for _, r := range responses {
		out[r.FieldID] = append(out[r.FieldID], r)
	}
	return out
}

func pollResult(f *domain.FieldDefinition, rs []domain.GuestResponse) domain.PollResult {
	votes := make(map[string]int, len(f.Options))
	for _, opt := range f.Options {
		votes[opt] = 0
	}

	idx := newOptionIndex(f.Options)
	total := 0
	for _, r := range rs {
		matched, _ := idx.resolve(ParseSelection(r.Value))
		if len(matched) == 0 {
			continue
		}
		total++
		for _, opt := range matched {
			votes[opt]++
		}
	}

	return domain.PollResult{
		FieldID:     f.ID,
		Label:       f.Label,
		Options:     options(f),
		MultiSelect: f.Config.MultiSelect,
		Votes:       votes,
		TotalVotes:  total,
	}
}

func signupResult(f *domain.FieldDefinition, rs []domain.GuestResponse) domain.SignupResult {
	claims := make(map[string]int, len(f.Options))
	names := make(map[string][]string, len(f.Options))
	for _, opt := range f.Options {
		claims[opt] = 0
		names[opt] = make([]string, 0)
	}

	idx := newOptionIndex(f.Options)
	for _, r := range rs {
		matched, _ := idx.resolve(ParseSelection(r.Value))
		for _, opt := range matched {
			claims[opt]++
			names[opt] = append(names[opt], r.GuestName)
		}
	}

	limit := f.MaxClaims()
	full := make(map[string]bool, len(f.Options))
	for _, opt := range f.Options {
		full[opt] = claims[opt] >= limit
	}

	return domain.SignupResult{
		FieldID:          f.ID,
		Label:            f.Label,
		Options:          options(f),
		MaxClaimsPerItem: limit,
		Claims:           claims,
		ClaimantNames:    names,
		Full:             full,
	}
}

func textResult(f *domain.FieldDefinition, rs []domain.GuestResponse) domain.TextResult {
	answers := make([]domain.TextAnswer, 0, len(rs))
	for _, r := range rs {
		if strings.TrimSpace(r.Value) == "" {
			continue
		}
		answers = append(answers, domain.TextAnswer{GuestName: r.GuestName, Value: r.Value})
	}
	return domain.TextResult{FieldID: f.ID, Label: f.Label, Answers: answers}
}

func options(f *domain.FieldDefinition) []string {
	out := make([]string, len(f.Options))
	copy(out, f.Options)
	return out
}
