package domain

type PollResult struct {
	FieldID     string         `json:"field_id"`
	Label       string         `json:"label"`
	Options     []string       `json:"options"`
	MultiSelect bool           `json:"multi_select"`
	Votes       map[string]int `json:"votes"`
	TotalVotes  int            `json:"total_votes"`
}

type SignupResult struct {
	FieldID          string              `json:"field_id"`
	Label            string              `json:"label"`
	Options          []string            `json:"options"`
	MaxClaimsPerItem int                 `json:"max_claims_per_item"`
	Claims           map[string]int      `json:"claims"`
	ClaimantNames    map[string][]string `json:"claimant_names"`
	Full             map[string]bool     `json:"full"`
}

type PublicSignupResult struct {
	FieldID          string          `json:"field_id"`
	Label            string          `json:"label"`
	Options          []string        `json:"options"`
	MaxClaimsPerItem int             `json:"max_claims_per_item"`
	Claims           map[string]int  `json:"claims"`
	Remaining        map[string]int  `json:"remaining"`
	Full             map[string]bool `json:"full"`
}

type TextAnswer struct {
	GuestName string `json:"guest_name"`
	Value     string `json:"value"`
}

type TextResult struct {
	FieldID string       `json:"field_id"`
	Label   string       `json:"label"`
	Answers []TextAnswer `json:"answers"`
}

// PrivateResults is the host view: tallies plus who answered what.
type PrivateResults struct {
	Polls   []PollResult   `json:"polls"`
	Signups []SignupResult `json:"signups"`
	Texts   []TextResult   `json:"texts"`
}

// PublicResults carries counts only. Text answers and guest identities
// never appear here.
type PublicResults struct {
	Polls   []PollResult         `json:"polls"`
	Signups []PublicSignupResult `json:"signups"`
}

// ClaimViolation is an option found held by more guests than its field
// allows.
type ClaimViolation struct {
	FieldID string `json:"field_id"`
	Label   string `json:"label"`
	Option  string `json:"option"`
	Claims  int    `json:"claims"`
	Max     int    `json:"max"`
}
