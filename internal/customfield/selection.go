// Package customfield holds the rules for host-defined event questions:
// validation of definitions and answers, signup claim limits, the
// declarative field-set diff and the result aggregation.
package customfield

import (
	"strings"

	"golang.org/x/text/cases"
)

const selectionSeparator = ", "

// ParseSelection splits a stored or submitted choice value into its
// trimmed, non-empty tokens.
func ParseSelection(value string) []string {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func JoinSelection(options []string) string {
	return strings.Join(options, selectionSeparator)
}

// optionIndex resolves tokens to the defined option spelling using Unicode
// case folding. Not safe for concurrent use.
type optionIndex struct {
	fold  cases.Caser
	byKey map[string]string
}

func newOptionIndex(options []string) *optionIndex {
	idx := &optionIndex{
		fold:  cases.Fold(),
		byKey: make(map[string]string, len(options)),
	}
	for _, o := range options {
		key := idx.key(o)
		if _, dup := idx.byKey[key]; !dup {
			idx.byKey[key] = o
		}
	}
	return idx
}

func (idx *optionIndex) key(s string) string {
	return idx.fold.String(strings.TrimSpace(s))
}

func (idx *optionIndex) lookup(token string) (string, bool) {
	o, ok := idx.byKey[idx.key(token)]
	return o, ok
}

// resolve maps tokens to defined options, dropping duplicates. Tokens that
// match nothing are returned separately in input order.
func (idx *optionIndex) resolve(tokens []string) (matched, unknown []string) {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		o, ok := idx.lookup(t)
		if !ok {
			unknown = append(unknown, t)
			continue
		}
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		matched = append(matched, o)
	}
	return matched, unknown
}
