package analysis

import "strings"

// Matcher decides whether a query name refers to a recorded team name.
type Matcher interface {
	Matches(query, recorded string) bool
}

// SubstringMatcher matches when the lower-cased query is contained in the
// lower-cased recorded name, so "flamengo" matches "Flamengo RJ".
// It is permissive: "Real" matches both "Real Madrid" and "Real Sociedad".
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(query, recorded string) bool {
	return strings.Contains(strings.ToLower(recorded), strings.ToLower(query))
}

// ExactMatcher matches only case-insensitive equal names, ignoring surrounding spaces.
type ExactMatcher struct{}

func (ExactMatcher) Matches(query, recorded string) bool {
	return strings.EqualFold(strings.TrimSpace(recorded), strings.TrimSpace(query))
}

const (
	MatchModeSubstring = "substring"
	MatchModeExact     = "exact"
)

// MatcherForMode returns the matcher for a configured mode, defaulting to substring.
func MatcherForMode(mode string) Matcher {
	if strings.EqualFold(strings.TrimSpace(mode), MatchModeExact) {
		return ExactMatcher{}
	}
	return SubstringMatcher{}
}
