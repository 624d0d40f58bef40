package analysis

import (
	"math"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrEmptyTeamName = crerr.New("team name is required")

// Analyzer computes statistics over a loaded match collection. It holds no
// state besides its Matcher and is safe for concurrent use.
type Analyzer struct {
	matcher Matcher
}

func NewAnalyzer(matcher Matcher) *Analyzer {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	return &Analyzer{matcher: matcher}
}

var defaultAnalyzer = NewAnalyzer(SubstringMatcher{})

func validateTeamName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTeamName
	}
	return nil
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// outcome is +1 for a win, 0 for a draw and -1 for a loss from the scoring side.
func outcome(goalsFor, goalsAgainst int) int {
	switch {
	case goalsFor > goalsAgainst:
		return 1
	case goalsFor < goalsAgainst:
		return -1
	default:
		return 0
	}
}
