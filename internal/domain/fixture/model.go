package fixture

import (
	"context"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
)

const (
	DefaultLeagueID = 39
	DefaultSeason   = 2023
	DefaultLimit    = 10
)

// Provider lists recent matches of a league season from a remote source,
// normalized into the same shape as locally loaded records.
type Provider interface {
	Matches(ctx context.Context, leagueID, season, limit int) []match.Record
}
