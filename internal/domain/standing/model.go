package standing

import "context"

const (
	DefaultLeague = "PL"
	DefaultSeason = "2023"
	// DisplayLimit caps the rows shown for one table.
	DisplayLimit = 20
)

// Row represents a league table row for one team.
type Row struct {
	Position int
	Team     string
	Points   int
}

// Provider returns the table for a league code and season, e.g. "PL" and "2023".
// An unavailable table is an empty slice.
type Provider interface {
	Standings(ctx context.Context, league, season string) []Row
}
