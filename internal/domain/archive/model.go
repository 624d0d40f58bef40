package archive

import (
	"time"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
)

// Group is the unit of replacement in the archive: all records of one
// league file within one season.
type Group struct {
	Season     string
	League     string
	LeagueFile string
	Records    []match.Record
}

// FileKey identifies the group's league file within its season. Records
// without a file stem fall back to the league name.
func (g Group) FileKey() string {
	return fileKey(g.LeagueFile, g.League)
}

func fileKey(leagueFile, league string) string {
	if leagueFile != "" {
		return leagueFile
	}
	return league
}

// Run summarizes one archive import.
type Run struct {
	ID           string
	BasePath     string
	Seasons      int
	FilesLoaded  int
	FilesSkipped int
	Groups       int
	GroupsFailed int
	Records      int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// GroupRecords splits records into (season, league file) groups, keeping
// the order in which each group first appears.
func GroupRecords(records []match.Record) []Group {
	index := make(map[[2]string]int)
	groups := make([]Group, 0)
	for _, record := range records {
		key := [2]string{record.Season, fileKey(record.LeagueFile, record.League)}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Season: record.Season, League: record.League, LeagueFile: key[1]})
		}
		groups[pos].Records = append(groups[pos].Records, record)
	}
	return groups
}
