package analysis

import "github.com/riskibarqy/match-analyst/internal/domain/match"

// TeamStats aggregates the scored matches of one team.
type TeamStats struct {
	Team           string
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	WinRatePercent float64
	AvgGoalsFor    float64
}

// StatsFor uses substring team matching. See Analyzer.StatsFor.
func StatsFor(matches []match.Record, teamName string) (TeamStats, bool, error) {
	return defaultAnalyzer.StatsFor(matches, teamName)
}

// StatsFor aggregates every scored match where teamName matches the home or
// away side. When both sides match, the home side is used. The bool result is
// false when no scored match qualifies.
func (a *Analyzer) StatsFor(matches []match.Record, teamName string) (TeamStats, bool, error) {
	if err := validateTeamName(teamName); err != nil {
		return TeamStats{}, false, err
	}

	stats := TeamStats{Team: teamName}
	for _, item := range matches {
		if item.Score == nil {
			continue
		}

		var goalsFor, goalsAgainst int
		switch {
		case a.matcher.Matches(teamName, item.HomeTeam):
			goalsFor, goalsAgainst = item.Score.Home, item.Score.Away
		case a.matcher.Matches(teamName, item.AwayTeam):
			goalsFor, goalsAgainst = item.Score.Away, item.Score.Home
		default:
			continue
		}

		stats.MatchesPlayed++
		stats.GoalsFor += goalsFor
		stats.GoalsAgainst += goalsAgainst
		switch outcome(goalsFor, goalsAgainst) {
		case 1:
			stats.Wins++
		case 0:
			stats.Draws++
		default:
			stats.Losses++
		}
	}

	if stats.MatchesPlayed == 0 {
		return TeamStats{}, false, nil
	}

	played := float64(stats.MatchesPlayed)
	stats.WinRatePercent = round2(100 * float64(stats.Wins) / played)
	stats.AvgGoalsFor = round2(float64(stats.GoalsFor) / played)
	return stats, true, nil
}
