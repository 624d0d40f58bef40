package analysis

import "github.com/riskibarqy/match-analyst/internal/domain/match"

// HeadToHeadResult holds the scored matches between two requested teams.
// Goals and wins are counted from the point of view of Team1 and Team2,
// whichever side each one played on.
type HeadToHeadResult struct {
	Team1      string
	Team2      string
	Matches    []match.Record
	WinsTeam1  int
	WinsTeam2  int
	Draws      int
	GoalsTeam1 int
	GoalsTeam2 int
}

// HeadToHead uses substring team matching. See Analyzer.HeadToHead.
func HeadToHead(matches []match.Record, team1, team2 string) (HeadToHeadResult, error) {
	return defaultAnalyzer.HeadToHead(matches, team1, team2)
}

// HeadToHead collects the scored matches between team1 and team2 in load
// order. No shared history yields an empty result, not an error.
func (a *Analyzer) HeadToHead(matches []match.Record, team1, team2 string) (HeadToHeadResult, error) {
	if err := validateTeamName(team1); err != nil {
		return HeadToHeadResult{}, err
	}
	if err := validateTeamName(team2); err != nil {
		return HeadToHeadResult{}, err
	}

	result := HeadToHeadResult{
		Team1:   team1,
		Team2:   team2,
		Matches: make([]match.Record, 0),
	}
	for _, item := range matches {
		if item.Score == nil {
			continue
		}

		var goals1, goals2 int
		switch {
		case a.matcher.Matches(team1, item.HomeTeam) && a.matcher.Matches(team2, item.AwayTeam):
			goals1, goals2 = item.Score.Home, item.Score.Away
		case a.matcher.Matches(team1, item.AwayTeam) && a.matcher.Matches(team2, item.HomeTeam):
			goals1, goals2 = item.Score.Away, item.Score.Home
		default:
			continue
		}

		result.Matches = append(result.Matches, item)
		result.GoalsTeam1 += goals1
		result.GoalsTeam2 += goals2
		switch outcome(goals1, goals2) {
		case 1:
			result.WinsTeam1++
		case -1:
			result.WinsTeam2++
		default:
			result.Draws++
		}
	}

	return result, nil
}

// Played is the number of scored meetings.
func (r HeadToHeadResult) Played() int {
	return len(r.Matches)
}
