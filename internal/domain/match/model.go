package match

// Score is a final-time result. A record either has one or it does not,
// so home and away goals can never be present independently.
type Score struct {
	Home int
	Away int
}

// Record is one historical fixture normalized from a league file.
type Record struct {
	Season string
	League string
	// LeagueFile is the stem of the league file the record was read from.
	// Display names can repeat within a season, file stems cannot.
	LeagueFile string
	Date       string
	Time       string
	HomeTeam   string
	AwayTeam   string
	Score      *Score
	// Raw is the original match object, kept for pass-through display.
	Raw map[string]any
}

// Scored reports whether the record carries a usable final-time score.
func (r Record) Scored() bool {
	return r.Score != nil
}

// HomeGoals returns the home goals and whether the record is scored.
func (r Record) HomeGoals() (int, bool) {
	if r.Score == nil {
		return 0, false
	}
	return r.Score.Home, true
}

// AwayGoals returns the away goals and whether the record is scored.
func (r Record) AwayGoals() (int, bool) {
	if r.Score == nil {
		return 0, false
	}
	return r.Score.Away, true
}
