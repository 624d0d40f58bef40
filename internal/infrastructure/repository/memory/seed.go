package memory

import "github.com/riskibarqy/match-analyst/internal/domain/match"

const (
	SeedSeason = "2024"
	SeedLeague = "Brasileirão Série A 2024"
)

func seeded(date, home, away string, homeGoals, awayGoals int) match.Record {
	return match.Record{
		Season:   SeedSeason,
		League:   SeedLeague,
		Date:     date,
		HomeTeam: home,
		AwayTeam: away,
		Score:    &match.Score{Home: homeGoals, Away: awayGoals},
	}
}

// SeedMatches is a small corpus for local runs without a data directory.
func SeedMatches() []match.Record {
	return []match.Record{
		seeded("2024-04-13", "Flamengo RJ", "Santos FC", 2, 1),
		seeded("2024-04-14", "Palmeiras", "Corinthians", 1, 1),
		seeded("2024-04-20", "Santos FC", "Palmeiras", 0, 2),
		seeded("2024-04-21", "Corinthians", "Flamengo RJ", 1, 3),
		seeded("2024-04-27", "Flamengo RJ", "Palmeiras", 1, 1),
		seeded("2024-04-28", "Santos FC", "Corinthians", 2, 2),
		{
			Season:   SeedSeason,
			League:   SeedLeague,
			Date:     "2024-05-04",
			HomeTeam: "Palmeiras",
			AwayTeam: "Flamengo RJ",
		},
	}
}
