package postgres

import (
	"database/sql"
	"time"
)

const (
	archivedMatchesTable   = "archived_matches"
	archiveImportRunsTable = "archive_import_runs"
)

type archivedMatchTableModel struct {
	ID         int64         `db:"id"`
	Season     string        `db:"season"`
	League     string        `db:"league"`
	LeagueFile string        `db:"league_file"`
	Position   int           `db:"position"`
	MatchDate  string        `db:"match_date"`
	MatchTime  string        `db:"match_time"`
	HomeTeam   string        `db:"home_team"`
	AwayTeam   string        `db:"away_team"`
	HomeGoals  sql.NullInt32 `db:"home_goals"`
	AwayGoals  sql.NullInt32 `db:"away_goals"`
	Raw        []byte        `db:"raw"`
}

type archivedMatchInsertModel struct {
	Season      string `db:"season"`
	League      string `db:"league"`
	LeagueFile  string `db:"league_file"`
	Position    int    `db:"position"`
	MatchDate   string `db:"match_date"`
	MatchTime   string `db:"match_time"`
	HomeTeam    string `db:"home_team"`
	AwayTeam    string `db:"away_team"`
	HomeGoals   *int   `db:"home_goals"`
	AwayGoals   *int   `db:"away_goals"`
	Raw         string `db:"raw"`
	ImportRunID string `db:"import_run_id"`
}

type archiveImportRunTableModel struct {
	ID           string    `db:"id"`
	BasePath     string    `db:"base_path"`
	Seasons      int       `db:"seasons"`
	FilesLoaded  int       `db:"files_loaded"`
	FilesSkipped int       `db:"files_skipped"`
	GroupsTotal  int       `db:"groups_total"`
	GroupsFailed int       `db:"groups_failed"`
	Records      int       `db:"records"`
	StartedAt    time.Time `db:"started_at"`
	FinishedAt   time.Time `db:"finished_at"`
}

type archiveImportRunInsertModel struct {
	ID           string    `db:"id"`
	BasePath     string    `db:"base_path"`
	Seasons      int       `db:"seasons"`
	FilesLoaded  int       `db:"files_loaded"`
	FilesSkipped int       `db:"files_skipped"`
	GroupsTotal  int       `db:"groups_total"`
	GroupsFailed int       `db:"groups_failed"`
	Records      int       `db:"records"`
	StartedAt    time.Time `db:"started_at"`
	FinishedAt   time.Time `db:"finished_at"`
}
