package postgres

import (
	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/match-analyst/internal/domain/archive"
	"github.com/riskibarqy/match-analyst/internal/domain/match"
	qb "github.com/riskibarqy/match-analyst/internal/platform/querybuilder"
)

// insertBatchSize keeps one INSERT well below the 65535 bind parameter limit.
const insertBatchSize = 500

// MatchRepository is the Postgres match archive. It serves archived records
// as a match.Source, in the loader's order, and replaces them per
// (season, league file) group.
type MatchRepository struct {
	db *sqlx.DB
}

var (
	_ match.Source       = (*MatchRepository)(nil)
	_ archive.Repository = (*MatchRepository)(nil)
)

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListMatches(ctx context.Context) ([]match.Record, error) {
	query, args, err := qb.Select(
		"id", "season", "league", "league_file", "position", "match_date", "match_time",
		"home_team", "away_team", "home_goals", "away_goals", "raw",
	).
		From(archivedMatchesTable).
		OrderBy("season", "league_file", "position").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list archived matches query")
	}

	var rows []archivedMatchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list archived matches")
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		record, err := recordFromRow(row)
		if err != nil {
			return nil, crerr.Wrapf(err, "archived match id=%d", row.ID)
		}
		out = append(out, record)
	}
	return out, nil
}

// ReplaceGroup deletes the archived rows of one (season, league file) group and
// inserts the group's records in a single transaction.
func (r *MatchRepository) ReplaceGroup(ctx context.Context, runID string, group archive.Group) error {
	models, err := insertModelsFromGroup(runID, group)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx replace archived group")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom(archivedMatchesTable).
		Where(
			qb.Eq("season", group.Season),
			qb.Eq("league_file", group.FileKey()),
		).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete archived group query")
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return crerr.Wrapf(err, "delete archived group season=%s league_file=%s", group.Season, group.FileKey())
	}

	for start := 0; start < len(models); start += insertBatchSize {
		end := min(start+insertBatchSize, len(models))
		query, args, err := qb.InsertModels(archivedMatchesTable, models[start:end], "")
		if err != nil {
			return crerr.Wrap(err, "build insert archived matches query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "insert archived matches season=%s league_file=%s", group.Season, group.FileKey())
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit replace archived group tx")
	}
	return nil
}

func (r *MatchRepository) SaveRun(ctx context.Context, run archive.Run) error {
	query, args, err := qb.InsertModel(archiveImportRunsTable, archiveImportRunInsertModel{
		ID:           run.ID,
		BasePath:     run.BasePath,
		Seasons:      run.Seasons,
		FilesLoaded:  run.FilesLoaded,
		FilesSkipped: run.FilesSkipped,
		GroupsTotal:  run.Groups,
		GroupsFailed: run.GroupsFailed,
		Records:      run.Records,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}, `ON CONFLICT (id) DO UPDATE SET
    files_loaded = EXCLUDED.files_loaded,
    files_skipped = EXCLUDED.files_skipped,
    groups_total = EXCLUDED.groups_total,
    groups_failed = EXCLUDED.groups_failed,
    records = EXCLUDED.records,
    finished_at = EXCLUDED.finished_at`)
	if err != nil {
		return crerr.Wrap(err, "build save import run query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "save import run id=%s", run.ID)
	}
	return nil
}

func (r *MatchRepository) LatestRun(ctx context.Context) (archive.Run, bool, error) {
	query, args, err := qb.Select(
		"id", "base_path", "seasons", "files_loaded", "files_skipped",
		"groups_total", "groups_failed", "records", "started_at", "finished_at",
	).
		From(archiveImportRunsTable).
		OrderBy("started_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return archive.Run{}, false, crerr.Wrap(err, "build latest import run query")
	}

	var row archiveImportRunTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return archive.Run{}, false, nil
		}
		return archive.Run{}, false, crerr.Wrap(err, "get latest import run")
	}
	return runFromRow(row), true, nil
}

func runFromRow(row archiveImportRunTableModel) archive.Run {
	return archive.Run{
		ID:           row.ID,
		BasePath:     row.BasePath,
		Seasons:      row.Seasons,
		FilesLoaded:  row.FilesLoaded,
		FilesSkipped: row.FilesSkipped,
		Groups:       row.GroupsTotal,
		GroupsFailed: row.GroupsFailed,
		Records:      row.Records,
		StartedAt:    row.StartedAt.UTC(),
		FinishedAt:   row.FinishedAt.UTC(),
	}
}

func insertModelsFromGroup(runID string, group archive.Group) ([]archivedMatchInsertModel, error) {
	models := make([]archivedMatchInsertModel, 0, len(group.Records))
	for i, record := range group.Records {
		raw := []byte("{}")
		if record.Raw != nil {
			encoded, err := sonic.Marshal(record.Raw)
			if err != nil {
				return nil, crerr.Wrapf(err, "encode raw match season=%s league_file=%s position=%d", group.Season, group.FileKey(), i)
			}
			raw = encoded
		}

		model := archivedMatchInsertModel{
			Season:      group.Season,
			League:      group.League,
			LeagueFile:  group.FileKey(),
			Position:    i,
			MatchDate:   record.Date,
			MatchTime:   record.Time,
			HomeTeam:    record.HomeTeam,
			AwayTeam:    record.AwayTeam,
			Raw:         string(raw),
			ImportRunID: runID,
		}
		if record.Score != nil {
			home, away := record.Score.Home, record.Score.Away
			model.HomeGoals = &home
			model.AwayGoals = &away
		}
		models = append(models, model)
	}
	return models, nil
}

func recordFromRow(row archivedMatchTableModel) (match.Record, error) {
	record := match.Record{
		Season:     row.Season,
		League:     row.League,
		LeagueFile: row.LeagueFile,
		Date:       row.MatchDate,
		Time:       row.MatchTime,
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
	}
	if row.HomeGoals.Valid && row.AwayGoals.Valid {
		record.Score = &match.Score{Home: int(row.HomeGoals.Int32), Away: int(row.AwayGoals.Int32)}
	}
	if len(row.Raw) > 0 {
		var raw map[string]any
		if err := sonic.Unmarshal(row.Raw, &raw); err != nil {
			return match.Record{}, crerr.Wrap(err, "decode raw match")
		}
		record.Raw = raw
	}
	return record, nil
}
