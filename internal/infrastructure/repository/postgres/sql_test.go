package postgres

import (
	"database/sql"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to be not found")
	}
	if !isNotFound(crerr.Wrap(sql.ErrNoRows, "get latest import run")) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(crerr.New("connection refused")) {
		t.Fatalf("did not expect unrelated error to be not found")
	}
}

func TestRunFromRow(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	row := archiveImportRunTableModel{
		ID:           "run-1",
		BasePath:     "football.json-master",
		Seasons:      2,
		FilesLoaded:  5,
		FilesSkipped: 1,
		GroupsTotal:  5,
		GroupsFailed: 1,
		Records:      380,
		StartedAt:    started,
		FinishedAt:   started.Add(time.Minute),
	}

	run := runFromRow(row)
	if run.ID != "run-1" || run.Groups != 5 || run.GroupsFailed != 1 || run.Records != 380 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.StartedAt.Location() != time.UTC || !run.StartedAt.Equal(started) {
		t.Fatalf("expected UTC start time, got %v", run.StartedAt)
	}
}
