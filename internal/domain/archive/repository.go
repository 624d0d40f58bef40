package archive

import "context"

// Repository persists raw match records. It never stores computed statistics.
type Repository interface {
	ReplaceGroup(ctx context.Context, runID string, group Group) error
	SaveRun(ctx context.Context, run Run) error
	// LatestRun returns the most recently started import. The bool is false
	// when no import has been recorded.
	LatestRun(ctx context.Context) (Run, bool, error)
}
