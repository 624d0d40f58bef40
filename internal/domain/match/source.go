package match

import "context"

// Source yields the match collection that analyses run over.
type Source interface {
	ListMatches(ctx context.Context) ([]Record, error)
}

// Corpus is the outcome of one walk over a match corpus on disk.
type Corpus struct {
	Records      []Record
	Seasons      int
	FilesLoaded  int
	FilesSkipped int
}
