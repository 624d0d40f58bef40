package news

import "context"

// Article is one headline returned by a news search.
type Article struct {
	Title       string
	Source      string
	PublishedAt string
	URL         string
}

// Searcher returns at most limit articles matching query. Failures are logged
// by the implementation and surface as an empty result.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []Article
}
