package loader

import (
	"context"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
)

// Source serves the corpus under a fixed base path as a match.Source.
type Source struct {
	loader   *Loader
	basePath string
}

var _ match.Source = (*Source)(nil)

func NewSource(loader *Loader, basePath string) *Source {
	return &Source{loader: loader, basePath: basePath}
}

func (s *Source) ListMatches(ctx context.Context) ([]match.Record, error) {
	return s.loader.Load(ctx, s.basePath), nil
}
