package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/match-analyst/internal/domain/match"
	matchmock "github.com/riskibarqy/match-analyst/internal/mocks/domain/match"
	basecache "github.com/riskibarqy/match-analyst/internal/platform/cache"
)

func TestMatchSource_MemoizesUntilInvalidated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := matchmock.NewSource(t)
	next.On("ListMatches", mock.Anything).Return([]match.Record{{HomeTeam: "Flamengo RJ", AwayTeam: "Santos FC"}}, nil).Twice()

	source := NewMatchSource(next, basecache.NewStore(time.Minute))

	first, err := source.ListMatches(ctx)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	first[0].HomeTeam = "mutated"

	second, err := source.ListMatches(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second[0].HomeTeam != "Flamengo RJ" {
		t.Fatalf("callers must get their own copy, got %q", second[0].HomeTeam)
	}

	source.Invalidate(ctx)
	if _, err := source.ListMatches(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
}

func TestMatchSource_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := matchmock.NewSource(t)
	next.On("ListMatches", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	next.On("ListMatches", mock.Anything).Return([]match.Record{{HomeTeam: "Bahia"}}, nil).Once()

	source := NewMatchSource(next, basecache.NewStore(time.Minute))

	if _, err := source.ListMatches(ctx); err == nil {
		t.Fatalf("expected first load to fail")
	}
	got, err := source.ListMatches(ctx)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected retry to load, got %v err=%v", got, err)
	}
}
