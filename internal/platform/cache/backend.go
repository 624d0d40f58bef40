package cache

import (
	"context"
	"time"
)

// Backend stores encoded lookup results. Store keeps them in process;
// RedisStore shares them between API instances.
type Backend interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*RedisStore)(nil)
)
