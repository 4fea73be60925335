package contracts

import (
	"context"
	"time"
)

// RedisRepository holds the primitives the leader lock needs. Values are
// stored as plain strings.
type RedisRepository interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	DeleteIfValue(ctx context.Context, key, value string) (bool, error)
	ExpireIfValue(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}
