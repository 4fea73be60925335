package contracts

import (
	"context"
	"time"
)

// LockerService guards work that only one replica may run at a time.
type LockerService interface {
	// TryLock returns the ownership token when the key was free.
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, ttl time.Duration) error
}
