package redis

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/exceptions"
	"time"

	"github.com/redis/go-redis/v9"
)

// Both scripts act only when the key still holds the caller's value, so a
// holder whose TTL lapsed cannot touch the next holder's key.
var (
	deleteIfValueScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

	expireIfValueScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	acquired, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, exceptions.ErrRedisSetNX(err)
	}
	return acquired, nil
}

func (r *redisRepository) DeleteIfValue(ctx context.Context, key, value string) (bool, error) {
	deleted, err := deleteIfValueScript.Run(ctx, r.client, []string{key}, value).Int()
	if err != nil {
		return false, exceptions.ErrRedisUnlock(err)
	}
	return deleted == 1, nil
}

func (r *redisRepository) ExpireIfValue(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	extended, err := expireIfValueScript.Run(ctx, r.client, []string{key}, value, ttl.Milliseconds()).Int()
	if err != nil {
		return false, exceptions.ErrRedisRefresh(err)
	}
	return extended == 1, nil
}
