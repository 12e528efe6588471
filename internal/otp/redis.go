package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login:otp:"

// verifyScript compares and deletes in one atomic step so a concurrent verify
// or expiry cannot observe a half-consumed entry.
// Returns 1 on match (entry deleted), 0 on mismatch, -1 when absent.
var verifyScript = redis.NewScript(`
local stored = redis.call('GET', KEYS[1])
if stored == false then
    return -1
end
if stored == ARGV[1] then
    redis.call('DEL', KEYS[1])
    return 1
end
return 0
`)

// RedisRegistry stores passcodes in Redis so multiple instances share one
// registry. Expiry rides on the key TTL.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRegistry builds a Redis-backed registry whose codes live for ttl.
func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{client: client, ttl: ttl}
}

// Issue generates a passcode and stores it under the identity key, replacing
// any live entry and resetting the TTL.
func (r *RedisRegistry) Issue(ctx context.Context, key string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}
	if err := r.client.Set(ctx, keyPrefix+key, code, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("store passcode: %w", err)
	}
	return code, nil
}

// Verify consumes the stored passcode when it matches the submitted one.
func (r *RedisRegistry) Verify(ctx context.Context, key, code string) error {
	res, err := verifyScript.Run(ctx, r.client, []string{keyPrefix + key}, code).Int()
	if err != nil {
		return fmt.Errorf("verify passcode: %w", err)
	}
	switch res {
	case 1:
		return nil
	case 0:
		return ErrMismatch
	default:
		return ErrNotFound
	}
}
