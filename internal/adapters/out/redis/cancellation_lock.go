// Package redis implements the distributed cancellation lock on Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"fastex/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds the caller's token,
// so an expired lock re-taken by another cancellation is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CancellationLock serializes booking cancellations across server instances
// with SET NX PX. Each successful Acquire stores a fresh token.
type CancellationLock struct {
	client redis.Cmdable
}

// NewCancellationLock creates a lock bound to client.
func NewCancellationLock(client redis.Cmdable) *CancellationLock {
	return &CancellationLock{client: client}
}

// NewClient builds a go-redis client from connection settings.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Acquire takes the lock for bookingID. It returns false without error when
// another cancellation holds it.
func (l *CancellationLock) Acquire(ctx context.Context, bookingID kernel.UUID, ttl time.Duration) (string, bool, error) {
	if err := bookingID.Validate(); err != nil {
		return "", false, err
	}

	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKey(bookingID), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire cancellation lock %s: %w", bookingID, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the lock if it is still held under token.
func (l *CancellationLock) Release(ctx context.Context, bookingID kernel.UUID, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{lockKey(bookingID)}, token).Err(); err != nil {
		return fmt.Errorf("release cancellation lock %s: %w", bookingID, err)
	}
	return nil
}

func lockKey(bookingID kernel.UUID) string {
	return fmt.Sprintf("fastex:booking:cancel:%s", bookingID)
}
