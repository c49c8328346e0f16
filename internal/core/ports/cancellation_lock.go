package ports

import (
	"context"
	"time"

	"fastex/internal/core/domain/model/kernel"
)

// CancellationLock serializes cancellations of one booking across server
// instances.
type CancellationLock interface {
	// Acquire returns false without error when another cancellation of the same
	// booking holds the lock. The lock expires after ttl. On success the
	// returned token identifies this hold and must be passed to Release.
	Acquire(ctx context.Context, bookingID kernel.UUID, ttl time.Duration) (token string, acquired bool, err error)

	// Release frees the lock only while it is still held under token.
	Release(ctx context.Context, bookingID kernel.UUID, token string) error
}
