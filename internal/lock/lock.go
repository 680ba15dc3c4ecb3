// Package lock provides per-key exclusion for background jobs.
package lock

import (
	"context"
)

// Locker grants at most one holder per key. TryAcquire returns
// domain.ErrJobRunning when the key is held and never waits.
type Locker interface {
	TryAcquire(ctx context.Context, key string) (release func(), err error)
}
