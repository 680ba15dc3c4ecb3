package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"lead_scraper/internal/domain"
)

const keyPrefix = "lead_scraper:lock:"

var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a Locker shared by every process pointed at the same Redis. Keys
// expire after ttl so a crashed holder cannot wedge a project forever.
type Redis struct {
	rdb    goredis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedis(rdb goredis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Redis {
	return &Redis{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "redis_lock"),
	}
}

func (r *Redis) TryAcquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := r.rdb.SetNX(ctx, keyPrefix+key, token, r.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, domain.ErrJobRunning
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, r.rdb, []string{keyPrefix + key}, token).Err(); err != nil {
				r.logger.Warn("failed to release lock", "key", key, "error", err)
			}
		})
	}, nil
}
