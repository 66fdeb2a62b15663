package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fiberops/subcore/internal/shared/logger"
)

// DefaultTransitionLockTTL bounds how long a crashed holder can block an
// account.
const DefaultTransitionLockTTL = 30 * time.Second

// releaseScript deletes the lock only when it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisTransitionLocker serializes transitions across instances with
// SET NX PX locks.
type RedisTransitionLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisTransitionLocker(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisTransitionLocker {
	if ttl <= 0 {
		ttl = DefaultTransitionLockTTL
	}
	return &RedisTransitionLocker{client: client, ttl: ttl, logger: logger}
}

// TryAcquire sets key if absent. The returned release is safe to call after
// the lock has expired and been taken by another holder.
func (l *RedisTransitionLocker) TryAcquire(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		// The caller's context may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warnw("failed to release transition lock", "key", key, "error", err)
		}
	}
	return release, true, nil
}

// MemoryTransitionLocker is the single-instance locker used without Redis.
type MemoryTransitionLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryTransitionLocker() *MemoryTransitionLocker {
	return &MemoryTransitionLocker{held: make(map[string]struct{})}
}

func (l *MemoryTransitionLocker) TryAcquire(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, false, nil
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}
