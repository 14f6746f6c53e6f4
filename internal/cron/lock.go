package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// The audit runs daily; the lock outlives one interval so a crashed holder
// cannot wedge the schedule for more than a cycle.
const defaultLockTTL = 25 * time.Hour

// Lock coordinates exclusive worker runs across instances.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// redisStore defines the operations used by RedisLock.
type redisStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// RedisLock implements Lock with SETNX plus a TTL. Each acquisition writes a
// fresh token so an instance never deletes a lock re-acquired by a peer after
// its own TTL expired.
type RedisLock struct {
	store redisStore
	key   string
	ttl   time.Duration
	token string
}

// NewRedisLock constructs a Redis-backed lock. A non-positive ttl falls back
// to the daily-audit default.
func NewRedisLock(store redisStore, key string, ttl time.Duration) (*RedisLock, error) {
	switch {
	case store == nil:
		return nil, errors.New("redis store required for lock")
	case key == "":
		return nil, errors.New("lock key is required")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLock{store: store, key: key, ttl: ttl}, nil
}

// Acquire tries to own the lock for the configured TTL.
func (l *RedisLock) Acquire(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	acquired, err := l.store.SetNX(ctx, l.key, token, l.ttl)
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", l.key, err)
	}
	if acquired {
		l.token = token
	}
	return acquired, nil
}

// Release frees the lock, but only when this instance still holds it.
func (l *RedisLock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	held, err := l.holdsLock(ctx)
	if err != nil {
		return err
	}
	if !held {
		l.token = ""
		return nil
	}
	if err := l.store.Del(ctx, l.key); err != nil {
		return fmt.Errorf("release lock %s: %w", l.key, err)
	}
	l.token = ""
	return nil
}

func (l *RedisLock) holdsLock(ctx context.Context) (bool, error) {
	value, err := l.store.Get(ctx, l.key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("read lock %s: %w", l.key, err)
	}
	return value == l.token, nil
}
