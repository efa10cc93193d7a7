// File: internal/service/limiter.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"crypto-wallet/internal/cache"

	"github.com/redis/go-redis/v9"
)

const loginAttemptsKeyPrefix = "login_attempts:"

// LoginLimiter 以 Redis 計數連續登入失敗次數
// 第一次失敗時開始計時，LockDuration 內失敗達 MaxAttempts 次即鎖定至計數過期
type LoginLimiter struct {
	Cache        cache.Cache
	MaxAttempts  int
	LockDuration time.Duration
}

func NewLoginLimiter(c cache.Cache, maxAttempts int, lockDuration time.Duration) *LoginLimiter {
	return &LoginLimiter{Cache: c, MaxAttempts: maxAttempts, LockDuration: lockDuration}
}

func (l *LoginLimiter) key(email string) string {
	return loginAttemptsKeyPrefix + email
}

// Locked 回報該 email 是否已達失敗上限
func (l *LoginLimiter) Locked(ctx context.Context, email string) (bool, error) {
	v, err := l.Cache.Get(ctx, l.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("LoginLimiter.Locked: %w", err)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false, fmt.Errorf("LoginLimiter.Locked: %w", err)
	}
	if n < l.MaxAttempts {
		return false, nil
	}
	if err := l.ensureExpiry(ctx, email); err != nil {
		return true, fmt.Errorf("LoginLimiter.Locked: %w", err)
	}
	return true, nil
}

// ensureExpiry 計數沒有過期時間時補上 LockDuration，避免永久鎖定
func (l *LoginLimiter) ensureExpiry(ctx context.Context, email string) error {
	ttl, err := l.Cache.TTL(ctx, l.key(email)).Result()
	if err != nil {
		return err
	}
	if ttl >= 0 {
		return nil
	}
	return l.Cache.Expire(ctx, l.key(email), l.LockDuration).Err()
}

// RecordFailure 累加失敗次數並回傳目前次數
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) (int64, error) {
	n, err := l.Cache.Incr(ctx, l.key(email)).Result()
	if err != nil {
		return 0, fmt.Errorf("LoginLimiter.RecordFailure: %w", err)
	}
	if n == 1 {
		err = l.Cache.Expire(ctx, l.key(email), l.LockDuration).Err()
	} else {
		err = l.ensureExpiry(ctx, email)
	}
	if err != nil {
		return n, fmt.Errorf("LoginLimiter.RecordFailure: %w", err)
	}
	return n, nil
}

// Reset 登入成功後清除計數
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.Cache.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("LoginLimiter.Reset: %w", err)
	}
	return nil
}
