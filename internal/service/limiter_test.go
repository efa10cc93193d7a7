package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-wallet/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestLoginLimiter(t *testing.T) {
	ctx := context.Background()
	c, data := newMemCache()
	var expired []time.Duration
	expire := c.ExpireFn
	c.ExpireFn = func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
		require.Equal(t, "login_attempts:a@b.com", key)
		expired = append(expired, ttl)
		return expire(ctx, key, ttl)
	}
	l := NewLoginLimiter(c, 3, 15*time.Minute)

	locked, err := l.Locked(ctx, "a@b.com")
	require.NoError(t, err)
	require.False(t, locked)

	for i := 1; i <= 3; i++ {
		n, err := l.RecordFailure(ctx, "a@b.com")
		require.NoError(t, err)
		require.Equal(t, int64(i), n)
	}
	// 只有第一次失敗設定過期
	require.Equal(t, []time.Duration{15 * time.Minute}, expired)

	locked, err = l.Locked(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, locked)

	require.NoError(t, l.Reset(ctx, "a@b.com"))
	require.Empty(t, data)
}

func TestLoginLimiterErrors(t *testing.T) {
	ctx := context.Background()
	fail := errors.New("down")
	l := NewLoginLimiter(&cache.FakeCache{
		GetFn:  func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", fail) },
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(0, fail) },
		DelFn:  func(context.Context, ...string) *redis.IntCmd { return redis.NewIntResult(0, fail) },
	}, 3, time.Minute)

	_, err := l.Locked(ctx, "x")
	require.ErrorIs(t, err, fail)
	_, err = l.RecordFailure(ctx, "x")
	require.ErrorIs(t, err, fail)
	require.ErrorIs(t, l.Reset(ctx, "x"), fail)

	l.Cache = &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("not-a-number", nil)
	}}
	_, err = l.Locked(ctx, "x")
	require.Error(t, err)

	l.Cache = &cache.FakeCache{
		IncrFn:   func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(1, nil) },
		ExpireFn: func(context.Context, string, time.Duration) *redis.BoolCmd { return redis.NewBoolResult(false, fail) },
	}
	n, err := l.RecordFailure(ctx, "x")
	require.ErrorIs(t, err, fail)
	require.Equal(t, int64(1), n)
}

func TestLoginLimiterRepairsMissingExpiry(t *testing.T) {
	ctx := context.Background()
	c, data := newMemCache()
	expire := c.ExpireFn
	calls := 0
	c.ExpireFn = func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
		calls++
		if calls == 1 {
			return redis.NewBoolResult(false, errors.New("timeout"))
		}
		return expire(ctx, key, ttl)
	}
	l := NewLoginLimiter(c, 3, 15*time.Minute)

	// 第一次失敗的 EXPIRE 出錯，計數沒有過期時間
	_, err := l.RecordFailure(ctx, "a@b.com")
	require.Error(t, err)
	require.EqualValues(t, -1, c.TTL(ctx, "login_attempts:a@b.com").Val())

	// 下一次失敗補上過期時間
	n, err := l.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.Equal(t, 15*time.Minute, c.TTL(ctx, "login_attempts:a@b.com").Val())
	require.Equal(t, 2, calls)

	// 已有過期時間時不再重設
	_, err = l.RecordFailure(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, "3", data["login_attempts:a@b.com"])
}

func TestLoginLimiterLockedRepairsMissingExpiry(t *testing.T) {
	ctx := context.Background()
	c, data := newMemCache()
	data["login_attempts:a@b.com"] = "5"
	l := NewLoginLimiter(c, 3, time.Minute)

	locked, err := l.Locked(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, locked)
	require.Equal(t, time.Minute, c.TTL(ctx, "login_attempts:a@b.com").Val())

	c.TTLFn = func(context.Context, string) *redis.DurationCmd {
		return redis.NewDurationResult(0, errors.New("down"))
	}
	locked, err = l.Locked(ctx, "a@b.com")
	require.Error(t, err)
	require.True(t, locked)
}
