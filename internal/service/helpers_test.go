package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"crypto-wallet/internal/cache"

	"github.com/redis/go-redis/v9"
)

// newMemCache 以 map 模擬最小的 Redis 行為；只記錄 TTL，不會真的過期
func newMemCache() (*cache.FakeCache, map[string]string) {
	var mu sync.Mutex
	data := map[string]string{}
	ttls := map[string]time.Duration{}
	return &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, val any, _ time.Duration) *redis.StatusCmd {
			mu.Lock()
			defer mu.Unlock()
			data[key] = val.(string)
			return redis.NewStatusResult("OK", nil)
		},
		IncrFn: func(_ context.Context, key string) *redis.IntCmd {
			mu.Lock()
			defer mu.Unlock()
			n, _ := strconv.Atoi(data[key])
			n++
			data[key] = strconv.Itoa(n)
			return redis.NewIntResult(int64(n), nil)
		},
		ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := data[key]; !ok {
				return redis.NewBoolResult(false, nil)
			}
			ttls[key] = ttl
			return redis.NewBoolResult(true, nil)
		},
		TTLFn: func(_ context.Context, key string) *redis.DurationCmd {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := data[key]; !ok {
				return redis.NewDurationResult(-2, nil)
			}
			if ttl, ok := ttls[key]; ok {
				return redis.NewDurationResult(ttl, nil)
			}
			return redis.NewDurationResult(-1, nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			mu.Lock()
			defer mu.Unlock()
			for _, k := range keys {
				delete(data, k)
				delete(ttls, k)
			}
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}, data
}
