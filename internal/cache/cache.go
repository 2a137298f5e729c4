package cache

import (
	"context"
	"time"
)

// Cache 只用於存活檢查，不存放任何業務資料
type Cache interface {
	// Heartbeat 寫入一筆帶 TTL 的時間戳，確認 Redis 可寫
	Heartbeat(ctx context.Context, key string, ttl time.Duration) error
	Close() error
}

// FakeCache 測試用；未設定 HeartbeatFn 時 panic
type FakeCache struct {
	HeartbeatFn func(ctx context.Context, key string, ttl time.Duration) error
	CloseFn     func() error
}

func (f *FakeCache) Heartbeat(ctx context.Context, key string, ttl time.Duration) error {
	if f.HeartbeatFn != nil {
		return f.HeartbeatFn(ctx, key, ttl)
	}
	panic("unexpected Heartbeat")
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
