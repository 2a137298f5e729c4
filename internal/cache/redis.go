package cache

import (
	"context"
	"time"

	"workshop-api/internal/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// redisClient 為 *redis.Client 中實際用到的方法
type redisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

var redisNow = time.Now

// RedisCache implements Cache on top of go-redis.
type RedisCache struct {
	client redisClient
}

// NewRedisClient 建立 Redis 客戶端並在 5 秒內完成 Ping 測試
func NewRedisClient(cfg config.Redis) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

func (r *RedisCache) Heartbeat(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Set(ctx, key, redisNow().Unix(), ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
