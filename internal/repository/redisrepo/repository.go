package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Default interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) *redis.StringCmd
	DelPattern(ctx context.Context, pattern string) error
	// Generation reads a counter that versions a family of cached pages.
	// A missing counter reads as zero.
	Generation(ctx context.Context, key string) (int64, error)
	BumpGeneration(ctx context.Context, key string) (int64, error)
}

type RedisRepository struct {
	Default
}

func New(rdb *redis.Client) *RedisRepository {
	if rdb == nil {
		return nil
	}

	return &RedisRepository{
		Default: newDefaultRepo(rdb),
	}
}
