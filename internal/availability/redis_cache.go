package availability

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"consultly/internal/domain"
)

// RedisCache хранит общий кеш для нескольких экземпляров сервиса. Ошибки Redis
// только логируются: промах или потерянная запись не влияют на результат.
type RedisCache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

func NewRedisCache(rdb redis.Cmdable, ttl time.Duration, prefix string, logger *zap.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "availability"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{rdb: rdb, ttl: ttl, prefix: prefix, logger: logger}
}

func (c *RedisCache) redisKey(key Key) string {
	return c.prefix + ":" + key.String()
}

func (c *RedisCache) Get(ctx context.Context, key Key) ([]domain.DayAvailability, bool) {
	data, err := c.rdb.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("ошибка чтения кеша доступности", zap.String("key", c.redisKey(key)), zap.Error(err))
		}
		return nil, false
	}

	var days []domain.DayAvailability
	if err := json.Unmarshal(data, &days); err != nil {
		c.logger.Warn("поврежденная запись кеша доступности", zap.String("key", c.redisKey(key)), zap.Error(err))
		return nil, false
	}

	return days, true
}

func (c *RedisCache) Set(ctx context.Context, key Key, days []domain.DayAvailability) {
	data, err := json.Marshal(days)
	if err != nil {
		c.logger.Warn("ошибка сериализации доступности", zap.String("key", c.redisKey(key)), zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, c.redisKey(key), data, c.ttl).Err(); err != nil {
		c.logger.Warn("ошибка записи кеша доступности", zap.String("key", c.redisKey(key)), zap.Error(err))
	}
}
