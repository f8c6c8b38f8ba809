// Package cache provides the Redis-backed suggestion cache used when several
// processes should share memoized results.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/pkg/apperrors"
)

const defaultNamespace = "career-advisor:suggestions"

// RedisSuggestionCache LRU kesh: markup HASH da, ishlatilish tartibi ZSET da.
// Score monoton hisoblagichdan olinadi, eng kichik score eng eski.
type RedisSuggestionCache struct {
	client   *redis.Client
	capacity int
	dataKey  string
	lruKey   string
	seqKey   string
}

var _ repository.SuggestionCache = (*RedisSuggestionCache)(nil)

// NewRedisSuggestionCache namespace bo'sh bo'lsa standart prefiks ishlatiladi
func NewRedisSuggestionCache(client *redis.Client, namespace string, capacity int) *RedisSuggestionCache {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if capacity <= 0 {
		capacity = 1
	}
	return &RedisSuggestionCache{
		client:   client,
		capacity: capacity,
		dataKey:  namespace + ":data",
		lruKey:   namespace + ":lru",
		seqKey:   namespace + ":seq",
	}
}

// Connect Redis ga ulanib, Ping bilan tekshiradi
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (c *RedisSuggestionCache) Get(ctx context.Context, key string) (string, bool, error) {
	markup, err := c.client.HGet(ctx, c.dataKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewCacheUnavailableError(err)
	}
	if err := c.touch(ctx, key); err != nil {
		return "", false, apperrors.NewCacheUnavailableError(err)
	}
	return markup, true, nil
}

func (c *RedisSuggestionCache) Set(ctx context.Context, key, markup string) error {
	seq, err := c.client.Incr(ctx, c.seqKey).Result()
	if err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, c.dataKey, key, markup)
		pipe.ZAdd(ctx, c.lruKey, redis.Z{Score: float64(seq), Member: key})
		return nil
	})
	if err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	return c.evict(ctx)
}

func (c *RedisSuggestionCache) touch(ctx context.Context, key string) error {
	seq, err := c.client.Incr(ctx, c.seqKey).Result()
	if err != nil {
		return err
	}
	return c.client.ZAddXX(ctx, c.lruKey, redis.Z{Score: float64(seq), Member: key}).Err()
}

// evict capacity dan oshgan eng eski yozuvlarni o'chiradi
func (c *RedisSuggestionCache) evict(ctx context.Context) error {
	size, err := c.client.ZCard(ctx, c.lruKey).Result()
	if err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	excess := size - int64(c.capacity)
	if excess <= 0 {
		return nil
	}
	victims, err := c.client.ZPopMin(ctx, c.lruKey, excess).Result()
	if err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	fields := make([]string, 0, len(victims))
	for _, v := range victims {
		if member, ok := v.Member.(string); ok {
			fields = append(fields, member)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	if err := c.client.HDel(ctx, c.dataKey, fields...).Err(); err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	return nil
}

func (c *RedisSuggestionCache) Len(ctx context.Context) (int, error) {
	n, err := c.client.HLen(ctx, c.dataKey).Result()
	if err != nil {
		return 0, apperrors.NewCacheUnavailableError(err)
	}
	return int(n), nil
}

func (c *RedisSuggestionCache) Clear(ctx context.Context) error {
	if err := c.client.Del(ctx, c.dataKey, c.lruKey, c.seqKey).Err(); err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	return nil
}
