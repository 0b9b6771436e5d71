// Package cache keeps finished exam results in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/lshigami/certprep/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix   = "certprep:exam_result:"
	defaultTTL  = time.Hour
	pingTimeout = 3 * time.Second
)

type redisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewExamResultCache connects to Redis when REDIS_ADDR is set and falls back
// to a no-op cache otherwise.
func NewExamResultCache(cfg *config.Config) (service.ExamResultCache, error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR is not set. Exam results will not be cached.")
		return service.NewNoopResultCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis result cache connected")
	return newRedisResultCache(client, cfg.Redis.TTL), nil
}

func newRedisResultCache(client *redis.Client, ttl time.Duration) *redisResultCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisResultCache{client: client, ttl: ttl}
}

func resultKey(examID uuid.UUID) string {
	return keyPrefix + examID.String()
}

func (c *redisResultCache) Get(ctx context.Context, examID uuid.UUID) (*dto.ExamResultResponse, bool) {
	data, err := c.client.Get(ctx, resultKey(examID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("examID", examID.String()).Msg("Get: Failed to read cached exam result")
		}
		return nil, false
	}

	var result dto.ExamResultResponse
	if err := json.Unmarshal(data, &result); err != nil {
		log.Warn().Err(err).Str("examID", examID.String()).Msg("Get: Discarding malformed cached exam result")
		return nil, false
	}
	return &result, true
}

func (c *redisResultCache) Set(ctx context.Context, result *dto.ExamResultResponse) {
	if result == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		log.Warn().Err(err).Str("examID", result.ExamID.String()).Msg("Set: Failed to encode exam result")
		return
	}
	if err := c.client.Set(ctx, resultKey(result.ExamID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("examID", result.ExamID.String()).Msg("Set: Failed to cache exam result")
	}
}

// Close releases the Redis connection pool.
func (c *redisResultCache) Close() error {
	return c.client.Close()
}
