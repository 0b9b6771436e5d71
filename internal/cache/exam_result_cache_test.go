package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/certprep/config"
	"github.com/lshigami/certprep/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExamResultCacheWithoutAddrIsNoop(t *testing.T) {
	c, err := NewExamResultCache(&config.Config{})
	require.NoError(t, err)

	id := uuid.New()
	c.Set(context.Background(), &dto.ExamResultResponse{ExamID: id})
	_, ok := c.Get(context.Background(), id)
	assert.False(t, ok)
}

func TestResultKey(t *testing.T) {
	id := uuid.MustParse("6f1c1d2e-8a40-4b55-9a0d-2f3f9b0c7e11")
	assert.Equal(t, "certprep:exam_result:6f1c1d2e-8a40-4b55-9a0d-2f3f9b0c7e11", resultKey(id))
}

func TestRedisCacheDefaultsTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	assert.Equal(t, defaultTTL, newRedisResultCache(client, 0).ttl)
	assert.Equal(t, 5*time.Minute, newRedisResultCache(client, 5*time.Minute).ttl)
}

func TestRedisCacheUnreachableServerIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := newRedisResultCache(client, time.Minute)

	id := uuid.New()
	c.Set(context.Background(), &dto.ExamResultResponse{ExamID: id})
	got, ok := c.Get(context.Background(), id)
	assert.False(t, ok)
	assert.Nil(t, got)
}
