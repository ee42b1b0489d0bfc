package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"samayak/internal/domain"
	"samayak/internal/service"

	"github.com/stretchr/testify/assert"
)

const expectedTrendingKey = "samayak:gateway:trending_topics:gemini-2.5-flash"

func TestTrendingTopicsCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Hit", func(t *testing.T) {
		mockCache := &ManualMockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				assert.Equal(t, expectedTrendingKey, key)
				return `["Mars","Fusion"]`, nil
			},
		}
		c := service.NewTrendingTopicsCache(mockCache, "gemini-2.5-flash", time.Minute)

		topics, ok := c.Get(ctx)
		assert.True(t, ok)
		assert.Equal(t, []string{"Mars", "Fusion"}, topics)
	})

	t.Run("Cache Miss", func(t *testing.T) {
		mockCache := &ManualMockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss },
		}
		c := service.NewTrendingTopicsCache(mockCache, "gemini-2.5-flash", time.Minute)

		topics, ok := c.Get(ctx)
		assert.False(t, ok)
		assert.Nil(t, topics)
	})

	t.Run("Cache Error", func(t *testing.T) {
		mockCache := &ManualMockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) { return "", errors.New("connection refused") },
		}
		c := service.NewTrendingTopicsCache(mockCache, "gemini-2.5-flash", time.Minute)

		_, ok := c.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("Corrupt Entry Is Deleted", func(t *testing.T) {
		deleted := ""
		mockCache := &ManualMockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) { return `{topics:`, nil },
			DeleteFunc: func(ctx context.Context, key string) error {
				deleted = key
				return nil
			},
		}
		c := service.NewTrendingTopicsCache(mockCache, "gemini-2.5-flash", time.Minute)

		_, ok := c.Get(ctx)
		assert.False(t, ok)
		assert.Equal(t, expectedTrendingKey, deleted)
	})
}

func TestTrendingTopicsCache_Put(t *testing.T) {
	ttl := 30 * time.Minute
	called := false
	mockCache := &ManualMockCache{
		SetFunc: func(ctx context.Context, key string, value string, duration time.Duration) error {
			called = true
			assert.Equal(t, expectedTrendingKey, key)
			assert.JSONEq(t, `["a","b"]`, value)
			assert.Equal(t, ttl, duration)
			return nil
		},
	}
	c := service.NewTrendingTopicsCache(mockCache, "gemini-2.5-flash", ttl)

	c.Put(context.Background(), []string{"a", "b"})
	assert.True(t, called)
}

func TestNewTrendingTopicsCache_NilCache(t *testing.T) {
	c := service.NewTrendingTopicsCache(nil, "gemini-2.5-flash", time.Minute)

	c.Put(context.Background(), []string{"ignored"})
	topics, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Nil(t, topics)
}
