package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"samayak/internal/cache"
	"samayak/internal/domain"
	"samayak/internal/logger"

	"go.uber.org/zap"
)

// TrendingTopicsCache stores topic suggestions between generator calls.
// Cache problems are logged and never surface to callers.
type TrendingTopicsCache interface {
	Get(ctx context.Context) ([]string, bool)
	Put(ctx context.Context, topics []string)
}

type trendingTopicsCacheImpl struct {
	cache domain.Cache
	key   string
	ttl   time.Duration
}

// NewTrendingTopicsCache caches suggestions per model. A nil cache yields a no-op implementation.
func NewTrendingTopicsCache(c domain.Cache, model string, ttl time.Duration) TrendingTopicsCache {
	if c == nil {
		logger.Get().Warn("TrendingTopicsCache initialized with nil cache. Suggestions will not be cached.")
		return noopTrendingTopicsCache{}
	}
	return &trendingTopicsCacheImpl{
		cache: c,
		key:   cache.TrendingTopicsKey(model),
		ttl:   ttl,
	}
}

func (s *trendingTopicsCacheImpl) Get(ctx context.Context) ([]string, bool) {
	data, err := s.cache.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to read trending topics from cache", zap.Error(err), zap.String("key", s.key))
		}
		return nil, false
	}

	var topics []string
	if err := json.Unmarshal([]byte(data), &topics); err != nil || len(topics) == 0 {
		logger.Get().Warn("Discarding unreadable trending topics cache entry", zap.Error(err), zap.String("key", s.key))
		if delErr := s.cache.Delete(ctx, s.key); delErr != nil {
			logger.Get().Warn("Failed to delete trending topics cache entry", zap.Error(delErr), zap.String("key", s.key))
		}
		return nil, false
	}

	logger.Get().Debug("Trending topics cache hit", zap.String("key", s.key))
	return topics, true
}

func (s *trendingTopicsCacheImpl) Put(ctx context.Context, topics []string) {
	data, err := json.Marshal(topics)
	if err != nil {
		logger.Get().Error("Failed to marshal trending topics", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, s.key, string(data), s.ttl); err != nil {
		logger.Get().Warn("Failed to cache trending topics", zap.Error(err), zap.String("key", s.key))
		return
	}
	logger.Get().Debug("Cached trending topics", zap.String("key", s.key), zap.Duration("ttl", s.ttl))
}

type noopTrendingTopicsCache struct{}

func (noopTrendingTopicsCache) Get(context.Context) ([]string, bool) { return nil, false }

func (noopTrendingTopicsCache) Put(context.Context, []string) {}
