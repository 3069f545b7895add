package repository

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"protect-connect/internal/config"
	"protect-connect/internal/entity"
	"protect-connect/internal/usecase"
)

// Compile-time check
var _ usecase.StatusCache = (*statusCache)(nil)

const statusKeyPrefix = "endpoint_status_"

// statusCache keeps endpoint probe results in memory with a TTL. Only probe
// outcomes are cached; endpoint URLs themselves are rebuilt on every request.
type statusCache struct {
	cache  *cache.Cache
	logger *zap.Logger
	cfg    config.CacheConfig
}

func NewStatusCache(cfg config.CacheConfig, logger *zap.Logger) usecase.StatusCache {
	defaultExpiration := cfg.GetDefaultExpiration()
	cleanupInterval := cfg.GetCleanupInterval()

	c := cache.New(defaultExpiration, cleanupInterval)
	logger.Info("Initialized go-cache for endpoint status",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval))

	return &statusCache{
		cache:  c,
		logger: logger.Named("StatusCache"),
		cfg:    cfg,
	}
}

func (r *statusCache) GetStatus(_ context.Context, endpoint entity.EndpointURL) (entity.EndpointStatus, bool, error) {
	key := statusKeyPrefix + endpoint.String()
	if x, found := r.cache.Get(key); found {
		if status, ok := x.(entity.EndpointStatus); ok {
			r.logger.Debug("Cache hit", zap.String("key", key))
			return status, true, nil
		}
		r.logger.Warn("Cache data type mismatch for key",
			zap.String("key", key), zap.Any("type", fmt.Sprintf("%T", x)))
	}
	r.logger.Debug("Cache miss", zap.String("key", key))
	return entity.EndpointStatus{}, false, nil
}

func (r *statusCache) SetStatus(
	_ context.Context,
	endpoint entity.EndpointURL,
	status entity.EndpointStatus,
	ttl time.Duration,
) error {
	key := statusKeyPrefix + endpoint.String()
	if ttl <= 0 {
		ttl = r.cfg.GetDefaultExpiration()
	}
	r.cache.Set(key, status, ttl)
	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}
