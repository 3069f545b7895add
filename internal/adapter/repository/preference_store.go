package repository

import (
	"context"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"protect-connect/internal/config"
	"protect-connect/internal/usecase"
)

// Compile-time check
var _ usecase.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore is the in-process stand-in for the browser's local
// key-value storage. Entries never expire on their own; the connection
// sequence deletes the providerType key explicitly.
type PreferenceStore struct {
	cache  *cache.Cache
	logger *zap.Logger
}

func NewPreferenceStore(cfg config.CacheConfig, logger *zap.Logger) *PreferenceStore {
	c := cache.New(cache.NoExpiration, cfg.GetCleanupInterval())

	return &PreferenceStore{
		cache:  c,
		logger: logger.Named("PreferenceStore"),
	}
}

// Delete removes a preference key. Deleting an absent key is a no-op, which
// keeps the operation infallible from the caller's point of view.
func (s *PreferenceStore) Delete(_ context.Context, key string) {
	s.cache.Delete(key)
	s.logger.Debug("Preference deleted", zap.String("key", key))
}

// Set stores a preference value without expiration.
func (s *PreferenceStore) Set(_ context.Context, key, value string) {
	s.cache.Set(key, value, cache.NoExpiration)
	s.logger.Debug("Preference set", zap.String("key", key))
}

// Get retrieves a preference value, reporting whether it was present.
func (s *PreferenceStore) Get(_ context.Context, key string) (string, bool) {
	if x, found := s.cache.Get(key); found {
		if v, ok := x.(string); ok {
			return v, true
		}
	}
	return "", false
}
