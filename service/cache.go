package service

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"budget-agent/repository"
)

// cacheKey derives a stable cache key from a request payload. Engine calls
// are idempotent, so identical payloads always map to identical results.
func cacheKey(prefix string, payload any) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%x", prefix, xxhash.Sum64(b))
}

// lookupCached returns a previously stored result for key, if any.
func lookupCached[T any](cache repository.CacheRepository, key string) (T, bool) {
	var out T
	if cache == nil || key == "" {
		return out, false
	}
	raw, ok := cache.Get(key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, false
	}
	return out, true
}

// storeCached writes a result under key. Cache failures are never fatal.
func storeCached(cache repository.CacheRepository, log *logrus.Logger, key string, value any) {
	if cache == nil || key == "" {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(key, string(b)); err != nil {
		log.WithError(err).Debug("failed to cache result")
	}
}
