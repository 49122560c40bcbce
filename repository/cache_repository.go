package repository

// CacheRepository caches serialized engine results keyed by a hash of the
// request. Every engine call is idempotent, so a hit can be returned as-is.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
