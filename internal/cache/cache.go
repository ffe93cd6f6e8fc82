package cache

import "time"

// Cache stores raw upstream response bodies keyed by request URL, each entry
// carrying its own expiry. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Prune() int
	Close() error
}
