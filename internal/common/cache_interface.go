package common

import (
	"encoding/json"
	"time"
)

// CacheInterface defines the contract for cache implementations. Values are
// stored as encoded bytes so the in-memory and Redis implementations behave
// the same way.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value []byte, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) ([]byte, bool)

	// Delete removes a value from cache by key
	Delete(key string)

	// Close closes the cache connection (if applicable)
	Close() error
}

// GetOrSetJSON returns the cached value for key, or calls loader and caches its
// JSON encoding. The boolean reports a cache hit. An entry that no longer
// decodes is treated as a miss.
func GetOrSetJSON[T any](c CacheInterface, key string, duration time.Duration, loader func() (T, error)) (T, bool, error) {
	if data, found := c.Get(key); found {
		var val T
		if err := json.Unmarshal(data, &val); err == nil {
			return val, true, nil
		}
		c.Delete(key)
	}

	val, err := loader()
	if err != nil {
		var zero T
		return zero, false, err
	}

	if data, err := json.Marshal(val); err == nil {
		c.Set(key, data, duration)
	}
	return val, false, nil
}
