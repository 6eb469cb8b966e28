// Package cache stores fetched stats listings between runs so the trade API
// is not hit on every table rebuild.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk and layered
// implementations
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from an endpoint URL
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "pathofsearching:v1:" + hex.EncodeToString(sum[:])
}
