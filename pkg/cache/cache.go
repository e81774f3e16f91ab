// Package cache stores solved boards so a repeated board and dictionary
// pair is answered without searching again.
//
// Three backends share the Cache interface: FileCache for the CLI,
// RedisCache for the cloud function, and NullCache when caching is off.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key, and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SolveKey identifies a search: the normalized board rows and the exact
// dictionary it ran against.
func SolveKey(rows []string, dictionaryFingerprint string) string {
	return hashKey("solve", rows, dictionaryFingerprint)
}

// Fingerprint hashes a word list. Order matters, so callers should pass
// the list exactly as it was loaded.
func Fingerprint(words []string) string {
	return Hash([]byte(strings.Join(words, "\n")))
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
