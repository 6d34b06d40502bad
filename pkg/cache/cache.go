// Package cache stores rendered images for the preview server.
//
// Rendering a hero or background is cheap but not free, and a browser
// reloading the preview index asks for every image at once. A [Cache] keeps
// the bytes of each image keyed by what produced it, so a reload costs one
// map lookup per image.
//
// Two implementations are provided: [MemoryCache] for the running server and
// [NullCache] for --no-cache, where every request renders afresh.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache stores byte values under string keys.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A positive ttl expires the entry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Key builds a cache key such as "hero:trie-scanning-text:dark".
func Key(kind string, parts ...string) string {
	return kind + ":" + strings.Join(parts, ":")
}

// Hash returns the hex SHA-256 of data. It doubles as an HTTP entity tag.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// GetOrRender returns the cached value for key, calling render and storing
// its result on a miss. Render errors are returned and nothing is stored.
func GetOrRender(ctx context.Context, c Cache, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error) {
	if data, ok, err := c.Get(ctx, key); err != nil {
		return nil, err
	} else if ok {
		return data, nil
	}
	data, err := render()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, data, ttl); err != nil {
		return nil, err
	}
	return data, nil
}
