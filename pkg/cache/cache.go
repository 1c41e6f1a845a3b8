// Package cache provides a persistent cache for computed character values.
//
// Character values are pure functions of their inputs, so finished results
// can be stored under a content hash of the request and reused by later
// invocations. Only final results are cached; the memo tables used inside a
// single computation never leave it.
//
// # Implementations
//
//   - [FileCache]: JSON entries under a directory, for CLI use
//   - [NullCache]: never stores anything, for --no-cache and tests
//
// # Keys
//
// A [Keyer] derives keys from requests. [NewScopedKeyer] prefixes every key,
// which the CLI uses to separate result formats across releases.
package cache

import (
	"context"
	"time"
)

// TTLs for cached values. Zero means the entry never expires.
const (
	// TTLCharacter applies to single (partition, cycle type) results.
	TTLCharacter time.Duration = 0

	// TTLTable applies to full character tables.
	TTLTable time.Duration = 0
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 stores the value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// NullCache never stores anything; every Get is a miss.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always returns a cache miss.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error {
	return nil
}

// Close does nothing.
func (NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = NullCache{}
