package hashmap

import (
	"errors"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors returned by Map operations.
var (
	// ErrDuplicateKey indicates that Put was called with a key that is already bound.
	ErrDuplicateKey = errors.New("hashmap: key already exists")

	// ErrNullKey indicates that Put was called with a nil key.
	ErrNullKey = errors.New("hashmap: key is nil")

	// ErrKeyNotFound indicates that the requested key is not bound.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrBadCapacity indicates a non-positive initial capacity.
	ErrBadCapacity = errors.New("hashmap: capacity must be positive")
)

const (
	// DefaultCapacity is the initial bucket count used when callers have no better estimate.
	DefaultCapacity = 32

	// MaxLoadFactor is the occupancy ratio that triggers doubling.
	MaxLoadFactor = 0.75
)

// Hasher maps a key to a 64-bit hash. It must return equal hashes for equal keys.
type Hasher[K comparable] func(key K) uint64

// StringHasher hashes strings with xxhash64.
func StringHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// seededHasher returns a maphash-based Hasher bound to a fresh random seed.
func seededHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// Option configures a Map at construction time.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	hasher Hasher[K]
}

// WithHasher overrides the default maphash-based hasher.
// A nil hasher is ignored.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(o *options[K]) {
		if h != nil {
			o.hasher = h
		}
	}
}

// entry is one key/value binding stored in a bucket.
type entry[K comparable, V any] struct {
	key   K
	value V
}
