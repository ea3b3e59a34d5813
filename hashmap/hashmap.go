// File: hashmap.go
// Role: Map type, constructor and the Put/Get/ContainsKey/Remove/Clear/All surface.
// Determinism:
//   - All() yields entries bucket by bucket, in insertion order within a bucket.
//     Bucket order depends on the hasher; with the default seeded hasher it varies per Map.
// Concurrency:
//   - None. Callers serialize mutation.

package hashmap

import (
	"fmt"
	"iter"
	"reflect"
)

// Map is a generic hash table with separate chaining.
type Map[K comparable, V any] struct {
	buckets [][]entry[K, V]
	size    int
	hash    Hasher[K]
}

// New creates an empty Map with the given number of buckets.
// Returns ErrBadCapacity if capacity < 1.
// Complexity: O(capacity).
func New[K comparable, V any](capacity int, opts ...Option[K]) (*Map[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasher == nil {
		o.hasher = seededHasher[K]()
	}

	return &Map[K, V]{
		buckets: make([][]entry[K, V], capacity),
		hash:    o.hasher,
	}, nil
}

// Put binds key to value.
//
// Errors:
//   - ErrNullKey if key is a nil pointer, channel or interface.
//   - ErrDuplicateKey if key is already bound; the existing binding is kept.
//
// If the post-insert load factor reaches MaxLoadFactor the table doubles and is
// fully rehashed before Put returns.
//
// Complexity: O(1) amortized, O(n) when a resize is triggered.
func (m *Map[K, V]) Put(key K, value V) error {
	if isNilKey(key) {
		return ErrNullKey
	}
	idx := m.index(key)
	for _, e := range m.buckets[idx] {
		if e.key == key {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.size++

	if float64(m.size)/float64(len(m.buckets)) >= MaxLoadFactor {
		m.resize(len(m.buckets) * 2)
	}

	return nil
}

// Get returns the value bound to key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	if i, pos := m.find(key); pos >= 0 {
		return m.buckets[i][pos].value, nil
	}
	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// ContainsKey reports whether key is bound. It never fails; a nil key is simply absent.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, pos := m.find(key)

	return pos >= 0
}

// Remove unbinds key and returns its value, or ErrKeyNotFound.
func (m *Map[K, V]) Remove(key K) (V, error) {
	i, pos := m.find(key)
	if pos < 0 {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	bucket := m.buckets[i]
	value := bucket[pos].value
	// keep the remaining entries in their original order
	copy(bucket[pos:], bucket[pos+1:])
	bucket[len(bucket)-1] = entry[K, V]{}
	m.buckets[i] = bucket[:len(bucket)-1]
	m.size--

	return value, nil
}

// Clear removes every binding. Capacity is retained.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		clear(m.buckets[i])
		m.buckets[i] = m.buckets[i][:0]
	}
	m.size = 0
}

// Len returns the number of bound keys.
func (m *Map[K, V]) Len() int { return m.size }

// Cap returns the number of buckets.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// All iterates over every binding. The map must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// index derives the bucket of key against the current capacity.
func (m *Map[K, V]) index(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// find returns the bucket index and the position of key in it, or pos == -1.
func (m *Map[K, V]) find(key K) (int, int) {
	if isNilKey(key) {
		return 0, -1
	}
	i := m.index(key)
	for pos, e := range m.buckets[i] {
		if e.key == key {
			return i, pos
		}
	}

	return i, -1
}

// resize allocates capacity buckets and re-derives the bucket of every entry.
// The old table is swapped out only after the new one is fully populated.
func (m *Map[K, V]) resize(capacity int) {
	next := make([][]entry[K, V], capacity)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			i := int(m.hash(e.key) % uint64(capacity))
			next[i] = append(next[i], e)
		}
	}
	m.buckets = next
}

// isNilKey reports whether key is a nil pointer, channel or interface value.
func isNilKey[K comparable](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
