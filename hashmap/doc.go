// Package hashmap provides a generic key→value map backed by a chained hash table.
//
// Overview:
//
//   - Every bucket holds an ordered slice of entries whose keys hash to that bucket.
//     Lookup inside a bucket is a linear scan by key equality.
//   - The bucket index is hash(key) mod capacity. Hashes are unsigned 64-bit values,
//     so the index is never negative.
//   - After each successful Put, if Len()/Cap() reaches MaxLoadFactor (0.75) the table
//     doubles and every entry is re-bucketed against the new capacity before Put returns.
//     Capacity therefore stays a power-of-two multiple of the initial capacity.
//
// Contract:
//
//   - Put fails with ErrDuplicateKey if the key is already bound (the map is unchanged),
//     and with ErrNullKey if the key is a nil pointer, channel or interface.
//   - Get and Remove fail with ErrKeyNotFound for unbound keys.
//   - ContainsKey, Len and Cap never fail.
//   - Clear drops every entry and keeps the current capacity.
//
// Hashing:
//
//   - By default keys are hashed with hash/maphash (Comparable) using a per-map seed.
//   - StringHasher (xxhash64) may be supplied through WithHasher for string keys;
//     it is stable across processes.
//
// Thread safety:
//
//   - Map is not safe for concurrent mutation. Serialize writers externally; any number of
//     readers may share a Map once writes have stopped.
//
// Example:
//
//	m, err := hashmap.New[string, int](hashmap.DefaultCapacity, hashmap.WithHasher(hashmap.StringHasher))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = m.Put("Union South", 1)
//	v, _ := m.Get("Union South")
package hashmap
