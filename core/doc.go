// Package core provides the in-memory directed, weighted Graph used by the
// path-finding packages.
//
// The Graph G = (V,E) is generic over the node key K (any comparable type,
// typically a place name) and the edge weight W (any integer or floating-point type):
//
//   - Nodes are identified by their key; a key may be inserted once.
//     A second InsertNode(k) returns ErrDuplicateNode.
//   - Edges are directed and identified by the ordered pair (from, to).
//     At most one edge exists per pair; re-inserting overwrites the weight
//     (last write wins). Undirected relations are modelled by inserting both
//     A→B and B→A.
//   - Each node keeps its outgoing and incoming edges in insertion order, so
//     adjacency enumeration is deterministic for a fixed sequence of inserts.
//   - The node index is a hashmap.Map[K, *Node]; edge identity is a second
//     hashmap keyed by the (from, to) pair, giving O(1) GetEdge.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n int)
//	    Initial bucket count of both indexes (default hashmap.DefaultCapacity).
//
//	– WithKeyHasher(h hashmap.Hasher[K])
//	    Hasher for node keys, e.g. hashmap.StringHasher for string keys.
//	    The edge index combines two node hashes.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(key K) error            // O(1) amortized
//	ContainsNode(key K) bool           // O(1)
//	RemoveNode(key K) error            // O(deg(v) + V)
//
//	// Edge lifecycle
//	InsertEdge(from, to K, w W) error  // O(1) amortized
//	GetEdge(from, to K) (W, error)     // O(1)
//	RemoveEdge(from, to K) error       // O(deg(from) + deg(to))
//
//	// Adjacency & introspection
//	OutEdges(key K) ([]*Edge, error)   // O(1), insertion order
//	InEdges(key K) ([]*Edge, error)    // O(1), insertion order
//	Nodes() []K                        // O(V), insertion order
//	NodeCount(), EdgeCount(), TotalWeight(), Stats()
//
// Errors:
//
//	ErrNullKey        - node key is a nil pointer/interface.
//	ErrDuplicateNode  - node key already present.
//	ErrNodeNotFound   - endpoint or node absent.
//	ErrEdgeNotFound   - no edge for the ordered pair.
//	ErrBadOption      - invalid GraphOption.
//
// Thread safety:
//
//	Graph has no internal locking. Build it in one exclusive write phase; after
//	that any number of goroutines may query it concurrently as long as nobody
//	mutates it.
package core
