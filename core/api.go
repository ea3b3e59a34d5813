// File: api.go
// Role: Graph type, constructor and read-only counters.
// Policy:
//   - No algorithms here; counters are maintained incrementally by the mutators.

package core

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/hashmap"
)

// edgeHashMix is the odd multiplier used to combine endpoint hashes.
const edgeHashMix = 0x9e3779b97f4a7c15

// Graph is a directed, weighted graph keyed by K.
type Graph[K comparable, W Weight] struct {
	nodes *hashmap.Map[K, *Node[K, W]]
	edges *hashmap.Map[edgeKey[K], *Edge[K, W]]

	order       []K // node keys in insertion order
	totalWeight W   // sum of the weights of all current edges
}

// NewGraph creates an empty Graph.
//
// Errors:
//   - ErrBadOption if an option is invalid or WithKeyHasher was given a hasher for another key type.
//
// Complexity: O(capacity).
func NewGraph[K comparable, W Weight](opts ...GraphOption) (*Graph[K, W], error) {
	cfg := graphConfig{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var (
		nodeOpts []hashmap.Option[K]
		edgeOpts []hashmap.Option[edgeKey[K]]
	)
	if cfg.hasher != nil {
		h, ok := cfg.hasher.(hashmap.Hasher[K])
		if !ok {
			return nil, fmt.Errorf("%w: hasher type %T does not match key type", ErrBadOption, cfg.hasher)
		}
		nodeOpts = append(nodeOpts, hashmap.WithHasher(h))
		edgeOpts = append(edgeOpts, hashmap.WithHasher(func(k edgeKey[K]) uint64 {
			return h(k.from)*edgeHashMix ^ h(k.to)
		}))
	}

	nodes, err := hashmap.New[K, *Node[K, W]](cfg.capacity, nodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOption, err)
	}
	edges, err := hashmap.New[edgeKey[K], *Edge[K, W]](cfg.capacity, edgeOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOption, err)
	}

	return &Graph[K, W]{nodes: nodes, edges: edges}, nil
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[K, W]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of directed edges. O(1).
func (g *Graph[K, W]) EdgeCount() int { return g.edges.Len() }

// TotalWeight returns the sum of all edge weights. An undirected relation stored as
// two edges is counted twice. O(1).
func (g *Graph[K, W]) TotalWeight() W { return g.totalWeight }

// Stats returns node count, edge count and total weight in one snapshot.
func (g *Graph[K, W]) Stats() Stats[W] {
	return Stats[W]{
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		TotalWeight: g.totalWeight,
	}
}
