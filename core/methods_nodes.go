// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns keys in insertion order.

package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/hashmap"
)

// InsertNode creates a node for key.
//
// Errors:
//   - ErrNullKey if key is a nil pointer/interface.
//   - ErrDuplicateNode if key is already present (the existing node is untouched).
//
// Complexity: O(1) amortized.
func (g *Graph[K, W]) InsertNode(key K) error {
	err := g.nodes.Put(key, &Node[K, W]{key: key})
	switch {
	case err == nil:
		g.order = append(g.order, key)
		return nil
	case errors.Is(err, hashmap.ErrDuplicateKey):
		return fmt.Errorf("%w: %w", ErrDuplicateNode, err)
	case errors.Is(err, hashmap.ErrNullKey):
		return fmt.Errorf("%w: %w", ErrNullKey, err)
	default:
		return err
	}
}

// ContainsNode reports whether key identifies a node. O(1).
func (g *Graph[K, W]) ContainsNode(key K) bool {
	return g.nodes.ContainsKey(key)
}

// Node returns the node stored under key, or ErrNodeNotFound.
func (g *Graph[K, W]) Node(key K) (*Node[K, W], error) {
	n, err := g.nodes.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, key)
	}

	return n, nil
}

// Nodes returns every node key in insertion order. The slice is a copy.
func (g *Graph[K, W]) Nodes() []K {
	return slices.Clone(g.order)
}

// RemoveNode deletes the node and every edge incident to it.
//
// Complexity: O(deg(v)·deg(neighbor) + V).
func (g *Graph[K, W]) RemoveNode(key K) error {
	n, err := g.Node(key)
	if err != nil {
		return err
	}
	// copy first: removeEdge edits n.out / n.in in place
	for _, e := range slices.Clone(n.out) {
		g.removeEdge(e)
	}
	for _, e := range slices.Clone(n.in) {
		g.removeEdge(e)
	}
	if _, err = g.nodes.Remove(key); err != nil {
		return err
	}
	if i := slices.Index(g.order, key); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}

	return nil
}
