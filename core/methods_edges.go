// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries: InsertEdge/GetEdge/HasEdge/RemoveEdge/OutEdges/InEdges/Edges.
// Determinism:
//   - OutEdges/InEdges preserve insertion order; an overwrite keeps the edge's original position.
//   - Edges() walks nodes in insertion order, then each node's outgoing edges.

package core

import (
	"fmt"
	"slices"
)

// InsertEdge creates the directed edge from→to with weight w, or overwrites the
// weight of the existing edge for that pair.
//
// Errors:
//   - ErrNodeNotFound if either endpoint has not been inserted.
//
// Steps:
//  1. Resolve both endpoints.
//  2. If (from,to) is indexed, replace its weight and adjust the running total.
//  3. Otherwise index a new Edge and append it to from.out and to.in.
//
// Complexity: O(1) amortized.
func (g *Graph[K, W]) InsertEdge(from, to K, w W) error {
	src, err := g.Node(from)
	if err != nil {
		return err
	}
	dst, err := g.Node(to)
	if err != nil {
		return err
	}

	k := edgeKey[K]{from: from, to: to}
	if e, err := g.edges.Get(k); err == nil {
		g.totalWeight += w - e.weight
		e.weight = w
		return nil
	}

	e := NewEdge(from, to, w)
	if err = g.edges.Put(k, e); err != nil {
		return err
	}
	src.out = append(src.out, e)
	dst.in = append(dst.in, e)
	g.totalWeight += w

	return nil
}

// GetEdge returns the weight of from→to, or ErrEdgeNotFound.
func (g *Graph[K, W]) GetEdge(from, to K) (W, error) {
	e, err := g.edges.Get(edgeKey[K]{from: from, to: to})
	if err != nil {
		var zero W
		return zero, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return e.weight, nil
}

// HasEdge reports whether from→to exists.
func (g *Graph[K, W]) HasEdge(from, to K) bool {
	return g.edges.ContainsKey(edgeKey[K]{from: from, to: to})
}

// RemoveEdge deletes from→to, or returns ErrEdgeNotFound.
func (g *Graph[K, W]) RemoveEdge(from, to K) error {
	e, err := g.edges.Get(edgeKey[K]{from: from, to: to})
	if err != nil {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	g.removeEdge(e)

	return nil
}

// OutEdges returns the edges leaving key in insertion order.
// The slice and its edges belong to the Graph and must not be modified.
func (g *Graph[K, W]) OutEdges(key K) ([]*Edge[K, W], error) {
	n, err := g.Node(key)
	if err != nil {
		return nil, err
	}

	return slices.Clip(n.out), nil
}

// InEdges returns the edges entering key in insertion order.
// The slice and its edges belong to the Graph and must not be modified.
func (g *Graph[K, W]) InEdges(key K) ([]*Edge[K, W], error) {
	n, err := g.Node(key)
	if err != nil {
		return nil, err
	}

	return slices.Clip(n.in), nil
}

// Edges returns every edge, grouped by predecessor in node insertion order.
// Complexity: O(V + E).
func (g *Graph[K, W]) Edges() []*Edge[K, W] {
	all := make([]*Edge[K, W], 0, g.EdgeCount())
	for _, key := range g.order {
		n, err := g.nodes.Get(key)
		if err != nil {
			continue
		}
		all = append(all, n.out...)
	}

	return all
}

// removeEdge unlinks e from both endpoint lists and the edge index.
func (g *Graph[K, W]) removeEdge(e *Edge[K, W]) {
	if src, err := g.nodes.Get(e.from); err == nil {
		src.out = deleteEdge(src.out, e)
	}
	if dst, err := g.nodes.Get(e.to); err == nil {
		dst.in = deleteEdge(dst.in, e)
	}
	if _, err := g.edges.Remove(edgeKey[K]{from: e.from, to: e.to}); err == nil {
		g.totalWeight -= e.weight
	}
}

func deleteEdge[K comparable, W Weight](list []*Edge[K, W], e *Edge[K, W]) []*Edge[K, W] {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}

	return list
}
