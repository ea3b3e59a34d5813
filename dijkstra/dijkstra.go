// Package dijkstra implements Dijkstra's single-source, single-destination
// shortest-path search over any Graph.
//
// Notes on implementation choices:
//
//   - Search nodes live in a per-query arena (a slice); a search node's predecessor is an
//     index into that arena, or -1 for the start. Indices only point backwards, so every
//     chain is acyclic and the arena is released when the query returns.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring
//     stale entries when they are popped.
//   - The settled store is a hashmap.Map from node key to the arena index it was settled at.
//   - Equal costs pop in push order, so results are reproducible for a fixed insertion order.
//   - A negative weight met while relaxing aborts the query with ErrNegativeWeight.
package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashmap"
)

// noPred marks the start of a predecessor chain.
const noPred = -1

// Search computes the cheapest path from start to end.
//
// Returns:
//
//   - Path with Nodes, Segments and Cost on success.
//   - ErrNilGraph, ErrNodeNotFound (unknown start or end), ErrPathNotFound
//     (end unreachable), or ErrNegativeWeight (negative or NaN weight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the arena and the heap under lazy decrease-key.
func Search[K comparable, W core.Weight](g Graph[K, W], start, end K, opts ...Option) (Path[K, W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate
	if isNilGraph(g) {
		return Path[K, W]{}, ErrNilGraph
	}
	if !g.ContainsNode(start) {
		return Path[K, W]{}, fmt.Errorf("%w: start %v", ErrNodeNotFound, start)
	}
	if !g.ContainsNode(end) {
		return Path[K, W]{}, fmt.Errorf("%w: end %v", ErrNodeNotFound, end)
	}

	// 2) Initialize
	settled, err := hashmap.New[K, int](cfg.SettledCapacity)
	if err != nil {
		return Path[K, W]{}, err
	}
	r := &runner[K, W]{
		g:       g,
		end:     end,
		settled: settled,
	}
	r.push(start, 0, noPred)

	// 3) Relax loop / 4) unsuccessful termination
	last, err := r.process()
	if err != nil {
		cfg.Logger.Debug("shortest path search failed",
			"start", start, "end", end, "pushed", len(r.arena), "error", err)
		return Path[K, W]{}, err
	}

	// 5) Reconstruct
	nodes := r.reconstruct(last)
	segments, err := SegmentWeights(g, nodes)
	if err != nil {
		return Path[K, W]{}, err
	}
	cfg.Logger.Debug("shortest path found",
		"start", start, "end", end, "cost", r.arena[last].cost,
		"hops", len(segments), "settled", r.settled.Len(), "pushed", len(r.arena))

	return Path[K, W]{Nodes: nodes, Segments: segments, Cost: r.arena[last].cost}, nil
}

// ShortestPath is Search with the "no route" outcomes folded into the result:
// an unknown endpoint or an unreachable end yields the empty Path and a nil error.
// Any other failure is returned as is.
func ShortestPath[K comparable, W core.Weight](g Graph[K, W], start, end K, opts ...Option) (Path[K, W], error) {
	p, err := Search(g, start, end, opts...)
	if errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrPathNotFound) {
		return Path[K, W]{}, nil
	}

	return p, err
}

// ShortestPathData returns the keys along the cheapest path, start and end inclusive.
func ShortestPathData[K comparable, W core.Weight](g Graph[K, W], start, end K, opts ...Option) ([]K, error) {
	p, err := Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return p.Nodes, nil
}

// ShortestPathCost returns the total weight of the cheapest path.
func ShortestPathCost[K comparable, W core.Weight](g Graph[K, W], start, end K, opts ...Option) (W, error) {
	p, err := Search(g, start, end, opts...)
	if err != nil {
		var zero W
		return zero, err
	}

	return p.Cost, nil
}

// SegmentWeights looks up the weight of every consecutive pair of path.
// A path of length L yields L-1 weights; L < 2 yields an empty slice.
func SegmentWeights[K comparable, W core.Weight](g Graph[K, W], path []K) ([]W, error) {
	if isNilGraph(g) {
		return nil, ErrNilGraph
	}
	if len(path) < 2 {
		return []W{}, nil
	}
	weights := make([]W, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		w, err := g.GetEdge(path[i-1], path[i])
		if err != nil {
			return nil, fmt.Errorf("dijkstra: segment %d: %w", i-1, err)
		}
		weights = append(weights, w)
	}

	return weights, nil
}

// searchNode is one arena record: a node reached at cost via pred.
type searchNode[K comparable, W core.Weight] struct {
	key  K
	cost W
	pred int // arena index of the predecessor, or noPred
}

// runner holds the mutable state for a single query.
type runner[K comparable, W core.Weight] struct {
	g       Graph[K, W]
	end     K
	arena   []searchNode[K, W]
	pq      nodePQ[W]
	settled *hashmap.Map[K, int] // key → arena index it was settled at
}

// push appends a search node to the arena and queues it.
func (r *runner[K, W]) push(key K, cost W, pred int) {
	r.arena = append(r.arena, searchNode[K, W]{key: key, cost: cost, pred: pred})
	heap.Push(&r.pq, nodeItem[W]{node: len(r.arena) - 1, cost: cost})
}

// settledAt reports whether key is settled at a cost <= cost.
func (r *runner[K, W]) settledAt(key K, cost W) bool {
	i, err := r.settled.Get(key)
	return err == nil && r.arena[i].cost <= cost
}

// process pops search nodes until the end is settled. It returns the arena index of
// the end's search node, or ErrPathNotFound once the heap is exhausted.
func (r *runner[K, W]) process() (int, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[W])
		cur := r.arena[item.node]

		// stale entry superseded by a cheaper settlement
		if r.settledAt(cur.key, cur.cost) {
			continue
		}
		if r.settled.ContainsKey(cur.key) {
			// settled more expensively; only reachable when weights break the contract
			_, _ = r.settled.Remove(cur.key)
		}
		if err := r.settled.Put(cur.key, item.node); err != nil {
			return noPred, err
		}

		if cur.key == r.end {
			return item.node, nil
		}
		if err := r.relax(item.node); err != nil {
			return noPred, err
		}
	}

	return noPred, fmt.Errorf("%w: %v", ErrPathNotFound, r.end)
}

// relax pushes a search node for every successor that is not already settled
// at a cost <= the new cost.
func (r *runner[K, W]) relax(idx int) error {
	cur := r.arena[idx] // copy: push may grow the arena
	edges, err := r.g.OutEdges(cur.key)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %v: %w", cur.key, err)
	}

	for _, e := range edges {
		w := e.Weight()
		// also rejects NaN, which would never settle
		if !(w >= 0) {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From(), e.To(), w)
		}
		newCost := cur.cost + w
		if r.settledAt(e.To(), newCost) {
			continue
		}
		r.push(e.To(), newCost, idx)
	}

	return nil
}

// reconstruct walks predecessor indices from last back to the start.
func (r *runner[K, W]) reconstruct(last int) []K {
	var path []K
	for i := last; i != noPred; i = r.arena[i].pred {
		path = append(path, r.arena[i].key)
	}
	slices.Reverse(path)

	return path
}

// isNilGraph catches both a nil interface and a typed nil pointer inside it.
func isNilGraph[K comparable, W core.Weight](g Graph[K, W]) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// nodeItem is a heap entry: an arena index and the cost it was pushed with.
type nodeItem[W core.Weight] struct {
	node int
	cost W
}

// nodePQ is a min-heap of nodeItem ordered by cost, then by arena index.
type nodePQ[W core.Weight] []nodeItem[W]

// Len returns the number of items in the heap.
func (pq nodePQ[W]) Len() int { return len(pq) }

// Less orders by cost; equal costs fall back to push order.
func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].node < pq[j].node
}

// Swap swaps two elements in the heap.
func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a nodeItem. Called by heap.Push.
func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(nodeItem[W])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
