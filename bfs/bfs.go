// Package bfs provides breadth-first reachability over a directed graph,
// returning hop counts, parent links and visit order.
//
// Edge weights are ignored: BFS answers "what can be reached from here, and in
// how few hops", which complements the weighted answer from package dijkstra.
package bfs

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashmap"
)

// queueItem pairs a node key with its BFS depth.
type queueItem[K comparable] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable, W core.Weight] struct {
	graph Graph[K, W]
	opts  Options
	queue []queueItem[K]
	res   *Result[K]
}

// Reachable runs breadth-first search on g from start, following edge direction.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func Reachable[K comparable, W core.Weight](g Graph[K, W], start K, opts ...Option) (*Result[K], error) {
	if isNilGraph(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNodeNotFound, start)
	}

	depth, err := hashmap.New[K, int](hashmap.DefaultCapacity)
	if err != nil {
		return nil, err
	}
	parent, err := hashmap.New[K, K](hashmap.DefaultCapacity)
	if err != nil {
		return nil, err
	}
	w := &walker[K, W]{
		graph: g,
		opts:  o,
		res:   &Result[K]{depth: depth, parent: parent},
	}
	if err = w.enqueue(start, 0); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// enqueue marks key seen at depth d and adds it to the queue.
func (w *walker[K, W]) enqueue(key K, d int) error {
	if err := w.res.depth.Put(key, d); err != nil {
		return err
	}
	w.queue = append(w.queue, queueItem[K]{key: key, depth: d})

	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K, W]) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.key)

		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueSuccessors enqueues each unseen successor within MaxDepth.
func (w *walker[K, W]) enqueueSuccessors(item queueItem[K]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.OutEdges(item.key)
	if err != nil {
		return fmt.Errorf("bfs: failed to get edges of %v: %w", item.key, err)
	}
	for _, e := range edges {
		if w.res.depth.ContainsKey(e.To()) {
			continue
		}
		if err = w.enqueue(e.To(), next); err != nil {
			return err
		}
		if err = w.res.parent.Put(e.To(), item.key); err != nil {
			return err
		}
	}

	return nil
}

// isNilGraph catches both a nil interface and a typed nil pointer inside it.
func isNilGraph[K comparable, W core.Weight](g Graph[K, W]) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
