package dfs

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashmap"
)

// frame is one node on the explicit DFS stack with its unexplored neighbors.
type frame[K comparable] struct {
	key   K
	depth int
	next  []K
}

// walker encapsulates mutable DFS state.
type walker[K comparable, W core.Weight] struct {
	graph Graph[K, W]
	opts  Options
	res   *Result[K]
}

// DFS performs depth-first search on g from start, or over the whole graph
// with WithFullTraversal (start is then ignored).
// Neighbors are explored in edge insertion order.
func DFS[K comparable, W core.Weight](g Graph[K, W], start K, opts ...Option) (*Result[K], error) {
	if isNilGraph(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNodeNotFound, start)
	}

	w, err := newWalker(g, o)
	if err != nil {
		return nil, err
	}
	if !o.FullTraversal {
		return w.res, w.traverse(start)
	}
	for _, k := range g.Nodes() {
		if w.res.Visited(k) {
			continue
		}
		if err = w.traverse(k); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// Components returns the weakly connected components of g.
// Each component lists its nodes in discovery order; components follow Nodes() order of their roots.
// Only WithContext is honored among opts.
func Components[K comparable, W core.Weight](g Graph[K, W], opts ...Option) ([][]K, error) {
	if isNilGraph(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.MaxDepth, o.Undirected = -1, true

	w, err := newWalker(g, o)
	if err != nil {
		return nil, err
	}
	var comps [][]K
	for _, k := range g.Nodes() {
		if w.res.Visited(k) {
			continue
		}
		from := len(w.res.Preorder)
		if err = w.traverse(k); err != nil {
			return nil, err
		}
		comps = append(comps, slices.Clip(w.res.Preorder[from:]))
	}

	return comps, nil
}

func newWalker[K comparable, W core.Weight](g Graph[K, W], o Options) (*walker[K, W], error) {
	depth, err := hashmap.New[K, int](hashmap.DefaultCapacity)
	if err != nil {
		return nil, err
	}
	parent, err := hashmap.New[K, K](hashmap.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	return &walker[K, W]{graph: g, opts: o, res: &Result[K]{depth: depth, parent: parent}}, nil
}

// traverse runs one DFS tree rooted at root.
func (w *walker[K, W]) traverse(root K) error {
	f, err := w.enter(root, 0)
	if err != nil {
		return err
	}
	stack := []*frame[K]{f}
	for len(stack) > 0 {
		if err = w.opts.Ctx.Err(); err != nil {
			return err
		}

		top := stack[len(stack)-1]
		if len(top.next) == 0 {
			stack = stack[:len(stack)-1]
			w.res.Order = append(w.res.Order, top.key)
			continue
		}
		nb := top.next[0]
		top.next = top.next[1:]
		if w.res.Visited(nb) {
			continue
		}
		if err = w.res.parent.Put(nb, top.key); err != nil {
			return err
		}
		if f, err = w.enter(nb, top.depth+1); err != nil {
			return err
		}
		stack = append(stack, f)
	}

	return nil
}

// enter marks key discovered and loads its neighbors unless the depth limit is reached.
func (w *walker[K, W]) enter(key K, depth int) (*frame[K], error) {
	if err := w.res.depth.Put(key, depth); err != nil {
		return nil, err
	}
	w.res.Preorder = append(w.res.Preorder, key)

	f := &frame[K]{key: key, depth: depth}
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return f, nil
	}
	nbs, err := w.neighbors(key)
	if err != nil {
		return nil, err
	}
	f.next = nbs

	return f, nil
}

func (w *walker[K, W]) neighbors(key K) ([]K, error) {
	out, err := w.graph.OutEdges(key)
	if err != nil {
		return nil, fmt.Errorf("dfs: out edges of %v: %w", key, err)
	}
	nbs := make([]K, 0, len(out))
	for _, e := range out {
		nbs = append(nbs, e.To())
	}
	if !w.opts.Undirected {
		return nbs, nil
	}

	in, err := w.graph.InEdges(key)
	if err != nil {
		return nil, fmt.Errorf("dfs: in edges of %v: %w", key, err)
	}
	for _, e := range in {
		nbs = append(nbs, e.From())
	}

	return nbs, nil
}

// isNilGraph catches both a nil interface and a typed nil pointer inside it.
func isNilGraph[K comparable, W core.Weight](g Graph[K, W]) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
