package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashmap"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start key does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Graph is the adjacency contract DFS walks. *core.Graph satisfies it.
type Graph[K comparable, W core.Weight] interface {
	Nodes() []K
	ContainsNode(key K) bool
	OutEdges(key K) ([]*core.Edge[K, W], error)
	InEdges(key K) ([]*core.Edge[K, W], error)
}

// Option configures DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, stops expansion at that depth.
	// 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every unvisited node in Nodes() order.
	FullTraversal bool

	// Undirected follows incoming edges as well as outgoing ones.
	Undirected bool
}

// DefaultOptions returns background context, no depth limit, single source, directed.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth; a negative limit disables it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFullTraversal covers every node, one DFS tree per unvisited root.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithUndirected treats every edge as traversable in both directions.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Preorder records nodes in discovery order.
	Preorder []K

	// Order records nodes in the order they finished (post-order).
	Order []K

	depth  *hashmap.Map[K, int]
	parent *hashmap.Map[K, K]
}

// Visited reports whether key was reached.
func (r *Result[K]) Visited(key K) bool { return r.depth.ContainsKey(key) }

// Depth returns the tree depth of key and whether it was reached.
func (r *Result[K]) Depth(key K) (int, bool) {
	d, err := r.depth.Get(key)
	return d, err == nil
}

// Parent returns the node key was discovered from. Roots have no parent.
func (r *Result[K]) Parent(key K) (K, bool) {
	p, err := r.parent.Get(key)
	return p, err == nil
}
