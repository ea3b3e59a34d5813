package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/hashmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start key is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the search never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Graph is the adjacency contract BFS walks. *core.Graph satisfies it.
type Graph[K comparable, W core.Weight] interface {
	ContainsNode(key K) bool
	OutEdges(key K) ([]*core.Edge[K, W], error)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Reachable is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background() and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence, start first.
//   - Depth(k): hop count from the start.
//   - Parent(k): the node k was first reached from.
//   - PathTo(k): the fewest-hops path from the start.
type Result[K comparable] struct {
	Order  []K
	depth  *hashmap.Map[K, int]
	parent *hashmap.Map[K, K]
}

// Depth returns the hop count of key and whether it was reached.
func (r *Result[K]) Depth(key K) (int, bool) {
	d, err := r.depth.Get(key)
	return d, err == nil
}

// Parent returns the node key was first reached from. The start has no parent.
func (r *Result[K]) Parent(key K) (K, bool) {
	p, err := r.parent.Get(key)
	return p, err == nil
}

// PathTo reconstructs the fewest-hops path from the start to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.depth.ContainsKey(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		prev, err := r.parent.Get(cur)
		if err != nil {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
