package dijkstra

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/pathfinder/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the start or end key is not a node of the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrPathNotFound indicates that both endpoints exist but the end is unreachable.
	ErrPathNotFound = errors.New("dijkstra: no path between nodes")

	// ErrNegativeWeight indicates that a negative or NaN edge weight was met during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative or NaN edge weight encountered")

	// ErrBadSettledCapacity indicates a non-positive settled-store capacity.
	ErrBadSettledCapacity = errors.New("dijkstra: settled capacity must be positive")
)

// Graph is the read-only adjacency contract the engine depends on.
// *core.Graph satisfies it; tests and alternative backends may provide their own.
type Graph[K comparable, W core.Weight] interface {
	// ContainsNode reports whether key is a node.
	ContainsNode(key K) bool

	// OutEdges lists the edges leaving key, in a stable order.
	OutEdges(key K) ([]*core.Edge[K, W], error)

	// GetEdge returns the weight of from→to.
	GetEdge(from, to K) (W, error)
}

// Path is the result of a shortest-path query.
//
// Nodes holds the keys from start to end inclusive, Segments the weight of each
// consecutive hop (len(Segments) == len(Nodes)-1), and Cost their sum.
// The zero Path is the "no path" result.
type Path[K comparable, W core.Weight] struct {
	Nodes    []K
	Segments []W
	Cost     W
}

// Empty reports whether p is the "no path" result.
func (p Path[K, W]) Empty() bool { return len(p.Nodes) == 0 }

// Options configures a query.
//
// Logger          – receives a debug record per query. Default discards.
// SettledCapacity – initial bucket count of the settled store. Default 32.
type Options struct {
	Logger          *slog.Logger
	SettledCapacity int
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithLogger sets the logger used for query diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSettledCapacity sizes the settled store up front, e.g. to the graph's node count.
// Panics with ErrBadSettledCapacity if n < 1.
func WithSettledCapacity(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadSettledCapacity.Error())
		}
		o.SettledCapacity = n
	}
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.DiscardHandler),
		SettledCapacity: 32,
	}
}
