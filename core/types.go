package core

import (
	"errors"

	"github.com/katalvlaran/pathfinder/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNullKey indicates that a nil key was used to create a node.
	ErrNullKey = errors.New("core: node key is nil")

	// ErrDuplicateNode indicates that InsertNode was called with an existing key.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadOption indicates an invalid GraphOption.
	ErrBadOption = errors.New("core: invalid graph option")
)

// Weight is the set of numeric types usable as edge weights.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Node is a graph vertex. Its key never changes after insertion.
type Node[K comparable, W Weight] struct {
	key K
	out []*Edge[K, W] // edges leaving this node, insertion order
	in  []*Edge[K, W] // edges entering this node, insertion order
}

// Key returns the node's identity.
func (n *Node[K, W]) Key() K { return n.key }

// Edge is a directed, weighted connection from→to.
//
// Fields are read through accessors so the Graph's running total and adjacency lists
// cannot drift from the edges; use InsertEdge to change a weight.
type Edge[K comparable, W Weight] struct {
	from   K
	to     K
	weight W
}

// NewEdge builds a detached Edge, for adjacency backends other than Graph.
// Inserting into a Graph goes through InsertEdge.
func NewEdge[K comparable, W Weight](from, to K, w W) *Edge[K, W] {
	return &Edge[K, W]{from: from, to: to, weight: w}
}

// From returns the predecessor node key.
func (e *Edge[K, W]) From() K { return e.from }

// To returns the successor node key.
func (e *Edge[K, W]) To() K { return e.to }

// Weight returns the traversal cost.
func (e *Edge[K, W]) Weight() W { return e.weight }

// edgeKey identifies an edge by its ordered endpoint pair.
type edgeKey[K comparable] struct {
	from, to K
}

// Stats is a snapshot of graph size.
type Stats[W Weight] struct {
	Nodes       int
	Edges       int
	TotalWeight W
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	capacity int
	hasher   any // hashmap.Hasher[K], checked in NewGraph
	err      error
}

// WithCapacity sets the initial bucket count of the node and edge indexes.
// n < 1 makes NewGraph fail with ErrBadOption.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n < 1 {
			c.err = errors.Join(ErrBadOption, hashmap.ErrBadCapacity)
			return
		}
		c.capacity = n
	}
}

// WithKeyHasher sets the hasher used for node keys.
// The hasher's key type must match the Graph's K, otherwise NewGraph fails with ErrBadOption.
func WithKeyHasher[K comparable](h hashmap.Hasher[K]) GraphOption {
	return func(c *graphConfig) {
		if h != nil {
			c.hasher = h
		}
	}
}
