// Package dijkstra provides Dijkstra's shortest-path search between two nodes
// of a graph with non-negative edge weights.
//
// Overview:
//
//   - The engine depends only on the Graph interface (ContainsNode, OutEdges, GetEdge),
//     which *core.Graph satisfies. Any other backend implementing it works too.
//   - One query walks through five stages: validate both endpoints, seed a min-heap with
//     the start at cost 0, pop-and-relax until the end is settled, fail with
//     ErrPathNotFound when the heap runs dry, and rebuild the path from predecessor links.
//   - The total cost is the cost recorded on the end's search node; Segments are looked up
//     with GetEdge for every consecutive pair of the path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap holds stale entries under lazy decrease-key, and the
//     settled store bounds re-expansion to one per node.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil graph (also a typed nil pointer).
//   - ErrNodeNotFound:   start or end is not a node.
//   - ErrPathNotFound:   no directed route from start to end.
//   - ErrNegativeWeight: a negative weight was met while relaxing.
//
// API reference:
//
//	Search(g, start, end, opts...)           (Path, error)
//	ShortestPath(g, start, end, opts...)     (Path, error) // empty Path for unknown/unreachable
//	ShortestPathData(g, start, end, opts...) ([]K, error)
//	ShortestPathCost(g, start, end, opts...) (W, error)
//	SegmentWeights(g, path)                  ([]W, error)
//
// Options:
//
//   - WithLogger(*slog.Logger):   debug record per query (default: discarded).
//   - WithSettledCapacity(int):   initial size of the settled store.
//
// Thread safety:
//
//   - Every query owns its state. Concurrent queries on a graph nobody mutates are safe;
//     mutation during a query is not.
package dijkstra
