// Package dfs implements depth-first search and weakly connected components
// over any graph exposing core.Graph's adjacency methods.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking,
//     recording pre-order, post-order, depth and parent of every reached node.
//     Supports cancellation, depth limiting, forest traversal and following
//     edges in both directions.
//   - Components: partitions the nodes into weakly connected components, each
//     listed in discovery order, components ordered by their first node.
//
// Why:
//
//   - A shortest-path query between two components always fails; Components
//     tells callers up front how many disconnected regions a data set has.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the explicit stack and bookkeeping.
//
// The traversal is iterative, so deep chains cannot overflow the goroutine stack.
package dfs
