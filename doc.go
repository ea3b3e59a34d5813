// Package pathfinder finds the fastest walking routes across a campus map.
//
// 🚀 What is pathfinder?
//
//	A small, generic routing toolkit plus a command-line front end:
//		• hashmap: chained hash table with load-factor resizing
//		• core:    directed weighted graph indexed by hashmap
//		• dijkstra: single-destination shortest path with per-leg weights
//		• bfs, dfs: hop-count reachability and connected regions
//		• campus:  DOT-like data ingestion and the routing service
//		• cmd/pathfinder: route, stats and reach commands
//
// Data files list one walkway per line:
//
//	"Memorial Union" -- "Science Hall" [seconds=105.8];
//
// Every walkway is stored as two directed edges, so routes work both ways.
//
// Quick ASCII example:
//
//	    A──2──B
//	    │     │
//	    1     3
//	    │     │
//	    C──1──D
//
//	dijkstra.ShortestPath(g, "A", "D") → [A C D], segments [1 1], cost 2
//
// See the examples directory and each package's Example functions for runnable code.
package pathfinder
