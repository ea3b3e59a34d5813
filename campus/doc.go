// Package campus turns a DOT-like list of walkways into a routable campus map.
//
// Each connection line has the shape
//
//	"Memorial Union" -- "Science Hall" [seconds=105.8];
//
// and is stored as two directed edges of equal duration in a core.Graph keyed by
// place name. Lines without "--" are ignored; malformed connection lines are
// logged and skipped so a single bad line does not abort a load.
//
// Service answers three questions over the loaded map:
//   - ShortestPath: the fastest walk between two places (package dijkstra).
//   - Statistics: place count, edge count and total walking time.
//   - Reachable: every place reachable from a start, by hop count (package bfs).
package campus
