// Package dijkstra_test validates the shortest-path engine: the lecture graph,
// error outcomes, the empty-result boundary, determinism and agreement with a
// brute-force reference on random graphs.
package dijkstra_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// buildLectureGraph constructs the eight-node directed example:
//
//	A→B(4) A→C(2) B→E(10) C→D(5) D→B(1) D→F(0) E→F(4) F→G(2) G→H(4)
func buildLectureGraph(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g, err := core.NewGraph[string, int]()
	require.NoError(t, err)
	for _, k := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		require.NoError(t, g.InsertNode(k))
	}
	edges := []struct {
		from, to string
		w        int
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "E", 10}, {"C", "D", 5}, {"D", "B", 1},
		{"D", "F", 0}, {"E", "F", 4}, {"F", "G", 2}, {"G", "H", 4},
	}
	for _, e := range edges {
		require.NoError(t, g.InsertEdge(e.from, e.to, e.w))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Lecture example
// ------------------------------------------------------------------------

func TestSearch_AtoE(t *testing.T) {
	g := buildLectureGraph(t)

	p, err := dijkstra.Search[string, int](g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E"}, p.Nodes)
	assert.Equal(t, []int{4, 10}, p.Segments)
	assert.Equal(t, 14, p.Cost)
}

func TestSearch_AtoG(t *testing.T) {
	g := buildLectureGraph(t)

	nodes, err := dijkstra.ShortestPathData[string, int](g, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "F", "G"}, nodes)

	cost, err := dijkstra.ShortestPathCost[string, int](g, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, 9, cost)
}

func TestSearch_NoPathAgainstDirection(t *testing.T) {
	g := buildLectureGraph(t)

	_, err := dijkstra.Search[string, int](g, "E", "C")
	assert.ErrorIs(t, err, dijkstra.ErrPathNotFound)

	_, err = dijkstra.ShortestPathCost[string, int](g, "E", "C")
	assert.ErrorIs(t, err, dijkstra.ErrPathNotFound)
}

// ------------------------------------------------------------------------
// 2. Validation and the empty-result boundary
// ------------------------------------------------------------------------

func TestSearch_UnknownEndpoints(t *testing.T) {
	g := buildLectureGraph(t)

	_, err := dijkstra.Search[string, int](g, "Nonexistent", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, err = dijkstra.Search[string, int](g, "A", "Nonexistent")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestShortestPath_EmptyResult(t *testing.T) {
	g := buildLectureGraph(t)

	unknown, err := dijkstra.ShortestPath[string, int](g, "Nonexistent", "B")
	require.NoError(t, err)
	unreachable, err := dijkstra.ShortestPath[string, int](g, "E", "C")
	require.NoError(t, err)

	for _, p := range []dijkstra.Path[string, int]{unknown, unreachable} {
		assert.True(t, p.Empty())
		assert.Empty(t, p.Nodes)
		assert.Empty(t, p.Segments)
		assert.Zero(t, p.Cost)
	}
	assert.Equal(t, unknown, unreachable)

	found, err := dijkstra.ShortestPath[string, int](g, "A", "E")
	require.NoError(t, err)
	assert.False(t, found.Empty())
}

func TestSearch_NilGraph(t *testing.T) {
	_, err := dijkstra.Search[string, int](nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	var typedNil *core.Graph[string, int]
	_, err = dijkstra.Search[string, int](typedNil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath[string, int](typedNil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph, "nil graph is not a no-path outcome")
}

func TestSearch_NegativeWeight(t *testing.T) {
	g, err := core.NewGraph[string, int]()
	require.NoError(t, err)
	require.NoError(t, g.InsertNode("A"))
	require.NoError(t, g.InsertNode("B"))
	require.NoError(t, g.InsertEdge("A", "B", -5))

	_, err = dijkstra.Search[string, int](g, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestSearch_NaNWeight(t *testing.T) {
	g, err := core.NewGraph[string, float64]()
	require.NoError(t, err)
	for _, k := range []string{"A", "B", "C"} {
		require.NoError(t, g.InsertNode(k))
	}
	require.NoError(t, g.InsertEdge("A", "B", math.NaN()))
	require.NoError(t, g.InsertEdge("B", "A", 1))

	done := make(chan error, 1)
	go func() {
		_, err := dijkstra.Search[string, float64](g, "A", "C")
		done <- err
	}()
	select {
	case err = <-done:
		assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	case <-time.After(3 * time.Second):
		t.Fatal("search over a NaN edge did not terminate")
	}
}

func TestWithSettledCapacity_Panics(t *testing.T) {
	opts := dijkstra.DefaultOptions()
	assert.PanicsWithValue(t, dijkstra.ErrBadSettledCapacity.Error(), func() {
		dijkstra.WithSettledCapacity(0)(&opts)
	})
	assert.Panics(t, func() {
		_, _ = dijkstra.Search[string, int](buildLectureGraph(t), "A", "B", dijkstra.WithSettledCapacity(-1))
	})

	dijkstra.WithSettledCapacity(8)(&opts)
	assert.Equal(t, 8, opts.SettledCapacity)
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

func TestSearch_SelfPath(t *testing.T) {
	g := buildLectureGraph(t)
	for _, k := range g.Nodes() {
		p, err := dijkstra.Search[string, int](g, k, k)
		require.NoError(t, err)
		assert.Equal(t, []string{k}, p.Nodes)
		assert.Empty(t, p.Segments)
		assert.Equal(t, 0, p.Cost)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	g := buildLectureGraph(t)
	first, err := dijkstra.Search[string, int](g, "A", "H")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := dijkstra.Search[string, int](g, "A", "H")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearch_TieBreakFollowsInsertionOrder(t *testing.T) {
	g, err := core.NewGraph[string, int]()
	require.NoError(t, err)
	for _, k := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.InsertNode(k))
	}
	require.NoError(t, g.InsertEdge("A", "B", 1))
	require.NoError(t, g.InsertEdge("A", "C", 1))
	require.NoError(t, g.InsertEdge("B", "D", 1))
	require.NoError(t, g.InsertEdge("C", "D", 1))

	p, err := dijkstra.Search[string, int](g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, p.Nodes)
}

func TestSearch_FloatWeights(t *testing.T) {
	g, err := core.NewGraph[string, float64]()
	require.NoError(t, err)
	for _, k := range []string{"Union", "Library", "Gym"} {
		require.NoError(t, g.InsertNode(k))
	}
	require.NoError(t, g.InsertEdge("Union", "Library", 1.25))
	require.NoError(t, g.InsertEdge("Library", "Gym", 2.5))
	require.NoError(t, g.InsertEdge("Union", "Gym", 4))

	p, err := dijkstra.Search[string, float64](g, "Union", "Gym")
	require.NoError(t, err)
	assert.Equal(t, []string{"Union", "Library", "Gym"}, p.Nodes)
	assert.InDelta(t, 3.75, p.Cost, 1e-9)
}

// floydWarshall is the brute-force reference: all-pairs distances, math.MaxInt for unreachable.
func floydWarshall(n int, w [][]int) [][]int {
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			switch {
			case i == j:
				d[i][j] = 0
			case w[i][j] >= 0:
				d[i][j] = w[i][j]
			default:
				d[i][j] = math.MaxInt
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k] == math.MaxInt || d[k][j] == math.MaxInt {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}

func TestSearch_MatchesReferenceOnRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 5; round++ {
		const n = 25
		w := make([][]int, n)
		for i := range w {
			w[i] = make([]int, n)
			for j := range w[i] {
				w[i][j] = -1
			}
		}

		g, err := core.NewGraph[int, int](core.WithCapacity(4))
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			require.NoError(t, g.InsertNode(i))
		}
		for e := 0; e < 3*n; e++ {
			u, v, weight := r.Intn(n), r.Intn(n), r.Intn(20)
			if u == v {
				continue
			}
			require.NoError(t, g.InsertEdge(u, v, weight))
			w[u][v] = weight // last write wins, as in the graph
		}
		ref := floydWarshall(n, w)

		for s := 0; s < n; s++ {
			for d := 0; d < n; d++ {
				p, err := dijkstra.Search[int, int](g, s, d)
				if ref[s][d] == math.MaxInt {
					require.ErrorIs(t, err, dijkstra.ErrPathNotFound, "round %d %d→%d", round, s, d)
					continue
				}
				require.NoError(t, err, "round %d %d→%d", round, s, d)
				require.Equal(t, ref[s][d], p.Cost, "round %d %d→%d", round, s, d)
				require.Equal(t, s, p.Nodes[0])
				require.Equal(t, d, p.Nodes[len(p.Nodes)-1])
				require.Len(t, p.Segments, len(p.Nodes)-1)

				sum := 0
				for i := 1; i < len(p.Nodes); i++ {
					ew, err := g.GetEdge(p.Nodes[i-1], p.Nodes[i])
					require.NoError(t, err)
					require.Equal(t, ew, p.Segments[i-1])
					sum += ew
				}
				require.Equal(t, p.Cost, sum)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Segment weights, alternative backends, logging
// ------------------------------------------------------------------------

func TestSegmentWeights(t *testing.T) {
	g := buildLectureGraph(t)

	ws, err := dijkstra.SegmentWeights[string, int](g, []string{"A", "C", "D", "F", "G"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 0, 2}, ws)

	ws, err = dijkstra.SegmentWeights[string, int](g, []string{"A"})
	require.NoError(t, err)
	assert.Empty(t, ws)

	_, err = dijkstra.SegmentWeights[string, int](g, []string{"A", "E"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// gridGraph is an implicit 1-D line 0→1→…→n-1 with unit weights; no core.Graph involved.
type gridGraph struct{ n int }

func (l gridGraph) ContainsNode(k int) bool { return k >= 0 && k < l.n }

func (l gridGraph) OutEdges(k int) ([]*core.Edge[int, uint], error) {
	if !l.ContainsNode(k) {
		return nil, core.ErrNodeNotFound
	}
	if k == l.n-1 {
		return nil, nil
	}
	return []*core.Edge[int, uint]{core.NewEdge[int, uint](k, k+1, 1)}, nil
}

func (l gridGraph) GetEdge(from, to int) (uint, error) {
	if l.ContainsNode(from) && to == from+1 && l.ContainsNode(to) {
		return 1, nil
	}
	return 0, core.ErrEdgeNotFound
}

func TestSearch_AlternativeBackend(t *testing.T) {
	p, err := dijkstra.Search[int, uint](gridGraph{n: 6}, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.Nodes)
	assert.Equal(t, uint(4), p.Cost)

	_, err = dijkstra.Search[int, uint](gridGraph{n: 6}, 5, 1)
	assert.True(t, errors.Is(err, dijkstra.ErrPathNotFound))
}

func TestSearch_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := buildLectureGraph(t)

	_, err := dijkstra.Search[string, int](g, "A", "G",
		dijkstra.WithLogger(logger), dijkstra.WithSettledCapacity(g.NodeCount()))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "shortest path found")
	assert.Contains(t, buf.String(), "cost=9")

	buf.Reset()
	_, err = dijkstra.Search[string, int](g, "E", "C", dijkstra.WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "shortest path search failed")
}

func BenchmarkSearch_Chain(b *testing.B) {
	g, _ := core.NewGraph[string, int]()
	const n = 2000
	for i := 0; i < n; i++ {
		_ = g.InsertNode(fmt.Sprintf("v%d", i))
	}
	for i := 1; i < n; i++ {
		_ = g.InsertEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search[string, int](g, "v0", fmt.Sprintf("v%d", n-1))
	}
}
