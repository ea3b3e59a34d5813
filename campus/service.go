// File: service.go
// Role: Campus routing facade: ingestion into a core.Graph, shortest routes, statistics, reachability, regions.
// Policy:
//   - Every walkway is stored as two directed edges with the same duration.
//   - Unknown or unreachable places yield the empty Route, never an error.

package campus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dfs"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/hashmap"
)

// Route is a shortest walk: places in order, the seconds of each leg, and the total.
type Route = dijkstra.Path[string, float64]

// Statistics summarizes the loaded data set.
type Statistics struct {
	Nodes       int
	Edges       int
	TotalWeight float64 // sum over directed edges; each walkway counts twice
}

// WalkingTime is the total walking time of all walkways: TotalWeight halved and rounded up.
func (s Statistics) WalkingTime() float64 {
	return math.Ceil(s.TotalWeight / 2)
}

// LoadReport counts what Load did with its input.
type LoadReport struct {
	Lines       int // lines read
	Connections int // walkways inserted
	Skipped     int // malformed connection lines
}

// MaxLineBytes bounds a single input line. Longer lines are drained and skipped.
const MaxLineBytes = 1 << 20

// Hop is one place reachable from a start, with its fewest-hops distance.
type Hop struct {
	Place string
	Hops  int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for ingestion warnings and query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCapacity sets the initial index capacity of the campus graph.
func WithCapacity(n int) Option {
	return func(s *Service) { s.capacity = n }
}

// Service owns one campus graph.
type Service struct {
	graph    *core.Graph[string, float64]
	logger   *slog.Logger
	capacity int
}

// NewService creates a Service with an empty graph.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		logger:   slog.New(slog.DiscardHandler),
		capacity: hashmap.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset discards all loaded data.
func (s *Service) Reset() error {
	g, err := core.NewGraph[string, float64](
		core.WithCapacity(s.capacity),
		core.WithKeyHasher(hashmap.StringHasher),
	)
	if err != nil {
		return err
	}
	s.graph = g

	return nil
}

// Graph exposes the underlying graph for read-only use.
func (s *Service) Graph() *core.Graph[string, float64] { return s.graph }

// LoadFile opens path and loads it with Load.
func (s *Service) LoadFile(ctx context.Context, path string) (LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadReport{}, fmt.Errorf("campus: open data file: %w", err)
	}
	defer f.Close()

	report, err := s.Load(ctx, f)
	if err != nil {
		return report, fmt.Errorf("campus: load %s: %w", path, err)
	}

	return report, nil
}

// Load reads DOT-like lines from r and inserts every walkway in both directions.
// Malformed connection lines and lines over MaxLineBytes are logged and skipped;
// the rest of the input is still loaded.
// Loading on top of existing data merges; a repeated walkway overwrites its duration.
//
// Load is not transactional: on a read error or cancellation the walkways inserted so far
// stay in the graph and the returned report counts them. Call Reset to discard them.
func (s *Service) Load(ctx context.Context, r io.Reader) (LoadReport, error) {
	var report LoadReport
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		line, tooLong, err := readLine(br, MaxLineBytes)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, err
		}
		report.Lines++
		if tooLong {
			report.Skipped++
			s.logger.WarnContext(ctx, "skipping over-long line", "line", report.Lines, "limit", MaxLineBytes)
			continue
		}

		c, err := ParseLine(line)
		switch {
		case errors.Is(err, ErrNotConnection):
			continue
		case err != nil:
			report.Skipped++
			s.logger.WarnContext(ctx, "skipping malformed line", "line", report.Lines, "error", err)
			continue
		}
		if err = s.insert(c); err != nil {
			return report, err
		}
		report.Connections++
	}

	s.logger.InfoContext(ctx, "campus data loaded",
		"lines", report.Lines, "connections", report.Connections, "skipped", report.Skipped,
		"nodes", s.graph.NodeCount(), "edges", s.graph.EdgeCount())

	return report, nil
}

// readLine returns the next line without its terminator. A line longer than limit is
// consumed in full but returned empty with tooLong set. io.EOF means no more lines.
func readLine(br *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// insert adds both places if missing and the walkway in both directions.
func (s *Service) insert(c Connection) error {
	for _, place := range []string{c.From, c.To} {
		if s.graph.ContainsNode(place) {
			continue
		}
		if err := s.graph.InsertNode(place); err != nil {
			return err
		}
	}
	if err := s.graph.InsertEdge(c.From, c.To, c.Seconds); err != nil {
		return err
	}

	return s.graph.InsertEdge(c.To, c.From, c.Seconds)
}

// ShortestPath returns the fastest walk from start to end, or the empty Route when either
// place is unknown or no walk connects them.
func (s *Service) ShortestPath(start, end string) (Route, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)

	return dijkstra.ShortestPath[string, float64](s.graph, start, end,
		dijkstra.WithLogger(s.logger),
		dijkstra.WithSettledCapacity(max(1, s.graph.NodeCount())),
	)
}

// Statistics reports node count, edge count and total weight.
func (s *Service) Statistics() Statistics {
	st := s.graph.Stats()

	return Statistics{Nodes: st.Nodes, Edges: st.Edges, TotalWeight: st.TotalWeight}
}

// Reachable lists the places reachable from start in visit order with their hop counts.
// maxHops == 0 means no limit.
func (s *Service) Reachable(ctx context.Context, start string, maxHops int) ([]Hop, error) {
	res, err := bfs.Reachable[string, float64](s.graph, strings.TrimSpace(start),
		bfs.WithContext(ctx), bfs.WithMaxDepth(maxHops))
	if err != nil {
		return nil, err
	}
	hops := make([]Hop, 0, len(res.Order))
	for _, place := range res.Order {
		d, _ := res.Depth(place)
		hops = append(hops, Hop{Place: place, Hops: d})
	}

	return hops, nil
}

// Regions groups places into walkable regions: within a region every place can reach
// every other. Regions are listed in load order of their first place.
func (s *Service) Regions(ctx context.Context) ([][]string, error) {
	return dfs.Components[string, float64](s.graph, dfs.WithContext(ctx))
}
