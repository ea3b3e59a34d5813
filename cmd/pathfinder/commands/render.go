package commands

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/pathfinder/campus"
)

// renderer writes query results; headings are styled when the output supports it.
type renderer struct {
	w       io.Writer
	heading lipgloss.Style
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &renderer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99")),
	}
}

func (r *renderer) route(from, to string, route campus.Route) {
	if route.Empty() {
		fmt.Fprintf(r.w, "No path found between %s and %s.\n", from, to)
		return
	}

	fmt.Fprintln(r.w, r.heading.Render(fmt.Sprintf("Shortest path from %s to %s:", from, to)))
	var total float64
	for i, seg := range route.Segments {
		seconds := roundCents(seg)
		total += seconds
		fmt.Fprintf(r.w, "%-40s to %-40s - %6.2f seconds\n", route.Nodes[i], route.Nodes[i+1], seconds)
	}
	fmt.Fprintf(r.w, "Total walking time: %s seconds.\n", formatSeconds(roundCents(total)))
}

func (r *renderer) stats(st campus.Statistics, regions int) {
	fmt.Fprintln(r.w, r.heading.Render("Graph Statistics"))
	fmt.Fprintf(r.w, "Nodes: %d\n", st.Nodes)
	fmt.Fprintf(r.w, "Edges: %d\n", st.Edges)
	fmt.Fprintf(r.w, "Regions: %d\n", regions)
	fmt.Fprintf(r.w, "Total walking time: %s seconds.\n", formatSeconds(st.WalkingTime()))
}

func (r *renderer) reach(from string, hops []campus.Hop) {
	fmt.Fprintln(r.w, r.heading.Render(fmt.Sprintf("Reachable from %s:", from)))
	for _, h := range hops {
		fmt.Fprintf(r.w, "%3d  %s\n", h.Hops, h.Place)
	}
}

func roundCents(x float64) float64 { return math.Round(x*100) / 100 }

func formatSeconds(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }
