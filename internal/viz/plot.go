package viz

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/diffsim/internal/diffusion"
)

// PlotProfile draws the concentration profile as a line plot over the grid.
// The y axis is C; the caption carries the title and the x extent.
func PlotProfile(w io.Writer, grid *diffusion.Grid, c diffusion.Field, title string) {
	if grid.Len() == 0 || len(c) == 0 {
		fmt.Fprintf(w, "%s: empty profile\n", title)
		return
	}

	coords := grid.Coords()
	caption := fmt.Sprintf("%s  (x: %g .. %g)", title, coords[0], coords[len(coords)-1])

	graph := asciigraph.Plot(c,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w, "C vs x")
}

// Reporter is the textual reporting collaborator: one line per step with the
// elapsed simulated time and a summary of the field. Implements sim.Observer.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) OnStep(c diffusion.Field, t float64) {
	fmt.Fprintf(r.w, "t=%.6f  n=%d  min=%.3f  max=%.3f  mass=%.3f\n",
		t, len(c), c.Min(), c.Max(), c.Sum())
}
