// Package trace renders a solver's recorded convergence history as a
// bracket-width-vs-iteration plot, for anything that reads the
// SolverState verbose/trace history off a completed solve.
//
// gonum/plot's own Save dispatches to the matching rendering backend
// (svg, raster, or pdf) by file extension, so no manual
// backend-selection logic lives here.
package trace

import (
	"fmt"
	"math"

	"github.com/pa-m/bracket"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderConvergence plots log10(bracket width) against iteration
// number from history and saves it to path. history is typically a
// SolverState.History populated by running a solver with
// Options.Verbose set. The output format is selected by path's
// extension (".svg", ".png", ".pdf", ...).
func RenderConvergence(history []bracket.HistoryPoint, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("trace: empty history")
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	p.Title.Text = "bracket convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "log10(width)"

	pts := make(plotter.XYs, len(history))
	for i, h := range history {
		width := h.B - h.A
		if width <= 0 {
			width = math.SmallestNonzeroFloat64
		}
		pts[i].X = float64(h.Step)
		pts[i].Y = math.Log10(width)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	line.Color = plotter.DefaultLineStyle.Color
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("trace: saving %s: %w", path, err)
	}
	return nil
}
