// SPDX-License-Identifier: MIT
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/evolve"
	"github.com/katalvlaran/spinfoam/matrix"
	"github.com/katalvlaran/spinfoam/operators"
	"github.com/katalvlaran/spinfoam/quanta"
	"github.com/katalvlaran/spinfoam/spectrum"
)

// DefaultPlotWidth is the bar length of the largest area in AreaPlot.
const DefaultPlotWidth = 50

// SecondsPerYear converts Hubble time to years (Julian year).
const SecondsPerYear = 3.15576e7

const barGlyph = "█"

// writer accumulates the first error of a sequence of writes.
type writer struct {
	w   io.Writer
	err error
}

func (p *writer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *writer) title(s string) {
	p.printf("\n%s\n", Styles.Title.Render("=== "+s+" ==="))
}

func (p *writer) section(s string) {
	p.printf("\n%s\n", Styles.Section.Render(s))
}

func formatComplex(z complex128) string {
	return fmt.Sprintf("%.6f %+.6fi", real(z), imag(z))
}

// Constants writes the fundamental constants banner.
func Constants(w io.Writer) error {
	p := &writer{w: w}
	p.title("FUNDAMENTAL CONSTANTS")
	p.printf("  Planck length: %.6e m\n", quanta.PlanckLength)
	p.printf("  Planck mass:   %.6e kg\n", quanta.PlanckMass)
	p.printf("  Planck time:   %.6e s\n", quanta.PlanckTime)
	p.printf("  Barbero-Immirzi parameter: γ = %.12f\n", quanta.Immirzi)

	return p.err
}

// Spectrum writes the spectrum table.
func Spectrum(w io.Writer, entries []spectrum.Entry) error {
	p := &writer{w: w}
	p.title("QUANTUM GEOMETRY SPECTRUM")
	p.printf("%s\n", Styles.Label.Render(fmt.Sprintf("%-4s %-7s %-14s %-14s %s", "n", "spin j", "area (m²)", "volume (m³)", "degeneracy")))
	for _, e := range entries {
		p.printf("%-4d %-7.1f %-14.6e %-14.6e %.0f\n", e.N, e.J, e.Area, e.Volume, e.Degeneracy)
	}

	return p.err
}

// AreaPlot writes one bar per entry, scaled so the largest area spans width glyphs.
func AreaPlot(w io.Writer, entries []spectrum.Entry, width int) error {
	p := &writer{w: w}
	p.title("AREA SPECTRUM")
	maxArea := spectrum.MaxArea(entries)
	for _, e := range entries {
		bars := 0
		if maxArea > 0 {
			bars = int(e.Area / maxArea * float64(width))
		}
		p.printf("n=%2d j=%4.1f: %s %.6e m²\n", e.N, e.J, Styles.Bar.Render(strings.Repeat(barGlyph, bars)), e.Area)
	}

	return p.err
}

// Network writes the configuration of g: totals, nodes, edges, per-node
// curvature and the Gauss check of every node.
func Network(ctx context.Context, w io.Writer, title string, g *core.Graph) error {
	field, err := operators.CurvatureField(ctx, g)
	if err != nil {
		return err
	}

	p := &writer{w: w}
	p.title(title)
	s := g.Stats()
	p.printf("Nodes: %d  Edges: %d  Faces: %d\n", s.Nodes, s.Edges, s.Faces)
	p.printf("Total amplitude: %s\n", formatComplex(s.Amplitude))
	p.printf("Regge action: %.6e\n", s.Action)
	p.printf("Action in Planck units: %.6f\n", s.Action/quanta.Hbar)

	p.section("Nodes")
	for _, n := range g.Nodes() {
		p.printf("Node %d: valence=%d, spin=%.2f, volume=%.6e m³\n", n.ID, n.Valence, n.JVal, operators.VolumeOperator(n))
	}

	p.section("Edges")
	for _, e := range g.Edges() {
		p.printf("Edge %d: %d -> %d, j=%.1f, length=%.6e m, area=%.6e m²\n", e.ID, e.Source, e.Target, e.J, e.Length, e.Area)
	}

	p.section("Curvature")
	for id, f := range field {
		p.printf("Node %d: F=%s\n", id, formatComplex(f))
	}

	p.section("Gauss constraint")
	for id := 0; id < s.Nodes; id++ {
		ok, err := operators.CheckGaussConstraint(g, id)
		if err != nil {
			return err
		}
		verdict := Styles.Violated.Render("VIOLATED")
		if ok {
			verdict = Styles.OK.Render("SATISFIED")
		}
		p.printf("Node %d: %s\n", id, verdict)
	}

	return p.err
}

// Transition writes the transition amplitude between two networks and its
// probability |T|².
func Transition(w io.Writer, initial, final *core.Graph) error {
	p := &writer{w: w}
	p.title("TRANSITION AMPLITUDE")
	p.printf("Transition amplitude: %s\n", formatComplex(operators.TransitionAmplitude(initial, final)))
	p.printf("Probability: %.6e\n", operators.TransitionProbability(initial, final))

	return p.err
}

// Hamiltonian writes a Hamiltonian constraint value.
func Hamiltonian(w io.Writer, h complex128) error {
	p := &writer{w: w}
	p.title("HAMILTONIAN CONSTRAINT")
	p.printf("Hamiltonian constraint value: %s\n", formatComplex(h))

	return p.err
}

// Wilson writes a Wilson loop trace together with its edge sequence.
func Wilson(w io.Writer, expr string, trace complex128) error {
	p := &writer{w: w}
	p.title("WILSON LOOP")
	p.printf("Loop: %s\n", Styles.Muted.Render(expr))
	p.printf("Wilson loop trace: %s\n", formatComplex(trace))

	return p.err
}

// Trajectory writes one line per frame.
func Trajectory(w io.Writer, t evolve.Trajectory, dt float64) error {
	p := &writer{w: w}
	p.title("TIME EVOLUTION")
	p.printf("Run: %s  dt=%.6e s\n", Styles.Muted.Render(t.RunID), dt)
	for _, f := range t.Frames {
		p.printf("step %3d: amplitude=%s action=%.6e H=%s\n", f.Step, formatComplex(f.Amplitude), f.Action, formatComplex(f.Hamiltonian))
	}

	return p.err
}

// Cosmology writes the cosmology summary.
func Cosmology(w io.Writer, rep operators.CosmologyReport) error {
	p := &writer{w: w}
	p.title("QUANTUM COSMOLOGY")
	p.printf("Average volume per node: %.6e m³\n", rep.AverageVolume)
	p.printf("Energy density: %.6e J/m³\n", rep.EnergyDensity)
	p.printf("Hubble parameter: %.6e s⁻¹\n", rep.Hubble)
	p.printf("Hubble time: %.6e s (%.6e years)\n", rep.HubbleTime, rep.HubbleTime/SecondsPerYear)

	return p.err
}

// CosmologySkipped writes the cosmology heading with the reason no values
// could be derived.
func CosmologySkipped(w io.Writer, reason error) error {
	p := &writer{w: w}
	p.title("QUANTUM COSMOLOGY")
	p.printf("%s\n", Styles.Muted.Render("skipped: "+reason.Error()))

	return p.err
}

// Runs writes one line per stored evolution run.
func Runs(w io.Writer, runs []evolve.RunInfo) error {
	p := &writer{w: w}
	p.title("STORED RUNS")
	if len(runs) == 0 {
		p.printf("%s\n", Styles.Muted.Render("no runs"))
	}
	for _, r := range runs {
		p.printf("%s  %-12s steps=%-4d dt=%.6e s  %s\n", r.ID, r.Network, r.Steps, r.TimeStep, r.Started.Format(time.RFC3339))
	}

	return p.err
}

// Incidence writes the oriented node×edge incidence matrix and the Gauss
// residual it yields for every node.
func Incidence(w io.Writer, im *matrix.IncidenceMatrix) error {
	res, err := im.GaussResiduals()
	if err != nil {
		return err
	}
	p := &writer{w: w}
	p.section("Incidence (nodes × edges)")
	p.printf("%s", im.Mat.String())
	for id, r := range res {
		p.printf("Node %d: residual=%.6f\n", id, r)
	}

	return p.err
}
