// SPDX-License-Identifier: MIT
package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinfoam/builder"
	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/evolve"
	"github.com/katalvlaran/spinfoam/loopexpr"
	"github.com/katalvlaran/spinfoam/matrix"
	"github.com/katalvlaran/spinfoam/operators"
	"github.com/katalvlaran/spinfoam/report"
	"github.com/katalvlaran/spinfoam/spectrum"
	"github.com/katalvlaran/spinfoam/store"
)

var showIncidence bool

func init() {
	networkCmd.Flags().BoolVar(&showIncidence, "incidence", false, "also print the oriented incidence matrix")
}

func buildNetwork(name string) (*core.Graph, builder.NetworkName, error) {
	n, err := builder.ParseNetworkName(name)
	if err != nil {
		return nil, 0, err
	}
	g, err := builder.Network(n)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "build %s network", n)
	}
	klog.V(1).Infof("built %s network: %d nodes, %d edges", n, g.NodeCount(), g.EdgeCount())

	return g, n, nil
}

// runSimulate reproduces the full reference run: constants, spectrum, both
// networks, transition, Hamiltonian, Wilson loop, evolution and cosmology.
func runSimulate(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if err := report.Constants(w); err != nil {
		return err
	}
	if err := writeSpectrum(w); err != nil {
		return err
	}

	initial, initialName, err := buildNetwork(cfg.Network)
	if err != nil {
		return err
	}
	if err = report.Network(cmd.Context(), w, titleFor(initialName), initial); err != nil {
		return err
	}
	final, finalName, err := buildNetwork(cfg.FinalNetwork)
	if err != nil {
		return err
	}
	if err = report.Network(cmd.Context(), w, titleFor(finalName), final); err != nil {
		return err
	}

	if err = report.Transition(w, initial, final); err != nil {
		return err
	}
	if err = report.Hamiltonian(w, operators.HamiltonianConstraint(initial)); err != nil {
		return err
	}
	if err = writeWilson(w, initial, cfg.Loop); err != nil {
		return err
	}
	if err = writeEvolution(cmd, initial, initialName); err != nil {
		return err
	}

	return writeCosmology(w, initial)
}

func runSpectrum(cmd *cobra.Command, _ []string) error {
	return writeSpectrum(cmd.OutOrStdout())
}

func runNetwork(cmd *cobra.Command, _ []string) error {
	g, n, err := buildNetwork(cfg.Network)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if err = report.Network(cmd.Context(), w, titleFor(n), g); err != nil {
		return err
	}
	if err = report.Hamiltonian(w, operators.HamiltonianConstraint(g)); err != nil {
		return err
	}
	if !showIncidence {
		return nil
	}
	im, err := matrix.Incidence(g)
	if err != nil {
		return errors.Wrap(err, "incidence")
	}

	return report.Incidence(w, im)
}

func runEvolve(cmd *cobra.Command, _ []string) error {
	g, n, err := buildNetwork(cfg.Network)
	if err != nil {
		return err
	}

	return writeEvolution(cmd, g, n)
}

func runLoop(cmd *cobra.Command, args []string) error {
	expr := cfg.Loop
	if len(args) == 1 {
		expr = args[0]
	}
	g, _, err := buildNetwork(cfg.Network)
	if err != nil {
		return err
	}

	return writeWilson(cmd.OutOrStdout(), g, expr)
}

func runTransition(cmd *cobra.Command, _ []string) error {
	initial, _, err := buildNetwork(cfg.Network)
	if err != nil {
		return err
	}
	final, _, err := buildNetwork(cfg.FinalNetwork)
	if err != nil {
		return err
	}

	return report.Transition(cmd.OutOrStdout(), initial, final)
}

func runCosmology(cmd *cobra.Command, _ []string) error {
	g, _, err := buildNetwork(cfg.Network)
	if err != nil {
		return err
	}

	return writeCosmology(cmd.OutOrStdout(), g)
}

// runRuns lists stored runs, or the frames of one run when --run is set.
func runRuns(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	w := cmd.OutOrStdout()
	if runID == "" {
		runs, err := st.Runs()
		if err != nil {
			return err
		}
		return report.Runs(w, runs)
	}

	info, err := st.Run(runID)
	if err != nil {
		return err
	}
	frames, err := st.Frames(runID)
	if err != nil {
		return err
	}

	return report.Trajectory(w, evolve.Trajectory{RunID: info.ID, Frames: frames}, info.TimeStep)
}

func writeSpectrum(w io.Writer) error {
	entries, err := spectrum.Generate(cfg.SpectrumSize)
	if err != nil {
		return errors.Wrap(err, "spectrum")
	}
	if err = report.Spectrum(w, entries); err != nil {
		return err
	}

	return report.AreaPlot(w, entries, report.DefaultPlotWidth)
}

func writeWilson(w io.Writer, g *core.Graph, expr string) error {
	seq, err := loopexpr.Parse(expr)
	if err != nil {
		return errors.Wrapf(err, "loop %q", expr)
	}
	trace, err := operators.WilsonLoop(g, seq)
	if err != nil {
		return errors.Wrapf(err, "loop %q", expr)
	}

	return report.Wilson(w, loopexpr.Format(seq), trace)
}

// writeEvolution runs the engine on g, persisting frames when the store is enabled.
func writeEvolution(cmd *cobra.Command, g *core.Graph, n builder.NetworkName) error {
	opts := []evolve.Option{evolve.WithNetwork(n.String())}
	if cfg.Store.Enabled {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, evolve.WithStore(st))
	}

	traj, err := evolve.New(opts...).Run(cmd.Context(), g, cfg.TimeStep, cfg.Steps)
	if err != nil {
		return errors.Wrap(err, "evolve")
	}
	klog.V(1).Infof("run %s finished with %d frames", traj.RunID, len(traj.Frames))

	return report.Trajectory(cmd.OutOrStdout(), traj, cfg.TimeStep)
}

// writeCosmology reports cosmology for g. Networks whose nodes all carry
// zero volume are reported as skipped rather than failing the run.
func writeCosmology(w io.Writer, g *core.Graph) error {
	rep, err := operators.Cosmology(g)
	if errors.Is(err, operators.ErrDegenerateVolume) {
		klog.Warningf("cosmology skipped: %v", err)
		return report.CosmologySkipped(w, err)
	}
	if err != nil {
		return err
	}

	return report.Cosmology(w, rep)
}

func titleFor(n builder.NetworkName) string {
	switch n {
	case builder.NetworkTetrahedral:
		return "TETRAHEDRAL SPIN NETWORK"
	case builder.NetworkCubical:
		return "CUBIC SPIN NETWORK"
	default:
		return "OCTAHEDRAL SPIN NETWORK"
	}
}
