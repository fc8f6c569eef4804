// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinfoam/config"
)

var (
	configPath   string
	networkName  string
	finalName    string
	timeStep     float64
	steps        int
	spectrumSize int
	loopExpr     string
	storeEnabled bool
	storePath    string
	runID        string

	klogFlags *flag.FlagSet

	// cfg is resolved once per invocation in PersistentPreRunE.
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "spinfoam",
		Short: "Spin-network quantum geometry simulator",
		Long: `spinfoam builds canonical spin networks (tetrahedral, cubical, octahedral),
evaluates their amplitude, Regge action, Gauss constraint, Wilson loops,
volume and Hamiltonian, and evolves them in discrete time.

Without a subcommand it runs the full reference simulation.`,
		SilenceUsage:      true,
		PersistentPreRunE: resolveConfig,
		RunE:              runSimulate,
	}

	spectrumCmd = &cobra.Command{
		Use:   "spectrum",
		Short: "Print the area/volume spectrum table and area bar plot",
		RunE:  runSpectrum,
	}

	networkCmd = &cobra.Command{
		Use:   "network",
		Short: "Print a network's nodes, edges, Gauss check and Hamiltonian",
		RunE:  runNetwork,
	}

	evolveCmd = &cobra.Command{
		Use:   "evolve",
		Short: "Evolve a network and print its trajectory",
		RunE:  runEvolve,
	}

	loopCmd = &cobra.Command{
		Use:   "loop [expr]",
		Short: "Evaluate a Wilson loop, e.g. \"0 -> 1 -> 3 -> 2\"",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLoop,
	}

	transitionCmd = &cobra.Command{
		Use:   "transition",
		Short: "Transition amplitude and probability between --network and --final",
		RunE:  runTransition,
	}

	cosmologyCmd = &cobra.Command{
		Use:   "cosmology",
		Short: "Average node volume, energy density and Hubble parameter",
		RunE:  runCosmology,
	}

	runsCmd = &cobra.Command{
		Use:   "runs",
		Short: "List stored runs, or print the frames of --run",
		RunE:  runRuns,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default: search $SPINFOAM_CONFIG, ./spinfoam.yaml, XDG)")
	pf.StringVar(&networkName, "network", "", "initial network: tetrahedral | cubical | octahedral")
	pf.StringVar(&finalName, "final", "", "final network for transition amplitudes")
	pf.Float64Var(&timeStep, "dt", 0, "evolution time step in seconds (default one Planck time)")
	pf.IntVar(&steps, "steps", 0, "number of evolution steps")
	pf.IntVar(&spectrumSize, "spectrum-size", 0, "number of spectrum rows")
	pf.StringVar(&loopExpr, "loop", "", "Wilson loop expression")
	pf.BoolVar(&storeEnabled, "store", false, "persist evolution frames")
	pf.StringVar(&storePath, "store-path", "", "badger directory (empty: in-memory)")

	runsCmd.Flags().StringVar(&runID, "run", "", "run id whose frames to print")

	rootCmd.AddCommand(spectrumCmd, networkCmd, evolveCmd, loopCmd, transitionCmd, cosmologyCmd, runsCmd)
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, _ []string) error {
	var err error
	if configPath != "" {
		cfg, _, err = config.LoadFromPath(configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("network") {
		cfg.Network = networkName
	}
	if flags.Changed("final") {
		cfg.FinalNetwork = finalName
	}
	if flags.Changed("dt") {
		cfg.TimeStep = timeStep
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("spectrum-size") {
		cfg.SpectrumSize = spectrumSize
	}
	if flags.Changed("loop") {
		cfg.Loop = loopExpr
	}
	if flags.Changed("store") {
		cfg.Store.Enabled = storeEnabled
	}
	if flags.Changed("store-path") {
		cfg.Store.Path = storePath
		cfg.Store.Enabled = true
	}
	if !flags.Changed("v") && klogFlags != nil {
		_ = klogFlags.Set("v", strconv.Itoa(cfg.Verbosity))
	}

	return errors.Wrap(cfg.Validate(), "flags")
}
