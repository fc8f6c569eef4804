// Package spinfoam is a small laboratory for loop-quantum-gravity spin
// networks: build a canonical network, measure it, evolve it in discrete
// time and compare it with another.
//
// 🚀 What is spinfoam?
//
//	A Go module that brings together:
//		• Quanta: physical constants, area/volume eigenvalues, SU(2) elements
//		• Core: a sealed spin-network arena of nodes, spin-labelled edges and holonomies
//		• Builders: tetrahedral, cubical and octahedral networks
//		• Operators: amplitude, Regge action, Gauss check, Wilson loop,
//		  volume, Hamiltonian, curvature, transition amplitude, cosmology
//		• Evolution: holonomy phase updates, trajectories, persisted runs
//		• Spectrum: the area/volume table for j = 0, ½, 1, …
//
// ✨ Layout
//
//	quanta/    - constants and eigenvalue formulas
//	core/      - Graph, Node, Edge and the thread-safe arena
//	builder/   - canonical networks via functional options
//	operators/ - read-only observables over a sealed Graph
//	matrix/    - oriented incidence matrix and batch Gauss residuals
//	evolve/    - Step, Engine and trajectory frames
//	store/     - badger-backed run and frame persistence
//	spectrum/  - quantum geometry spectrum
//	loopexpr/  - "0 -> 1 -> 3 -> 2" Wilson-loop expressions
//	config/    - YAML run configuration
//	report/    - terminal rendering
//	cmd/spinfoam - the CLI
//
// Quick ASCII example (tetrahedral network, node ids):
//
//	      0
//	     /|\
//	    1-+-2
//	     \|/
//	      3
//
//	four 3-valent nodes, six edges carrying spins ½ … 3.
//
//	go install github.com/katalvlaran/spinfoam/cmd/spinfoam@latest
package spinfoam
