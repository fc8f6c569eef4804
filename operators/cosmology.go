// SPDX-License-Identifier: MIT
// Package: spinfoam/operators
//
// cosmology.go - homogeneous-universe summary derived from node volumes.
//
// Contract:
//   - AverageVolume = mean VolumeOperator over all nodes.
//   - EnergyDensity = ħ·c / AverageVolume.
//   - Hubble = √(8πGρ/3); HubbleTime = 1/Hubble.

package operators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/quanta"
)

// CosmologyReport summarises the network as a homogeneous universe.
type CosmologyReport struct {
	AverageVolume float64 // m³
	EnergyDensity float64 // J/m³
	Hubble        float64 // 1/s
	HubbleTime    float64 // s
}

// Cosmology derives a CosmologyReport from g. Networks without nodes, or whose
// nodes all have valence < 4, return ErrDegenerateVolume.
func Cosmology(g *core.Graph) (CosmologyReport, error) {
	if g == nil {
		return CosmologyReport{}, fmt.Errorf("%s: %w", methodCosmology, ErrNilGraph)
	}

	nodes := g.Nodes()
	var total float64
	for i := range nodes {
		total += VolumeOperator(nodes[i])
	}
	if len(nodes) == 0 || total == 0 {
		return CosmologyReport{}, fmt.Errorf("%s: %d nodes: %w", methodCosmology, len(nodes), ErrDegenerateVolume)
	}

	avg := total / float64(len(nodes))
	rho := quanta.Hbar * quanta.C / avg
	hubble := math.Sqrt(8.0 * quanta.Pi * quanta.G * rho / 3.0)

	return CosmologyReport{
		AverageVolume: avg,
		EnergyDensity: rho,
		Hubble:        hubble,
		HubbleTime:    1.0 / hubble,
	}, nil
}
