// SPDX-License-Identifier: MIT
// Package: spinfoam/spectrum
//
// Package spectrum tabulates the area and volume eigenvalues of the first
// half-integer spins.
//
// Contract:
//   - Generate(maxN) returns maxN entries for n = 0..maxN-1 with j = n/2.
//   - Area = AreaEigenvalue(j); Volume = VolumeEigenvalue(j, j, j); Degeneracy = 2j+1.
//   - maxN = 0 yields an empty, non-nil slice; maxN < 0 returns ErrBadSize.
//
// Complexity: O(maxN) time and space.
package spectrum

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spinfoam/quanta"
)

// ErrBadSize indicates a negative spectrum size.
var ErrBadSize = errors.New("spectrum: negative size")

// Entry is one row of the quantum-geometry spectrum.
type Entry struct {
	N          int     // quantum number
	J          float64 // spin, N/2
	Area       float64 // m²
	Volume     float64 // m³
	Degeneracy float64 // 2J+1
}

// Generate returns the first maxN spectrum entries.
func Generate(maxN int) ([]Entry, error) {
	if maxN < 0 {
		return nil, fmt.Errorf("Generate(%d): %w", maxN, ErrBadSize)
	}

	out := make([]Entry, maxN)
	for n := range out {
		j := 0.5 * float64(n)
		out[n] = Entry{
			N:          n,
			J:          j,
			Area:       quanta.MustAreaEigenvalue(j),
			Volume:     quanta.VolumeEigenvalue(j, j, j),
			Degeneracy: 2.0*j + 1.0,
		}
	}

	return out, nil
}

// MaxArea returns the largest Area in entries, or 0 when entries is empty.
// Areas are non-decreasing in N, so this is the last entry's area.
func MaxArea(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}

	return entries[len(entries)-1].Area
}
