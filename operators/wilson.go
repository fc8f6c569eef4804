// SPDX-License-Identifier: MIT
package operators

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/spinfoam/core"
)

// WilsonLoop multiplies the holonomies of seq in order and returns the trace
// 0.5·(P + conj(P)). Ids may repeat and need not form a closed path. An empty
// sequence returns 1+0i. Any id outside [0, EdgeCount) yields ErrOutOfRangeEdgeID.
func WilsonLoop(g *core.Graph, seq []int) (complex128, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodWilsonLoop, ErrNilGraph)
	}

	hs := g.Holonomies()
	product := complex(1, 0)
	for pos, id := range seq {
		if id < 0 || id >= len(hs) {
			return 0, fmt.Errorf("%s: seq[%d]=%d: %w", methodWilsonLoop, pos, id, core.ErrOutOfRangeEdgeID)
		}
		product *= hs[id]
	}

	return 0.5 * (product + cmplx.Conj(product)), nil
}
