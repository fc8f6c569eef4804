// SPDX-License-Identifier: MIT
package evolve

import (
	"time"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/operators"
)

// Frame is the observable state of a network after a step.
type Frame struct {
	Step        int
	Amplitude   complex128
	Action      float64
	Hamiltonian complex128
}

// Trajectory is the ordered frame sequence of one run.
type Trajectory struct {
	RunID  string
	Frames []Frame
}

// Final returns the last frame, or the zero Frame for an empty trajectory.
func (t Trajectory) Final() Frame {
	if len(t.Frames) == 0 {
		return Frame{}
	}

	return t.Frames[len(t.Frames)-1]
}

// RunInfo describes a run to a Recorder before its first frame.
type RunInfo struct {
	ID       string
	Network  string
	TimeStep float64
	Steps    int
	Started  time.Time
}

// Recorder persists runs and their frames.
type Recorder interface {
	BeginRun(info RunInfo) error
	RecordFrame(runID string, f Frame) error
}

// snapshot captures the current frame of g.
func snapshot(step int, g *core.Graph) Frame {
	return Frame{
		Step:        step,
		Amplitude:   g.Amplitude(),
		Action:      g.Action(),
		Hamiltonian: operators.HamiltonianConstraint(g),
	}
}
