// SPDX-License-Identifier: MIT
// Package: spinfoam/evolve
//
// engine.go - multi-step runs with observation and recording.
//
// Contract:
//   - Run records frame 0 (initial state) and one frame per step.
//   - ctx is checked before every step; cancellation returns the frames so far
//     together with ctx.Err().
//   - Recorder errors abort the run.

package evolve

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/spinfoam/core"
)

// Engine runs repeated evolution steps. The zero value is not usable; call New.
type Engine struct {
	observer func(Frame)
	recorder Recorder
	network  string
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// defaultNetworkLabel labels metrics and run records when WithNetwork is unset.
const defaultNetworkLabel = "custom"

// New returns an Engine with the given options applied in order.
func New(opts ...Option) *Engine {
	e := &Engine{network: defaultNetworkLabel, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithObserver registers fn to receive every frame as it is produced.
func WithObserver(fn func(Frame)) Option {
	return func(e *Engine) { e.observer = fn }
}

// WithStore forwards runs and frames to r.
func WithStore(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithNetwork sets the network label used in metrics and run records.
func WithNetwork(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.network = name
		}
	}
}

// Run advances g by dt for steps steps.
func (e *Engine) Run(ctx context.Context, g *core.Graph, dt float64, steps int) (traj Trajectory, err error) {
	if g == nil {
		return Trajectory{}, fmt.Errorf("%s: %w", methodRun, ErrNilGraph)
	}
	if steps < 0 {
		return Trajectory{}, fmt.Errorf("%s: steps=%d: %w", methodRun, steps, ErrBadSteps)
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return Trajectory{}, fmt.Errorf("%s: dt=%v: %w", methodRun, dt, ErrBadTimeStep)
	}

	start := e.now()
	traj = Trajectory{RunID: uuid.NewString(), Frames: make([]Frame, 0, steps+1)}

	ctx, span := tracer.Start(ctx, "evolve.Run", trace.WithAttributes(
		attribute.String("run_id", traj.RunID),
		attribute.String("network", e.network),
		attribute.Float64("dt", dt),
		attribute.Int("steps", steps),
	))
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("frames", len(traj.Frames)))
		span.End()
		runsTotal.WithLabelValues(e.network, status).Inc()
		runDuration.Observe(e.now().Sub(start).Seconds())
	}()

	if e.recorder != nil {
		info := RunInfo{ID: traj.RunID, Network: e.network, TimeStep: dt, Steps: steps, Started: start}
		if err = e.recorder.BeginRun(info); err != nil {
			return traj, fmt.Errorf("%s: begin run %s: %w", methodRun, traj.RunID, err)
		}
	}
	if err = e.emit(&traj, snapshot(0, g)); err != nil {
		return traj, err
	}
	klog.V(2).Infof("evolve: run %s network=%s dt=%g steps=%d", traj.RunID, e.network, dt, steps)

	for s := 1; s <= steps; s++ {
		if err = ctx.Err(); err != nil {
			return traj, fmt.Errorf("%s: before step %d: %w", methodRun, s, err)
		}
		if err = e.step(ctx, g, dt, s); err != nil {
			return traj, err
		}
		if err = e.emit(&traj, snapshot(s, g)); err != nil {
			return traj, err
		}
	}
	final := traj.Final()
	klog.V(2).Infof("evolve: run %s done amplitude=%g action=%g", traj.RunID, final.Amplitude, final.Action)

	return traj, nil
}

func (e *Engine) step(ctx context.Context, g *core.Graph, dt float64, s int) error {
	_, span := tracer.Start(ctx, "evolve.Step", trace.WithAttributes(attribute.Int("step", s)))
	defer span.End()

	if err := Step(g, dt); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: step %d: %w", methodRun, s, err)
	}
	stepsTotal.WithLabelValues(e.network).Inc()

	return nil
}

func (e *Engine) emit(traj *Trajectory, f Frame) error {
	traj.Frames = append(traj.Frames, f)
	if e.observer != nil {
		e.observer(f)
	}
	if e.recorder != nil {
		if err := e.recorder.RecordFrame(traj.RunID, f); err != nil {
			return fmt.Errorf("%s: record frame %d: %w", methodRun, f.Step, err)
		}
	}

	return nil
}
