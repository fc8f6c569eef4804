// SPDX-License-Identifier: MIT
package evolve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var (
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinfoam_evolve_steps_total",
		Help: "Evolution steps applied, by network",
	}, []string{"network"})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinfoam_evolve_runs_total",
		Help: "Evolution runs, by network and status",
	}, []string{"network", "status"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spinfoam_evolve_run_duration_seconds",
		Help:    "Wall time of Engine.Run",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})
)

var tracer = otel.Tracer("spinfoam.evolve")
