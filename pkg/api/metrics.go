package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sokoengine_solve_requests_total",
		Help: "Solve requests by algorithm and outcome status",
	}, []string{"algorithm", "status"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sokoengine_solve_duration_seconds",
		Help:    "Wall-clock time spent inside the solver",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
	}, []string{"algorithm"})

	solveIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sokoengine_solve_iterations",
		Help:    "Node expansions consumed per solve",
		Buckets: prometheus.ExponentialBuckets(100, 4, 8),
	}, []string{"algorithm"})

	generateRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sokoengine_generate_requests_total",
		Help: "Board generation requests",
	})
)
