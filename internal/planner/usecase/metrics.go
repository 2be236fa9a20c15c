package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	degradationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "planner",
			Subsystem: "pipeline",
			Name:      "degradations_total",
			Help:      "Pipeline stages that fell back to a degraded value.",
		},
		[]string{"stage"},
	)

	planDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "planner",
			Subsystem: "pipeline",
			Name:      "plan_duration_seconds",
			Help:      "End-to-end PlanTravel duration.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"status"},
	)
)
