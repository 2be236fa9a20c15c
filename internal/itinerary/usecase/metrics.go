package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stageOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "itinerary",
		Name:      "stage_outcomes_total",
		Help:      "Generation stage outcomes by stage and kind.",
	},
	[]string{"stage", "kind"},
)
