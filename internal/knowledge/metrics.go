package knowledge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RetrievalsTotal counts retrievals by the path that answered them.
var RetrievalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "knowledge",
		Name:      "retrievals_total",
		Help:      "Knowledge retrievals by answering path.",
	},
	[]string{"path"},
)
