package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/pkg/log"
	"smart-travel-planner/pkg/voyage"
)

const (
	defaultBatchSize   = 16
	defaultConcurrency = 4
	breakerFailures    = 3
	breakerOpenTimeout = 30 * time.Second
)

type implIndex struct {
	embedder    voyage.IVoyage
	cb          *gobreaker.CircuitBreaker
	batchSize   int
	concurrency int
	l           log.Logger

	mu      sync.RWMutex
	docs    []knowledge.Document
	vectors [][]float32
}

// New creates an in-process cosine-similarity index. Index must be called
// before Search returns results.
func New(embedder voyage.IVoyage, l log.Logger) knowledge.Index {
	return &implIndex{
		embedder:    embedder,
		cb:          newBreaker(l),
		batchSize:   defaultBatchSize,
		concurrency: defaultConcurrency,
		l:           l,
	}
}

func newBreaker(l log.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "voyage-embedder",
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "internal.knowledge.repository.memory: breaker %s %s -> %s", name, from, to)
		},
	})
}
