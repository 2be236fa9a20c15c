package memory

import (
	"sync"
	"time"

	"smart-travel-planner/internal/session"
	"smart-travel-planner/pkg/log"
)

// entry guards one user's record. The store map lock is held only to find or
// insert an entry, never across a read-modify-write.
type entry struct {
	mu  sync.Mutex
	rec session.Record
}

type implStore struct {
	mu           sync.RWMutex
	sessions     map[string]*entry
	historyLimit int
	now          func() time.Time
	l            log.Logger
}

// Option customizes the in-memory store.
type Option func(*implStore)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *implStore) { s.now = now }
}

// New creates an in-process session store. Sessions live for the process lifetime.
func New(historyLimit int, l log.Logger, opts ...Option) session.Store {
	if historyLimit <= 0 {
		historyLimit = session.DefaultHistoryLimit
	}
	s := &implStore{
		sessions:     make(map[string]*entry),
		historyLimit: historyLimit,
		now:          time.Now,
		l:            l,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
