package usecase

import (
	"time"

	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/pkg/log"
)

const defaultQueryTimeout = 3 * time.Second

type implUseCase struct {
	docs         []knowledge.Document
	index        knowledge.Index
	queryTimeout time.Duration
	l            log.Logger
}

// New creates the retriever. index may be nil, in which case every query takes
// the keyword path.
func New(docs []knowledge.Document, index knowledge.Index, queryTimeout time.Duration, l log.Logger) knowledge.UseCase {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &implUseCase{
		docs:         docs,
		index:        index,
		queryTimeout: queryTimeout,
		l:            l,
	}
}
