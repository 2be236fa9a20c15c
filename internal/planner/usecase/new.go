package usecase

import (
	"time"

	"smart-travel-planner/internal/agent"
	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/internal/planner"
	"smart-travel-planner/internal/preference"
	"smart-travel-planner/internal/session"
	"smart-travel-planner/pkg/log"
)

// Config holds orchestrator settings.
type Config struct {
	DefaultDestination string
	TopK               int
}

// Deps are the collaborators the orchestrator sequences.
type Deps struct {
	Store     session.Store
	Extractor *preference.Extractor
	Knowledge knowledge.UseCase
	Tools     *agent.ToolRegistry
	Generator itinerary.UseCase
	Logger    log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	store     session.Store
	extractor *preference.Extractor
	knowledge knowledge.UseCase
	tools     *agent.ToolRegistry
	generator itinerary.UseCase
	cfg       Config
	now       func() time.Time
	l         log.Logger
}

// New creates the planner orchestrator.
func New(deps Deps, cfg Config) planner.UseCase {
	if cfg.DefaultDestination == "" {
		cfg.DefaultDestination = DefaultDestination
	}
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		store:     deps.Store,
		extractor: deps.Extractor,
		knowledge: deps.Knowledge,
		tools:     deps.Tools,
		generator: deps.Generator,
		cfg:       cfg,
		now:       now,
		l:         deps.Logger,
	}
}
