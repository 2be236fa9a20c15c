// Package app wires the planner pipeline from configuration. The HTTP server
// and the CLI both build on it.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"smart-travel-planner/config"
	"smart-travel-planner/internal/agent"
	"smart-travel-planner/internal/agent/tools"
	"smart-travel-planner/internal/itinerary"
	itineraryUC "smart-travel-planner/internal/itinerary/usecase"
	"smart-travel-planner/internal/knowledge"
	memoryIndex "smart-travel-planner/internal/knowledge/repository/memory"
	qdrantIndex "smart-travel-planner/internal/knowledge/repository/qdrant"
	knowledgeUC "smart-travel-planner/internal/knowledge/usecase"
	"smart-travel-planner/internal/planner"
	plannerUC "smart-travel-planner/internal/planner/usecase"
	"smart-travel-planner/internal/preference"
	"smart-travel-planner/internal/session"
	memorySession "smart-travel-planner/internal/session/repository/memory"
	redisSession "smart-travel-planner/internal/session/repository/redis"
	"smart-travel-planner/pkg/datemath"
	"smart-travel-planner/pkg/llmprovider"
	"smart-travel-planner/pkg/log"
	pkgQdrant "smart-travel-planner/pkg/qdrant"
	"smart-travel-planner/pkg/voyage"
)

// App is the assembled pipeline.
type App struct {
	Planner   planner.UseCase
	Tools     *agent.ToolRegistry
	Knowledge knowledge.UseCase
	Generator itinerary.UseCase

	// Index is nil when no embedder is configured; retrieval then stays on
	// the keyword path.
	Index knowledge.Index
	Docs  []knowledge.Document

	// Ready reports whether the session backend is reachable.
	Ready func(ctx context.Context) error

	closers []func() error
	l       log.Logger
}

// Options adjust Build for one-shot commands.
type Options struct {
	// RecreateIndex drops and rebuilds the vector collection.
	RecreateIndex bool
}

// Build assembles every component. Optional capabilities that are missing or
// fail to start are logged and replaced by their fallbacks; only a bad corpus
// or timezone is fatal.
func Build(ctx context.Context, cfg *config.Config, l log.Logger, opts Options) (*App, error) {
	a := &App{l: l}

	dates, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		return nil, fmt.Errorf("planner timezone: %w", err)
	}

	a.Docs, err = knowledge.LoadCorpus(cfg.Knowledge.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("knowledge corpus: %w", err)
	}

	store := a.buildSessionStore(ctx, cfg)
	a.Index = a.buildIndex(ctx, cfg, opts)
	a.Knowledge = knowledgeUC.New(a.Docs, a.Index, cfg.Knowledge.QueryTimeout, l)

	a.Tools = agent.NewToolRegistry(cfg.Tools.Timeout, l)
	a.Tools.Register(tools.NewWeatherTool())
	a.Tools.Register(tools.NewCurrencyTool())
	a.Tools.Register(tools.NewBookingTool())

	a.Generator, err = itineraryUC.New(ctx, a.buildChatModel(ctx, cfg), itineraryUC.Config{
		StageTimeout: cfg.Planner.GenerationTimeout,
		CacheTTL:     cfg.Planner.AnalysisCacheTTL,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("itinerary generator: %w", err)
	}

	a.Planner = plannerUC.New(plannerUC.Deps{
		Store:     store,
		Extractor: preference.New(dates),
		Knowledge: a.Knowledge,
		Tools:     a.Tools,
		Generator: a.Generator,
		Logger:    l,
	}, plannerUC.Config{
		DefaultDestination: cfg.Planner.DefaultDestination,
		TopK:               cfg.Knowledge.TopK,
	})

	return a, nil
}

// IndexCorpus embeds the corpus into the configured index.
func (a *App) IndexCorpus(ctx context.Context) error {
	if a.Index == nil {
		return errors.New("no vector index configured: set voyage.api_key")
	}
	return a.Index.Index(ctx, a.Docs)
}

// WarmIndex indexes the corpus unless a persistent index already holds it.
// It reports whether embedding actually ran.
func (a *App) WarmIndex(ctx context.Context) (bool, error) {
	if p, ok := a.Index.(knowledge.Persistent); ok {
		done, err := p.Indexed(ctx, len(a.Docs))
		if err != nil {
			a.l.Warnf(ctx, "Index check failed, re-indexing: %v", err)
		} else if done {
			return false, nil
		}
	}
	if err := a.IndexCorpus(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Close releases backend connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func (a *App) buildSessionStore(ctx context.Context, cfg *config.Config) session.Store {
	if cfg.Redis.URL != "" {
		client, err := redisSession.Connect(ctx, cfg.Redis.URL)
		if err == nil {
			a.l.Infof(ctx, "Session store: redis")
			a.closers = append(a.closers, client.Close)
			a.Ready = func(ctx context.Context) error { return client.Ping(ctx).Err() }
			return redisSession.New(client, cfg.Redis.SessionTTL, cfg.Session.HistoryLimit, a.l)
		}
		a.l.Warnf(ctx, "Redis unavailable, using in-memory sessions: %v", err)
	}
	a.l.Infof(ctx, "Session store: in-memory")
	return memorySession.New(cfg.Session.HistoryLimit, a.l)
}

func (a *App) buildIndex(ctx context.Context, cfg *config.Config, opts Options) knowledge.Index {
	if cfg.Voyage.APIKey == "" {
		a.l.Warnf(ctx, "Voyage API key not set: knowledge retrieval uses keyword matching")
		return nil
	}
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		a.l.Warnf(ctx, "Voyage client: %v", err)
		return nil
	}
	if cfg.Voyage.Model != "" {
		embedder = embedder.WithModel(cfg.Voyage.Model)
	}
	if cfg.Voyage.BaseURL != "" {
		embedder = embedder.WithBaseURL(cfg.Voyage.BaseURL)
	}

	if cfg.Qdrant.URL == "" {
		a.l.Infof(ctx, "Knowledge index: in-memory")
		return memoryIndex.New(embedder, a.l)
	}

	client := pkgQdrant.NewClient(cfg.Qdrant.URL)
	if cfg.Qdrant.APIKey != "" {
		client = client.WithAPIKey(cfg.Qdrant.APIKey)
	}
	var qopts []qdrantIndex.Option
	if opts.RecreateIndex {
		qopts = append(qopts, qdrantIndex.WithRecreate())
	}
	a.l.Infof(ctx, "Knowledge index: qdrant collection %s", cfg.Qdrant.CollectionName)
	return qdrantIndex.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, a.l, qopts...)
}

// buildChatModel returns nil when no provider starts, which puts both
// generation stages on their fallbacks.
func (a *App) buildChatModel(ctx context.Context, cfg *config.Config) model.BaseChatModel {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, a.l)
	if err != nil {
		a.l.Warnf(ctx, "LLM providers unavailable, itineraries use fallbacks: %v", err)
		return nil
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled:    cfg.LLM.FallbackEnabled,
		RetryAttempts:      cfg.LLM.RetryAttempts,
		RetryDelay:         cfg.LLM.RetryDelay,
		MaxTotalTimeout:    cfg.LLM.MaxTotalTimeout,
		BreakerMaxFailures: uint32(max(cfg.LLM.Breaker.MaxFailures, 0)),
		BreakerOpenTimeout: cfg.LLM.Breaker.OpenTimeout,
	}, a.l)
	a.l.Infof(ctx, "LLM providers: %v", manager.Providers())

	return llmprovider.NewChatModel(manager, llmprovider.ChatModelConfig{
		Temperature: float32(cfg.LLM.Temperature),
		MaxTokens:   cfg.LLM.MaxTokens,
		JSONMode:    true,
	})
}
