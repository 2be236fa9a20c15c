package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/patrickmn/go-cache"

	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/pkg/log"
)

// Config tunes the generator.
type Config struct {
	// StageTimeout bounds each generation call.
	StageTimeout time.Duration
	// CacheTTL keeps valid analyses; zero disables caching.
	CacheTTL time.Duration
}

type implUseCase struct {
	analysisChain  compose.Runnable[map[string]any, *schema.Message]
	itineraryChain compose.Runnable[map[string]any, *schema.Message]
	cache          *cache.Cache
	timeout        time.Duration
	l              log.Logger
}

// New compiles both stage chains over chat. A nil chat model is allowed: every
// stage then returns its fallback.
func New(ctx context.Context, chat model.BaseChatModel, cfg Config, l log.Logger) (itinerary.UseCase, error) {
	uc := &implUseCase{
		timeout: cfg.StageTimeout,
		l:       l,
	}
	if uc.timeout <= 0 {
		uc.timeout = defaultStageTimeout
	}
	if cfg.CacheTTL > 0 {
		uc.cache = cache.New(cfg.CacheTTL, cacheCleanup)
	}
	if chat == nil {
		return uc, nil
	}

	var err error
	uc.analysisChain, err = compileStage(ctx, chat, AnalysisSystemPrompt, AnalysisUserPrompt)
	if err != nil {
		return nil, fmt.Errorf("compile analysis chain: %w", err)
	}
	uc.itineraryChain, err = compileStage(ctx, chat, ItinerarySystemPrompt, ItineraryUserPrompt)
	if err != nil {
		return nil, fmt.Errorf("compile itinerary chain: %w", err)
	}
	return uc, nil
}

func compileStage(ctx context.Context, chat model.BaseChatModel, system, user string) (compose.Runnable[map[string]any, *schema.Message], error) {
	tpl := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(system),
		schema.UserMessage(user),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(tpl)
	chain.AppendChatModel(chat)

	return chain.Compile(ctx)
}
