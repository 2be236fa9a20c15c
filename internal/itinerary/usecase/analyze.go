package usecase

import (
	"context"
	"strings"

	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/pkg/outcome"
)

// Analyze runs Stage 1. Only valid analyses are cached.
func (uc *implUseCase) Analyze(ctx context.Context, req itinerary.Request) outcome.Result[itinerary.DestinationAnalysis] {
	key := cacheKey(req)
	if uc.cache != nil {
		if v, ok := uc.cache.Get(key); ok {
			stageOutcomes.WithLabelValues("analysis", "cached").Inc()
			return outcome.Valid(cloneAnalysis(v.(itinerary.DestinationAnalysis)))
		}
	}

	vars := baseVars(req)
	vars["schema"] = AnalysisSchema
	vars["knowledge"] = noKnowledge
	if len(req.Knowledge) > 0 {
		vars["knowledge"] = strings.Join(req.Knowledge, "\n\n")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res := runStage(ctx, uc.analysisChain, vars, itinerary.ValidateAnalysis)
	stageOutcomes.WithLabelValues("analysis", res.Kind().String()).Inc()

	if a, ok := res.Get(); ok {
		if uc.cache != nil {
			uc.cache.SetDefault(key, cloneAnalysis(a))
		}
		return res
	}

	if res.Raw() != "" {
		uc.l.Warnf(ctx, "%s: invalid output for %s: %v raw=%q", LogPrefixAnalyze, req.Destination, res.Cause(), res.Raw())
	} else {
		uc.l.Warnf(ctx, "%s: using fallback for %s: %v", LogPrefixAnalyze, req.Destination, res.Cause())
	}
	return outcome.Fallback(itinerary.FallbackAnalysis(req), res.Cause())
}
