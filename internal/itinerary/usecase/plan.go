package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/pkg/outcome"
)

// Plan runs Stage 2 from analysis, which may itself be a fallback skeleton.
func (uc *implUseCase) Plan(ctx context.Context, req itinerary.Request, analysis itinerary.DestinationAnalysis) outcome.Result[itinerary.Itinerary] {
	var res outcome.Result[itinerary.Itinerary]

	if err := itinerary.ValidateAnalysis(analysis); err != nil {
		res = outcome.Unavailable[itinerary.Itinerary](fmt.Errorf("analysis input: %w", err))
	} else if ctxJSON, err := json.MarshalIndent(analysis, "", "  "); err != nil {
		res = outcome.Unavailable[itinerary.Itinerary](fmt.Errorf("encode analysis: %w", err))
	} else {
		vars := baseVars(req)
		vars["schema"] = ItinerarySchema
		vars["analysis"] = string(ctxJSON)
		vars["days"] = itinerary.DayCount(req.Duration)

		sctx, cancel := context.WithTimeout(ctx, uc.timeout)
		res = runStage(sctx, uc.itineraryChain, vars, itinerary.ValidateItinerary)
		cancel()
	}
	stageOutcomes.WithLabelValues("itinerary", res.Kind().String()).Inc()

	if res.Kind() == outcome.KindValid {
		return res
	}

	if res.Raw() != "" {
		uc.l.Warnf(ctx, "%s: invalid output for %s: %v raw=%q", LogPrefixPlan, req.Destination, res.Cause(), res.Raw())
	} else {
		uc.l.Warnf(ctx, "%s: using fallback for %s: %v", LogPrefixPlan, req.Destination, res.Cause())
	}
	return outcome.Fallback(itinerary.FallbackItinerary(req, analysis), res.Cause())
}
