package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/pkg/outcome"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// runStage invokes one chain and decodes its answer into T. The result is
// Valid, Invalid (with the raw text) or Unavailable; never Fallback.
func runStage[T any](
	ctx context.Context,
	chain compose.Runnable[map[string]any, *schema.Message],
	vars map[string]any,
	check func(T) error,
) outcome.Result[T] {
	if chain == nil {
		return outcome.Unavailable[T](itinerary.ErrGeneratorUnavailable)
	}

	msg, err := chain.Invoke(ctx, vars)
	if err != nil {
		return outcome.Unavailable[T](fmt.Errorf("generate: %w", err))
	}
	if msg == nil {
		return outcome.Invalid[T]("", fmt.Errorf("%w: empty message", itinerary.ErrInvalidOutput))
	}

	raw := msg.Content
	var v T
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &v); err != nil {
		return outcome.Invalid[T](raw, fmt.Errorf("%w: %w", itinerary.ErrInvalidOutput, err))
	}
	if err := check(v); err != nil {
		return outcome.Invalid[T](raw, err)
	}
	return outcome.Valid(v)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

func baseVars(req itinerary.Request) map[string]any {
	start := noStartDate
	if req.StartDate != nil {
		start = req.StartDate.Format(dateLayout)
	}
	style := req.TravelStyle
	if style == "" {
		style = "not specified"
	}
	return map[string]any{
		"destination":  req.Destination,
		"budget":       req.Budget,
		"duration":     req.Duration,
		"interests":    req.Interests,
		"group_size":   req.GroupSize,
		"travel_style": style,
		"start_date":   start,
	}
}

func cacheKey(req itinerary.Request) string {
	return strings.ToLower(strings.Join([]string{
		strings.TrimSpace(req.Destination),
		strings.TrimSpace(req.Budget),
		strings.TrimSpace(req.Duration),
		strings.TrimSpace(req.Interests),
		strings.TrimSpace(req.GroupSize),
		strings.TrimSpace(req.TravelStyle),
	}, "|"))
}

// cloneAnalysis deep-copies a so cached values are never shared with callers.
func cloneAnalysis(a itinerary.DestinationAnalysis) itinerary.DestinationAnalysis {
	a.BestTimeToVisit.Months = append([]string(nil), a.BestTimeToVisit.Months...)
	a.TopAttractions = append([]itinerary.Attraction(nil), a.TopAttractions...)
	a.Transportation.Tips = append([]string(nil), a.Transportation.Tips...)
	return a
}
