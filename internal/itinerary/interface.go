package itinerary

import (
	"context"

	"smart-travel-planner/pkg/outcome"
)

// UseCase runs the two generation stages. Both methods always return a value
// that passes validation: Valid from the model, or Fallback with the cause.
type UseCase interface {
	Analyze(ctx context.Context, req Request) outcome.Result[DestinationAnalysis]
	Plan(ctx context.Context, req Request, analysis DestinationAnalysis) outcome.Result[Itinerary]
}
