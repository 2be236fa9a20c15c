package usecase

import "smart-travel-planner/internal/model"

// Log prefixes
const (
	LogPrefixPlanTravel = "internal.planner.usecase.PlanTravel"
	LogPrefixGetSession = "internal.planner.usecase.GetSession"
	LogPrefixInvokeTool = "internal.planner.usecase.InvokeTool"
)

// Request defaults
const (
	DefaultDestination = "Paris"
	DefaultDuration    = "3 days"
	DefaultBudget      = "$150 per day"
	DefaultInterests   = "sightseeing, culture"
	DefaultGroupSize   = "2 adults"

	knowledgeQuerySuffix = " travel guide attractions culture"
	maxExcerptLen        = 500
	maxUserIDLen         = 128
	defaultTopK          = 2
)

const tracerName = "smart-travel-planner/planner"

// Stage names used in spans, logs and metrics.
const (
	stageSession   = "session"
	stageProfile   = "profile"
	stageKnowledge = "knowledge"
	stageTools     = "tools"
	stageAnalysis  = "analysis"
	stageItinerary = "itinerary"
	stageHistory   = "history"
)

var styleRecommendations = map[model.TravelStyle]string{
	model.StyleLuxury:    "Treat yourself to a boutique five-star stay and a private guided tour in %s.",
	model.StyleBudget:    "Save in %s with free walking tours, street food and a public transport pass.",
	model.StyleAdventure: "Book outdoor excursions in %s early; guided hikes and tours fill up fast.",
	model.StyleCultural:  "Reserve museum and heritage-site tickets in %s ahead of time to skip the queues.",
	model.StyleRomantic:  "Plan a sunset dinner and an unhurried day for two in %s.",
	model.StyleFamily:    "Pick family-friendly accommodation in %s with space and activities for the kids.",
}

const (
	exploreRecommendation = "Explore beyond the main sights in %s; local neighbourhoods show its everyday character."
	bookingRecommendation = "Book flights and accommodation for %s soon; prices usually rise closer to departure."
)

// NextSteps is returned with every plan.
var NextSteps = []string{
	"Review the day-by-day itinerary and adjust it to your pace",
	"Check passport, visa and entry requirements",
	"Book flights and accommodation",
	"Arrange travel insurance",
	"Share your itinerary with someone at home",
}
