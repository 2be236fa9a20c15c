package usecase

import "time"

// Log prefixes
const (
	LogPrefixAnalyze = "internal.itinerary.usecase.Analyze"
	LogPrefixPlan    = "internal.itinerary.usecase.Plan"
)

const (
	defaultStageTimeout = 40 * time.Second
	cacheCleanup        = 10 * time.Minute
	dateLayout          = "2006-01-02"
	noStartDate         = "flexible"
	noKnowledge         = "(no background material available)"
)

// Stage 1 prompt. Literal JSON is passed through the {schema} variable so the
// template itself has no braces to escape.
const (
	AnalysisSystemPrompt = `You are a meticulous travel analyst.
Reply with a single JSON object and nothing else. It must match this shape:
{schema}
Rules:
- "topAttractions" has exactly 3 entries.
- "budgetAnalysis.feasibility" is one of Low, Medium, High.
- "bestTimeToVisit.months" lists month names.`

	AnalysisUserPrompt = `Analyse this trip.
Destination: {destination}
Budget: {budget}
Duration: {duration}
Interests: {interests}
Group: {group_size}
Travel style: {travel_style}
Start date: {start_date}

Background material:
{knowledge}`

	AnalysisSchema = `{
  "destination": "string",
  "bestTimeToVisit": {"months": ["string"], "season": "string", "weather": "string"},
  "budgetAnalysis": {"feasibility": "Low|Medium|High", "dailyBudget": {"budget": "string", "accommodation": "string", "food": "string", "activities": "string"}},
  "topAttractions": [{"name": "string", "type": "string", "estimatedCost": "string", "timeNeeded": "string"}],
  "transportation": {"primary": "string", "cost": "string", "tips": ["string"]}
}`
)

// Stage 2 prompt.
const (
	ItinerarySystemPrompt = `You are an expert trip planner.
Reply with a single JSON object and nothing else. It must match this shape:
{schema}
Rules:
- "dailyItinerary" has one entry per day, numbered from 1 with no gaps.
- Build on the destination analysis you are given; do not contradict it.`

	ItineraryUserPrompt = `Destination analysis:
{analysis}

Plan {days} day(s) in {destination} ({duration}) for {group_size}.
Total budget: {budget}
Interests: {interests}
Travel style: {travel_style}
Start date: {start_date}`

	ItinerarySchema = `{
  "destination": "string",
  "duration": "string",
  "totalBudget": "string",
  "dailyItinerary": [{
    "day": 1,
    "theme": "string",
    "activities": [{"time": "string", "activity": "string", "location": "string", "cost": "string", "duration": "string"}],
    "meals": {"breakfast": "string", "lunch": "string", "dinner": "string"},
    "dailyBudget": "string",
    "tips": "string"
  }],
  "packingList": ["string"],
  "culturalTips": ["string"],
  "emergencyInfo": {"embassy": "string", "emergency": "string", "hospitals": ["string"]}
}`
)
