package planner

import (
	"time"

	"smart-travel-planner/internal/itinerary"
	"smart-travel-planner/internal/model"
)

// PlanTravelInput is one planning request.
type PlanTravelInput struct {
	UserID  string
	Request string
}

// ResolvedRequest holds the effective trip parameters after defaults.
type ResolvedRequest struct {
	Destination string     `json:"destination"`
	Duration    string     `json:"duration"`
	Budget      string     `json:"budget"`
	Interests   string     `json:"interests"`
	GroupSize   string     `json:"groupSize"`
	StartDate   *time.Time `json:"startDate,omitempty"`
}

// CurrentConditions are the environment tool results.
type CurrentConditions struct {
	Weather  string `json:"weather"`
	Currency string `json:"currency"`
}

// PlanResponse is built once per request and never modified afterwards.
type PlanResponse struct {
	UserID            string                        `json:"userId"`
	Timestamp         time.Time                     `json:"timestamp"`
	Profile           model.UserProfile             `json:"profile"`
	Request           ResolvedRequest               `json:"request"`
	Knowledge         string                        `json:"knowledge"`
	CurrentConditions CurrentConditions             `json:"currentConditions"`
	Analysis          itinerary.DestinationAnalysis `json:"analysis"`
	Itinerary         itinerary.Itinerary           `json:"itinerary"`
	Recommendations   []string                      `json:"recommendations"`
	NextSteps         []string                      `json:"nextSteps"`
}

// InvokeToolInput calls one environment tool directly.
type InvokeToolInput struct {
	Name     string
	Argument string
}

// InvokeToolOutput is the tool's text result.
type InvokeToolOutput struct {
	Tool   string
	Result string
}
