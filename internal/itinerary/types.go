package itinerary

import "time"

// Request carries the resolved trip parameters into both stages.
type Request struct {
	Destination string
	Duration    string
	Budget      string
	Interests   string
	GroupSize   string
	TravelStyle string
	StartDate   *time.Time
	Knowledge   []string
}

// DestinationAnalysis is the Stage 1 output.
type DestinationAnalysis struct {
	Destination     string         `json:"destination" validate:"required"`
	BestTimeToVisit BestTime       `json:"bestTimeToVisit"`
	BudgetAnalysis  BudgetAnalysis `json:"budgetAnalysis"`
	TopAttractions  []Attraction   `json:"topAttractions" validate:"len=3,dive"`
	Transportation  Transportation `json:"transportation"`
}

type BestTime struct {
	Months  []string `json:"months" validate:"min=1,dive,required"`
	Season  string   `json:"season" validate:"required"`
	Weather string   `json:"weather"`
}

type BudgetAnalysis struct {
	Feasibility string      `json:"feasibility" validate:"oneof=Low Medium High"`
	DailyBudget DailyBudget `json:"dailyBudget"`
}

type DailyBudget struct {
	Budget        string `json:"budget"`
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
}

type Attraction struct {
	Name          string `json:"name" validate:"required"`
	Type          string `json:"type"`
	EstimatedCost string `json:"estimatedCost"`
	TimeNeeded    string `json:"timeNeeded"`
}

type Transportation struct {
	Primary string   `json:"primary" validate:"required"`
	Cost    string   `json:"cost"`
	Tips    []string `json:"tips"`
}

// Itinerary is the Stage 2 output. Day numbers run 1..N without gaps.
type Itinerary struct {
	Destination    string        `json:"destination" validate:"required"`
	Duration       string        `json:"duration" validate:"required"`
	TotalBudget    string        `json:"totalBudget"`
	DailyItinerary []DayPlan     `json:"dailyItinerary" validate:"min=1,dive"`
	PackingList    []string      `json:"packingList"`
	CulturalTips   []string      `json:"culturalTips"`
	EmergencyInfo  EmergencyInfo `json:"emergencyInfo"`
}

type DayPlan struct {
	Day         int        `json:"day" validate:"gte=1"`
	Theme       string     `json:"theme"`
	Activities  []Activity `json:"activities" validate:"dive"`
	Meals       Meals      `json:"meals"`
	DailyBudget string     `json:"dailyBudget"`
	Tips        string     `json:"tips"`
}

type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity" validate:"required"`
	Location string `json:"location"`
	Cost     string `json:"cost"`
	Duration string `json:"duration"`
}

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type EmergencyInfo struct {
	Embassy   string   `json:"embassy"`
	Emergency string   `json:"emergency"`
	Hospitals []string `json:"hospitals"`
}
