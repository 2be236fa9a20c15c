package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const maxFallbackDays = 14

var leadingNumberRe = regexp.MustCompile(`\d+`)

var dayThemes = []string{
	"Arrival and orientation",
	"Signature sights",
	"Local culture and food",
	"Neighbourhoods and markets",
	"Day trip or free exploration",
}

// FallbackAnalysis is the skeleton substituted when Stage 1 fails.
func FallbackAnalysis(req Request) DestinationAnalysis {
	req = req.withDefaults()
	return DestinationAnalysis{
		Destination: req.Destination,
		BestTimeToVisit: BestTime{
			Months:  []string{"April", "May", "September", "October"},
			Season:  "Spring and autumn shoulder seasons",
			Weather: "Mild temperatures and smaller crowds",
		},
		BudgetAnalysis: BudgetAnalysis{
			Feasibility: "Medium",
			DailyBudget: DailyBudget{
				Budget:        req.Budget,
				Accommodation: "About 40% of the daily budget",
				Food:          "About 30% of the daily budget",
				Activities:    "About 30% of the daily budget",
			},
		},
		TopAttractions: []Attraction{
			{Name: "Historic centre of " + req.Destination, Type: "Culture", EstimatedCost: "Free", TimeNeeded: "Half day"},
			{Name: "Main food market", Type: "Food", EstimatedCost: "$20-40", TimeNeeded: "2-3 hours"},
			{Name: "Best-known viewpoint or natural landmark", Type: "Nature", EstimatedCost: "Varies", TimeNeeded: "Half day"},
		},
		Transportation: Transportation{
			Primary: "Public transport and walking",
			Cost:    "Varies by city; multi-day passes usually save money",
			Tips: []string{
				"Buy a transit pass on arrival",
				"Keep a digital copy of your bookings",
			},
		},
	}
}

// FallbackItinerary is the skeleton substituted when Stage 2 fails. It spreads
// the analysis attractions over the requested number of days.
func FallbackItinerary(req Request, analysis DestinationAnalysis) Itinerary {
	req = req.withDefaults()
	days := DayCount(req.Duration)
	plan := make([]DayPlan, days)
	for i := range plan {
		attraction := "Explore " + req.Destination
		if n := len(analysis.TopAttractions); n > 0 {
			attraction = analysis.TopAttractions[i%n].Name
		}
		plan[i] = DayPlan{
			Day:   i + 1,
			Theme: dayThemes[i%len(dayThemes)],
			Activities: []Activity{
				{Time: "09:00", Activity: "Visit " + attraction, Location: req.Destination, Cost: "Varies", Duration: "3 hours"},
				{Time: "14:00", Activity: "Free time matched to your interests: " + req.Interests, Location: req.Destination, Cost: "Varies", Duration: "3 hours"},
				{Time: "19:00", Activity: "Dinner at a local restaurant", Location: req.Destination, Cost: "Varies", Duration: "2 hours"},
			},
			Meals: Meals{
				Breakfast: "Hotel or nearby cafe",
				Lunch:     "Local market or casual restaurant",
				Dinner:    "Regional specialities",
			},
			DailyBudget: req.Budget,
			Tips:        "Confirm opening hours before you go.",
		}
	}

	return Itinerary{
		Destination:    req.Destination,
		Duration:       req.Duration,
		TotalBudget:    req.Budget,
		DailyItinerary: plan,
		PackingList:    []string{"Passport and travel documents", "Comfortable walking shoes", "Universal power adapter", "Weather-appropriate layers"},
		CulturalTips:   []string{"Learn a few local greetings", "Check local tipping customs"},
		EmergencyInfo: EmergencyInfo{
			Embassy:   fmt.Sprintf("Look up your embassy in %s before departure", req.Destination),
			Emergency: "Dial the local emergency number (112 works in many countries)",
			Hospitals: []string{"Ask your accommodation for the nearest hospital"},
		},
	}
}

func (r Request) withDefaults() Request {
	if strings.TrimSpace(r.Destination) == "" {
		r.Destination = "your destination"
	}
	if strings.TrimSpace(r.Duration) == "" {
		r.Duration = "1 day"
	}
	return r
}

// DayCount reads the leading number of days from a duration such as "5 days".
// It returns 1 when none is found and caps the result for skeleton plans.
func DayCount(duration string) int {
	n, err := strconv.Atoi(leadingNumberRe.FindString(duration))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, maxFallbackDays)
}
