package preference

import "smart-travel-planner/internal/model"

// styleKeywords is checked in model.TravelStyles order; the first style with
// any keyword hit wins. A bare "budget" is not a keyword: "a $2000 budget"
// states an amount, not a style.
var styleKeywords = map[model.TravelStyle][]string{
	model.StyleLuxury:    {"luxury", "luxurious", "five-star", "5-star", "upscale", "high-end", "premium", "splurge"},
	model.StyleBudget:    {"on a budget", "budget-friendly", "budget trip", "budget travel", "cheap", "affordable", "backpacking", "backpacker", "low-cost", "hostel"},
	model.StyleAdventure: {"adventure", "adventurous", "hiking", "trekking", "rafting", "climbing", "safari", "diving", "surfing"},
	model.StyleCultural:  {"cultural", "culture", "museum", "museums", "history", "historical", "heritage", "temples", "art"},
	model.StyleRomantic:  {"romantic", "honeymoon", "anniversary", "couples getaway"},
	model.StyleFamily:    {"family", "kids", "children", "family-friendly"},
}

// gazetteer maps lower-case aliases to canonical destination names.
var gazetteer = []struct {
	name    string
	aliases []string
}{
	{"Paris", []string{"paris"}},
	{"Tokyo", []string{"tokyo"}},
	{"Costa Rica", []string{"costa rica"}},
	{"Bali", []string{"bali"}},
	{"New York", []string{"new york", "nyc"}},
	{"London", []string{"london"}},
	{"Rome", []string{"rome"}},
	{"Barcelona", []string{"barcelona"}},
	{"Kyoto", []string{"kyoto"}},
	{"Bangkok", []string{"bangkok"}},
	{"Iceland", []string{"iceland", "reykjavik"}},
	{"Peru", []string{"peru", "machu picchu"}},
	{"Santorini", []string{"santorini"}},
	{"Sydney", []string{"sydney"}},
	{"Lisbon", []string{"lisbon"}},
	{"Marrakech", []string{"marrakech", "marrakesh"}},
}

var interestKeywords = []string{
	"hiking", "wildlife", "beaches", "beach", "food", "cuisine", "museums", "history", "art",
	"nightlife", "shopping", "architecture", "nature", "diving", "surfing", "temples",
	"wine", "photography", "culture", "festivals", "skiing", "spa",
}

var dietaryKeywords = map[string]string{
	"vegetarian":  "vegetarian",
	"vegan":       "vegan",
	"gluten-free": "gluten-free",
	"gluten free": "gluten-free",
	"halal":       "halal",
	"kosher":      "kosher",
	"dairy-free":  "dairy-free",
	"pescatarian": "pescatarian",
	"nut allergy": "nut-free",
}

// notPlaces are capitalized words that follow "to"/"in" without naming a place.
var notPlaces = map[string]struct{}{
	"January": {}, "February": {}, "March": {}, "April": {}, "May": {}, "June": {},
	"July": {}, "August": {}, "September": {}, "October": {}, "November": {}, "December": {},
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {}, "Friday": {}, "Saturday": {}, "Sunday": {},
	"I": {}, "The": {}, "My": {}, "Our": {}, "In": {}, "On": {}, "With": {}, "For": {}, "And": {}, "During": {}, "Spring": {}, "Summer": {}, "Autumn": {}, "Fall": {}, "Winter": {},
}

// placeVerbs follow "to" without naming a place ("I want to Relax").
var placeVerbs = []string{
	"relax", "go", "explore", "see", "travel", "visit", "stay", "eat", "try", "experience",
	"unwind", "escape", "get", "spend", "enjoy", "discover", "learn", "take", "do", "be",
}

// nonPlaceWords holds lower-case interest, style and verb words that can be
// capitalized mid-sentence but never start a destination.
var nonPlaceWords = buildNonPlaceWords()

func buildNonPlaceWords() map[string]struct{} {
	out := make(map[string]struct{})
	for _, kw := range interestKeywords {
		out[kw] = struct{}{}
	}
	for _, kws := range styleKeywords {
		for _, kw := range kws {
			out[kw] = struct{}{}
		}
	}
	for _, v := range placeVerbs {
		out[v] = struct{}{}
	}
	return out
}
