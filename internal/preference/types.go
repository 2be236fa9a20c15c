package preference

import (
	"time"

	"smart-travel-planner/internal/model"
)

// Preferences is the profile patch found in one request plus the gazetteer
// destination hint, if any.
type Preferences struct {
	Patch           model.ProfilePatch
	DestinationHint string
}

// RequestHints are the trip parameters mentioned in one request. Empty fields
// were not found; callers apply their own defaults.
type RequestHints struct {
	ExplicitDestination string
	Duration            string
	Interests           []string
	GroupSize           string
	StartDate           *time.Time
	StartPhrase         string
}
