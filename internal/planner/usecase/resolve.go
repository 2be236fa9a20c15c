package usecase

import (
	"fmt"
	"strings"

	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/planner"
)

func resolveRequest(destination, duration string, interests []string, groupSize string, profile model.UserProfile) planner.ResolvedRequest {
	budget := DefaultBudget
	if profile.PreferredBudget != nil && *profile.PreferredBudget != "" {
		budget = *profile.PreferredBudget
	}
	return planner.ResolvedRequest{
		Destination: destination,
		Duration:    firstNonEmpty(duration, DefaultDuration),
		Budget:      budget,
		Interests:   firstNonEmpty(strings.Join(interests, ", "), DefaultInterests),
		GroupSize:   firstNonEmpty(groupSize, DefaultGroupSize),
	}
}

// recommendations yields one sentence for the profile's style, then the
// exploration and booking sentences.
func recommendations(profile model.UserProfile, destination string) []string {
	out := make([]string, 0, 3)
	if profile.TravelStyle != nil {
		if tpl, ok := styleRecommendations[*profile.TravelStyle]; ok {
			out = append(out, fmt.Sprintf(tpl, destination))
		}
	}
	out = append(out,
		fmt.Sprintf(exploreRecommendation, destination),
		fmt.Sprintf(bookingRecommendation, destination),
	)
	return out
}

// excerpt joins passages and caps the result at maxExcerptLen runes.
func excerpt(passages []string) string {
	text := strings.Join(passages, "\n\n")
	runes := []rune(text)
	if len(runes) <= maxExcerptLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxExcerptLen])) + "..."
}

func summarize(req planner.ResolvedRequest) string {
	return fmt.Sprintf("%s itinerary for %s, budget %s, %s", req.Duration, req.Destination, req.Budget, req.GroupSize)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
