package preference_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/preference"
	"smart-travel-planner/pkg/datemath"
)

func newExtractor(t *testing.T) *preference.Extractor {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return preference.New(dates)
}

func TestExtract(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name      string
		text      string
		budget    string
		style     model.TravelStyle
		dietary   []string
		hint      string
		wantEmpty bool
	}{
		{
			name:   "adventure trip with budget amount",
			text:   "I want a 5-day adventure trip to Costa Rica with a $2000 budget for hiking and wildlife",
			budget: "$2000",
			style:  model.StyleAdventure,
			hint:   "Costa Rica",
		},
		{
			name:   "thousands separator",
			text:   "Luxury honeymoon in Bali, around $5,000 total",
			budget: "$5,000",
			style:  model.StyleLuxury,
			hint:   "Bali",
		},
		{
			name:  "budget style keyword",
			text:  "Cheap backpacking through Bangkok",
			style: model.StyleBudget,
			hint:  "Bangkok",
		},
		{
			name:    "dietary only",
			text:    "I am vegan and need gluten free meals",
			dietary: []string{"gluten-free", "vegan"},
		},
		{
			name:  "earliest gazetteer match wins",
			text:  "Thinking of Tokyo then maybe Kyoto for the museums",
			style: model.StyleCultural,
			hint:  "Tokyo",
		},
		{
			name:  "alias",
			text:  "a long weekend in NYC",
			hint:  "New York",
		},
		{
			name:      "nothing found",
			text:      "plan something nice",
			wantEmpty: true,
		},
		{
			name:      "empty text",
			text:      "",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)

			if tt.wantEmpty {
				assert.True(t, got.Patch.IsEmpty())
				assert.Empty(t, got.DestinationHint)
				return
			}

			if tt.budget == "" {
				assert.Nil(t, got.Patch.PreferredBudget)
			} else {
				require.NotNil(t, got.Patch.PreferredBudget)
				assert.Equal(t, tt.budget, *got.Patch.PreferredBudget)
			}
			if tt.style == "" {
				assert.Nil(t, got.Patch.TravelStyle)
			} else {
				require.NotNil(t, got.Patch.TravelStyle)
				assert.Equal(t, tt.style, *got.Patch.TravelStyle)
			}
			if tt.dietary == nil {
				assert.Empty(t, got.Patch.DietaryRestrictions)
			} else {
				assert.Equal(t, tt.dietary, got.Patch.DietaryRestrictions)
			}
			assert.Equal(t, tt.hint, got.DestinationHint)
		})
	}
}

func TestExtractBareBudgetWordIsNotStyle(t *testing.T) {
	got := newExtractor(t).Extract("My budget is $800")
	assert.Nil(t, got.Patch.TravelStyle)
	require.NotNil(t, got.Patch.PreferredBudget)
	assert.Equal(t, "$800", *got.Patch.PreferredBudget)
}

func TestRequest(t *testing.T) {
	e := newExtractor(t)
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	t.Run("full request", func(t *testing.T) {
		got := e.Request("I want a 5-day adventure trip to Costa Rica with a $2000 budget for hiking and wildlife", now)
		assert.Equal(t, "Costa Rica", got.ExplicitDestination)
		assert.Equal(t, "5 days", got.Duration)
		assert.Equal(t, []string{"hiking", "wildlife"}, got.Interests)
		assert.Empty(t, got.GroupSize)
		assert.Nil(t, got.StartDate)
	})

	t.Run("weeks and start date", func(t *testing.T) {
		got := e.Request("2 weeks in Lisbon for 3 adults, leaving next month", now)
		assert.Equal(t, "Lisbon", got.ExplicitDestination)
		assert.Equal(t, "14 days", got.Duration)
		assert.Equal(t, "3 adults", got.GroupSize)
		require.NotNil(t, got.StartDate)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *got.StartDate)
		assert.Equal(t, "next month", got.StartPhrase)
	})

	t.Run("in N weeks is a start date", func(t *testing.T) {
		got := e.Request("Visit Rome in 3 weeks", now)
		assert.Equal(t, "Rome", got.ExplicitDestination)
		assert.Empty(t, got.Duration)
		require.NotNil(t, got.StartDate)
		assert.Equal(t, time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC), *got.StartDate)
	})

	t.Run("unknown place kept as written", func(t *testing.T) {
		got := e.Request("a week in Buenos Aires for my honeymoon", now)
		assert.Equal(t, "Buenos Aires", got.ExplicitDestination)
		assert.Equal(t, "7 days", got.Duration)
		assert.Equal(t, "2 adults", got.GroupSize)
	})

	t.Run("month after preposition is skipped", func(t *testing.T) {
		got := e.Request("traveling in June to Santorini", now)
		assert.Equal(t, "Santorini", got.ExplicitDestination)
	})

	t.Run("solo weekend", func(t *testing.T) {
		got := e.Request("solo weekend trip, 1 day only", now)
		assert.Equal(t, "1 day", got.Duration)
		assert.Equal(t, "1 adult", got.GroupSize)
	})

	t.Run("empty", func(t *testing.T) {
		got := e.Request("", now)
		assert.Empty(t, got.ExplicitDestination)
		assert.Empty(t, got.Duration)
		assert.Empty(t, got.Interests)
		assert.Empty(t, got.GroupSize)
		assert.Nil(t, got.StartDate)
	})

	t.Run("nil date parser", func(t *testing.T) {
		got := preference.New(nil).Request("tomorrow", now)
		assert.Nil(t, got.StartDate)
	})
}

func TestRequestIgnoresCapitalizedNonPlaces(t *testing.T) {
	e := newExtractor(t)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tcs := map[string]struct {
		text string
		want string
	}{
		"interest keyword": {
			text: "I'm really interested in Hiking and wildlife",
		},
		"verb after to": {
			text: "I want to Relax somewhere warm",
		},
		"style keyword": {
			text: "Something in Luxury please",
		},
		"verb then place": {
			text: "I'd love to Explore Kyoto",
			want: "Kyoto",
		},
		"activity then real place": {
			text: "in Hiking, then off to Peru",
			want: "Peru",
		},
		"no destination": {
			text: "Make it longer, maybe 6 days",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := e.Request(tc.text, now)
			assert.Equal(t, tc.want, got.ExplicitDestination)
		})
	}
}
