package preference

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"smart-travel-planner/internal/model"
	"smart-travel-planner/pkg/datemath"
)

var (
	budgetRe = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})+|\$\d+`)

	explicitDestRe = regexp.MustCompile(`(?i:\b(?:to|in|visit|visiting)\s+)([A-Z][A-Za-z'\-]+(?:\s+[A-Z][A-Za-z'\-]+){0,2})`)

	durationRe = regexp.MustCompile(`(?i)\b(\d{1,3})\s*-?\s*(days?|weeks?|nights?)\b`)
	aWeekRe    = regexp.MustCompile(`(?i)\b(?:a|one)\s+week\b`)
	weekendRe  = regexp.MustCompile(`(?i)\bweekend\s+(?:trip|getaway|break)\b`)

	groupCountRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(?:adults?|people|persons|travell?ers|of us)\b`)
	familyOfRe    = regexp.MustCompile(`(?i)\bfamily\s+of\s+(\d{1,2})\b`)
	soloRe        = regexp.MustCompile(`(?i)\b(?:solo|alone|by myself)\b`)
	coupleRe      = regexp.MustCompile(`(?i)\b(?:couple|honeymoon|my (?:wife|husband|partner|girlfriend|boyfriend))\b`)
	styleMatchers = compileStyles()
)

// Extractor turns free text into preference patches and trip hints. It holds
// no mutable state and is safe for concurrent use.
type Extractor struct {
	dates *datemath.Parser
}

// New creates an Extractor. dates may be nil, which disables start-date detection.
func New(dates *datemath.Parser) *Extractor {
	return &Extractor{dates: dates}
}

// Extract finds the budget, travel style, dietary restrictions and gazetteer
// destination in text. Rules fire independently; unmatched fields stay nil.
func (e *Extractor) Extract(text string) Preferences {
	var out Preferences

	if m := budgetRe.FindString(text); m != "" {
		out.Patch.PreferredBudget = model.StringPtr(m)
	}

	lower := strings.ToLower(text)
	for _, style := range model.TravelStyles {
		if styleMatchers[style].MatchString(lower) {
			out.Patch.TravelStyle = model.StylePtr(style)
			break
		}
	}

	seen := make(map[string]bool)
	for kw, canonical := range dietaryKeywords {
		if !seen[canonical] && containsWord(lower, kw) {
			seen[canonical] = true
			out.Patch.DietaryRestrictions = append(out.Patch.DietaryRestrictions, canonical)
		}
	}
	sort.Strings(out.Patch.DietaryRestrictions)

	out.DestinationHint = matchGazetteer(lower)
	return out
}

// Request finds destination, duration, interests, group size and start date.
func (e *Extractor) Request(text string, now time.Time) RequestHints {
	hints := RequestHints{
		ExplicitDestination: explicitDestination(text),
		Duration:            duration(text),
		Interests:           interests(strings.ToLower(text)),
		GroupSize:           groupSize(text),
	}

	if e.dates != nil {
		if m, ok := e.dates.Find(text, now); ok {
			d := m.Date
			hints.StartDate = &d
			hints.StartPhrase = m.Phrase
		}
	}
	return hints
}

func compileStyles() map[model.TravelStyle]*regexp.Regexp {
	out := make(map[model.TravelStyle]*regexp.Regexp, len(styleKeywords))
	for style, kws := range styleKeywords {
		quoted := make([]string, len(kws))
		for i, kw := range kws {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		out[style] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return out
}

// matchGazetteer returns the canonical destination mentioned earliest in lower.
func matchGazetteer(lower string) string {
	best, bestAt := "", -1
	for _, g := range gazetteer {
		for _, alias := range g.aliases {
			at := indexWord(lower, alias)
			if at >= 0 && (bestAt < 0 || at < bestAt) {
				best, bestAt = g.name, at
			}
		}
	}
	return best
}

func explicitDestination(text string) string {
	for _, m := range explicitDestRe.FindAllStringSubmatch(text, -1) {
		words := strings.Fields(m[1])
		// Trim trailing non-place words ("Rome In May" -> "Rome").
		for len(words) > 0 {
			if !isNotPlace(words[len(words)-1]) {
				break
			}
			words = words[:len(words)-1]
		}
		for len(words) > 0 && isNotPlace(words[0]) {
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		place := strings.Join(words, " ")
		if canonical := matchGazetteer(strings.ToLower(place)); canonical != "" {
			return canonical
		}
		return place
	}
	return ""
}

// isNotPlace reports whether a capitalized word is a month, pronoun, activity
// or verb rather than the start of a place name.
func isNotPlace(word string) bool {
	if _, ok := notPlaces[word]; ok {
		return true
	}
	_, ok := nonPlaceWords[strings.ToLower(word)]
	return ok
}

func duration(text string) string {
	for _, loc := range durationRe.FindAllStringSubmatchIndex(text, -1) {
		// "in 3 weeks" names a start date, not a length.
		if strings.HasSuffix(strings.ToLower(strings.TrimRight(text[:loc[0]], " ")), " in") ||
			strings.EqualFold(strings.TrimSpace(text[:loc[0]]), "in") {
			continue
		}
		n, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || n <= 0 {
			continue
		}
		if strings.HasPrefix(strings.ToLower(text[loc[4]:loc[5]]), "week") {
			n *= 7
		}
		return formatDays(n)
	}
	if aWeekRe.MatchString(text) {
		return formatDays(7)
	}
	if weekendRe.MatchString(text) {
		return formatDays(2)
	}
	return ""
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}

// interests returns matched interest keywords in order of appearance.
func interests(lower string) []string {
	type hit struct {
		kw string
		at int
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, kw := range interestKeywords {
		at := indexWord(lower, kw)
		if at < 0 {
			continue
		}
		// "beaches" and "beach" both match the same text.
		key := strings.TrimSuffix(strings.TrimSuffix(kw, "es"), "s")
		if seen[key] {
			continue
		}
		seen[key] = true
		hits = append(hits, hit{kw, at})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.kw
	}
	return out
}

func groupSize(text string) string {
	if m := groupCountRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			if n == 1 {
				return "1 adult"
			}
			return strconv.Itoa(n) + " adults"
		}
	}
	if m := familyOfRe.FindStringSubmatch(text); m != nil {
		return "family of " + m[1]
	}
	if soloRe.MatchString(text) {
		return "1 adult"
	}
	if coupleRe.MatchString(text) {
		return "2 adults"
	}
	return ""
}

func containsWord(lower, word string) bool {
	return indexWord(lower, word) >= 0
}

// indexWord finds word in lower at word boundaries.
func indexWord(lower, word string) int {
	from := 0
	for {
		i := strings.Index(lower[from:], word)
		if i < 0 {
			return -1
		}
		at := from + i
		end := at + len(word)
		if (at == 0 || !isWordByte(lower[at-1])) && (end == len(lower) || !isWordByte(lower[end])) {
			return at
		}
		from = at + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
