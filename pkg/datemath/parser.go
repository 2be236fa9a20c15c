package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	phraseRe     = regexp.MustCompile(`(?i)\b(today|tomorrow|this weekend|next week|next month|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in \d+ (?:days?|weeks?|months?))\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date phrases to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a single relative phrase to the start of the matching day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	case "this weekend":
		return p.nextWeekday(time.Saturday, baseTime, true), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		target, ok := weekdays[strings.TrimPrefix(relative, "next ")]
		if !ok {
			return baseTime, fmt.Errorf("unknown weekday in %q", relative)
		}
		return p.nextWeekday(target, baseTime, false), nil
	}

	return baseTime, fmt.Errorf("unsupported date phrase: %q", relative)
}

// Find returns the first relative date phrase in text, resolved against baseTime.
func (p *Parser) Find(text string, baseTime time.Time) (Match, bool) {
	phrase := phraseRe.FindString(text)
	if phrase == "" {
		return Match{}, false
	}
	phrase = strings.ToLower(phrase)

	date, err := p.Parse(phrase, baseTime)
	if err != nil {
		return Match{}, false
	}
	return Match{Phrase: phrase, Date: date}, true
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// nextWeekday returns the next occurrence of target after baseTime.
// When includeToday is set, baseTime itself qualifies.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time, includeToday bool) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
